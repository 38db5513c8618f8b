package billing

// MaskCardNumber reduces a card number to its stored form: "XXXX" followed
// by the last four digits. Shorter inputs keep whatever digits they have.
// An empty input stays empty so sync never clobbers a stored value with a
// blank mask.
// ValidCardNumber reports whether a card number is plausibly real: 13 to
// 16 digits passing the Luhn checksum.
func ValidCardNumber(cardNumber string) bool {
	if len(cardNumber) < 13 || len(cardNumber) > 16 {
		return false
	}
	sum := 0
	double := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		c := cardNumber[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func MaskCardNumber(cardNumber string) string {
	if cardNumber == "" {
		return ""
	}
	last := cardNumber
	if len(cardNumber) > 4 {
		last = cardNumber[len(cardNumber)-4:]
	}
	return "XXXX" + last
}
