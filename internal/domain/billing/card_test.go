package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full card number", "4111111111111111", "XXXX1111"},
		{"amex length", "378282246310005", "XXXX0005"},
		{"exactly four digits", "1234", "XXXX1234"},
		{"shorter than four digits", "42", "XXXX42"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCardNumber(tt.input))
		})
	}
}

func TestValidCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"visa test number", "4111111111111111", true},
		{"amex test number", "378282246310005", true},
		{"mastercard test number", "5555555555554444", true},
		{"failed checksum", "4111111111111112", false},
		{"too short", "411111111111", false},
		{"too long", "41111111111111111", false},
		{"non-digit characters", "4111-1111-1111-1111", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCardNumber(tt.input))
		})
	}
}
