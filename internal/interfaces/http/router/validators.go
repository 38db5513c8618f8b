package router

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/samplestore/backend/internal/domain/billing"
)

// RegisterValidators installs custom binding validators on gin's
// validator engine. Must run before any request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		return billing.ValidCardNumber(fl.Field().String())
	})
}
