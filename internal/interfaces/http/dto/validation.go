package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCurrencyValidator binds the `currency` validation tag to the
// configured supported-currency set. Call once at startup, before the
// engine serves requests; tags evaluated earlier will fail open.
func RegisterCurrencyValidator(supported []string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	set := make(map[string]struct{}, len(supported))
	for _, code := range supported {
		set[strings.ToUpper(code)] = struct{}{}
	}

	return v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	})
}
