package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ISO week keys look like "2026-W07". Week numbers above 53 are rejected
// here; whether week 53 exists in a given year is checked by the service.
var periodKeyPattern = regexp.MustCompile(`^\d{4}-W(0[1-9]|[1-4]\d|5[0-3])$`)

func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("periodkey", func(fl validator.FieldLevel) bool {
		return periodKeyPattern.MatchString(fl.Field().String())
	})
}
