package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// InitValidator builds the shared validator. Field errors use JSON names.
// Integer columns are 32-bit, checked with the int32 alias.
func InitValidator() {
	Validate = validator.New()
	Validate.RegisterAlias("int32", "min=-2147483648,max=2147483647")
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
