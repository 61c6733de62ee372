package middleware

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs struct validation on an already-bound request
// object. Handlers bind their own JSON or multipart forms and call
// this before hitting the service layer.
func ValidateStruct(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	return validate.Struct(value.Interface())
}
