package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names the way the client sent them (json tag), not the
	// exported Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct checks the request payload and returns one human-readable
// message per failing field. An empty map means the payload is valid and the
// upstream call may proceed.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": "is invalid"}
	}

	messages := make(map[string]string, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			messages[e.Field()] = "is required"
		case "email":
			messages[e.Field()] = "must be a valid email address"
		case "min":
			messages[e.Field()] = fmt.Sprintf("must be at least %s", e.Param())
		case "max":
			messages[e.Field()] = fmt.Sprintf("must be at most %s", e.Param())
		case "oneof":
			messages[e.Field()] = fmt.Sprintf("must be one of: %s", e.Param())
		default:
			messages[e.Field()] = "is invalid"
		}
	}
	return messages
}
