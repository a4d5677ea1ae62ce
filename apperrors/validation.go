package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromBinding turns a gin binding error into a validation error carrying one
// message per offending field, keyed by its json name.
func FromBinding(err error, input interface{}) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return &Error{Kind: KindValidation, Message: fmt.Sprintf("%s has an invalid type", typeErr.Field), Err: err}
		case errors.As(err, &syntaxErr):
			return &Error{Kind: KindValidation, Message: "Malformed JSON body", Err: err}
		}
		return &Error{Kind: KindValidation, Message: "Invalid request body", Err: err}
	}

	fields := make(map[string]string, len(verrs))
	first := ""
	for _, fe := range verrs {
		name := jsonName(input, fe)
		msg := fieldMessage(fe)
		fields[name] = msg
		if first == "" {
			first = fmt.Sprintf("%s: %s", name, msg)
		}
	}
	return &Error{Kind: KindValidation, Message: first, Fields: fields, Err: err}
}

func jsonName(input interface{}, fe validator.FieldError) string {
	t := reflect.TypeOf(input)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "numeric":
		return "must be numeric"
	case "eqfield":
		return fmt.Sprintf("must match %s", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}
