package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storeapi/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// A zero Date counts as missing.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(model.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.String()
	}, model.Date{})
	return v
}

// decodeBody parses the JSON body into dst and validates it. It returns the
// per-field problems, or nil when dst is usable.
func decodeBody(c *fiber.Ctx, dst any) map[string]string {
	if len(c.Body()) == 0 {
		return map[string]string{"body": "request body is required"}
	}
	if err := c.App().Config().JSONDecoder(c.Body(), dst); err != nil {
		return decodeDetails(err)
	}
	if err := validate.Struct(dst); err != nil {
		return validationDetails(err)
	}
	return nil
}

// decodeDetails keys a decode failure by the JSON field that caused it when
// the decoder knows it.
func decodeDetails(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		if typeErr.Type == model.DateType {
			return map[string]string{typeErr.Field: msgDate}
		}
		return map[string]string{typeErr.Field: "invalid type, expected " + typeErr.Type.Kind().String()}
	}
	// Syntax errors and top level type mismatches carry nothing worth echoing.
	return map[string]string{"body": "malformed JSON"}
}

func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fieldMessage(fe)
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
