package validatorx

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/ksagri/agroexport-api/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterTagNameFunc(jsonTagName)
}

// jsonTagName makes field errors report the json field name instead of the
// Go struct field name.
func jsonTagName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateRequest validates a request struct and converts any failures into
// a ValidationError with one entry per invalid field.
func ValidateRequest(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return errors.NewValidationError(fields...)
}

func fieldMessage(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "please provide a valid email"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be negative", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "e164", "phone":
		return "please provide a valid phone number"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
