package errors

import (
	"errors"
	"net/http"

	"github.com/ksagri/agroexport-api/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// FieldError reports a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full set of field-level failures for one
// request. It maps to HTTP 400 and is never retried.
type ValidationError struct {
	Fields []FieldError
}

func (v ValidationError) Error() string {
	return "validation errors"
}

func (v ValidationError) ErrorHTTPCode() int {
	return http.StatusBadRequest
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields ...FieldError) ValidationError {
	return ValidationError{Fields: fields}
}

// AsValidation extracts a ValidationError when err is one.
func AsValidation(err error) (ValidationError, bool) {
	var v ValidationError
	ok := errors.As(err, &v)
	return v, ok
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, t constant.ErrorType) bool {
	var c CustomError
	if !errors.As(err, &c) {
		return false
	}
	return c.errType == t
}
