package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorized
	ErrAccountLocked
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:          "success",
	ErrInternal:         "internal server error",
	ErrNotFound:         "resource not found",
	ErrInvalidRequest:   "invalid request",
	ErrUnauthorized:     "not authorized to access this route",
	ErrAccountLocked:    "account is temporarily locked due to too many failed login attempts",
	ErrForbidden:        "insufficient role to access this route",
	ErrCredentialExists: "email already registered",
	ErrInvalidPassword:  "invalid credentials",
	ErrTooManyRequests:  "too many requests, please try again later",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:          http.StatusOK,
	ErrInternal:         http.StatusInternalServerError,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnauthorized:     http.StatusUnauthorized,
	ErrAccountLocked:    http.StatusLocked,
	ErrForbidden:        http.StatusForbidden,
	ErrCredentialExists: http.StatusBadRequest,
	ErrInvalidPassword:  http.StatusBadRequest,
	ErrTooManyRequests:  http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:          "0000",
	ErrInternal:         "0001",
	ErrNotFound:         "0002",
	ErrInvalidRequest:   "0003",
	ErrUnauthorized:     "0004",
	ErrAccountLocked:    "0005",
	ErrForbidden:        "0006",
	ErrCredentialExists: "0007",
	ErrInvalidPassword:  "0008",
	ErrTooManyRequests:  "0009",
}
