package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error type carried from services back to the
// routes. A nil ErrorResponse means success; a non-nil one marshals
// directly as the response body.
type ErrorResponse interface {
	Code() int
}

type simpleError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *simpleError) Code() int {
	return e.Status
}

var (
	InternalServerError      = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError       = NewSimple(http.StatusBadRequest, "Malformed request body")
	NotFoundError            = NewSimple(http.StatusNotFound, "Resource not found")
	InvalidAuthTokenError    = NewSimple(http.StatusUnauthorized, "Invalid or missing auth token")
	UserAlreadyExistsError   = NewSimple(http.StatusConflict, "A user with this email already exists")
	CredentialsMismatchError = NewSimple(http.StatusUnauthorized, "Email or password is incorrect")
)

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{Status: code, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter '%s'", name))
}

func NewInvalidParamTypeError(name, want string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter '%s' must be of type %s", name, want))
}

// NewNotFound reports that the referenced record does not exist,
// naming the entity type and id.
func NewNotFound(entity string, id int) ErrorResponse {
	return NewSimple(http.StatusNotFound, fmt.Sprintf("%s %d not found", entity, id))
}

func NewConflict(message string) ErrorResponse {
	return NewSimple(http.StatusConflict, message)
}

func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}
	return NewSimple(http.StatusBadRequest, "Validation failed: "+strings.Join(parts, ", "))
}
