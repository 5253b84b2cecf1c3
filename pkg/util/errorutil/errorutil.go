package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a DomainError. The set is closed; Status switches over every value.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidPayload
	KindUnauthorized
	KindTokenMissing
	KindTokenInvalid
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindInvalidPayload:
		return "INVALID_PAYLOAD"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindTokenMissing:
		return "TOKEN_MISSING"
	case KindTokenInvalid:
		return "TOKEN_INVALID"
	case KindEmpty:
		return "EMPTY"
	default:
		return "INTERNAL_ERROR"
	}
}

// Violation is a single field-level rule failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError standardizes application errors.
type DomainError struct {
	Kind       Kind
	Message    string
	Violations []Violation
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewNotFound(message string) error {
	return &DomainError{Kind: KindNotFound, Message: message}
}

// NewInvalidPayload reports a rejected payload. violations may be nil when the
// rejection came from the store rather than the validation rules.
func NewInvalidPayload(message string, violations []Violation) error {
	return &DomainError{Kind: KindInvalidPayload, Message: message, Violations: violations}
}

func NewUnauthorized(message string) error {
	return &DomainError{Kind: KindUnauthorized, Message: message}
}

func NewTokenMissing() error {
	return &DomainError{Kind: KindTokenMissing, Message: "No token provided"}
}

func NewTokenInvalid() error {
	return &DomainError{Kind: KindTokenInvalid, Message: "Unauthorised"}
}

func NewEmpty(message string) error {
	return &DomainError{Kind: KindEmpty, Message: message}
}

// NewInternalError keeps the cause's message visible to the caller.
func NewInternalError(err error) error {
	msg := "internal server error"
	if err != nil {
		msg = err.Error()
	}
	return &DomainError{Kind: KindInternal, Message: msg, Err: err}
}

// ToDomainError converts generic errors to DomainError. Anything unrecognised
// becomes KindInternal carrying the original message.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{Kind: KindInternal, Message: err.Error(), Err: err}
}

// Status returns the HTTP status for a kind.
func Status(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidPayload:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindTokenMissing:
		return http.StatusForbidden
	case KindTokenInvalid:
		return http.StatusUnauthorized
	case KindEmpty:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON body written for a failed request.
type Response struct {
	Message string      `json:"message"`
	Errors  []Violation `json:"errors,omitempty"`
}

// MapError converts err into a status code and response body.
func MapError(err error) (int, Response) {
	domainErr := ToDomainError(err)
	if domainErr == nil {
		return http.StatusOK, Response{}
	}
	return Status(domainErr.Kind), Response{Message: domainErr.Message, Errors: domainErr.Violations}
}
