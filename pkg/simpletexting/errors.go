package simpletexting

import (
	"errors"
	"net/http"
)

// AcceptedCode is the value of "code" in a send response the provider has accepted.
const AcceptedCode = 1

const (
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeServerError    = "SERVER_ERROR"
	ErrCodeTimeout        = "TIMEOUT"
	ErrCodeNetworkError   = "NETWORK_ERROR"
	ErrCodeNotAccepted    = "NOT_ACCEPTED"
)

var (
	ErrUnauthorized   = errors.New(ErrCodeUnauthorized)
	ErrNotFound       = errors.New(ErrCodeNotFound)
	ErrInvalidRequest = errors.New(ErrCodeInvalidRequest)
	ErrServerError    = errors.New(ErrCodeServerError)
	ErrTimeout        = errors.New(ErrCodeTimeout)
	ErrNetworkError   = errors.New(ErrCodeNetworkError)
	ErrNotAccepted    = errors.New(ErrCodeNotAccepted)
)

var statusErrorMap = map[int]error{
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusBadRequest:          ErrInvalidRequest,
	http.StatusUnprocessableEntity: ErrInvalidRequest,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}

// ErrorCode reports the provider error code carried by err, or ErrCodeServerError
// for errors this package did not produce.
func ErrorCode(err error) string {
	for _, known := range []error{ErrUnauthorized, ErrNotFound, ErrInvalidRequest, ErrTimeout,
		ErrNetworkError, ErrNotAccepted, ErrServerError} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return ErrCodeServerError
}
