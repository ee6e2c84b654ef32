package constants

import "net/http"

const (
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

const (
	ErrMsgInternalError    = "Internal server error"
	ErrMsgNotFound         = "resource not found"
	ErrMsgMethodNotAllowed = "method not allowed"
)

var errorMessages = map[string]string{
	ErrCodeInternalError:    ErrMsgInternalError,
	ErrCodeNotFound:         ErrMsgNotFound,
	ErrCodeMethodNotAllowed: ErrMsgMethodNotAllowed,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusMethodNotAllowed:
		return ErrCodeMethodNotAllowed
	default:
		return ErrCodeInternalError
	}
}
