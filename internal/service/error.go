package service

import "errors"

var (
	ErrInternal      = errors.New("INTERNAL_ERROR")
	ErrEmptySender   = errors.New("EMPTY_SENDER")
	ErrForwardFailed = errors.New("FORWARD_FAILED")
)
