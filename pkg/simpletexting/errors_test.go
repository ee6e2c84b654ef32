package simpletexting_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Behyna/smsrouter/pkg/simpletexting"
	"github.com/stretchr/testify/assert"
)

func TestMapStatusToError(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		expectedError error
	}{
		{name: "Unauthorized", statusCode: 401, expectedError: simpletexting.ErrUnauthorized},
		{name: "Forbidden", statusCode: 403, expectedError: simpletexting.ErrUnauthorized},
		{name: "NotFound", statusCode: 404, expectedError: simpletexting.ErrNotFound},
		{name: "BadRequest", statusCode: 400, expectedError: simpletexting.ErrInvalidRequest},
		{name: "UnprocessableEntity", statusCode: 422, expectedError: simpletexting.ErrInvalidRequest},
		{name: "InternalServerError", statusCode: 500, expectedError: simpletexting.ErrServerError},
		{name: "TooManyRequests", statusCode: 429, expectedError: simpletexting.ErrServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedError, simpletexting.MapStatusToError(tc.statusCode))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, simpletexting.ErrCodeNotAccepted,
		simpletexting.ErrorCode(fmt.Errorf("%w: code 0", simpletexting.ErrNotAccepted)))
	assert.Equal(t, simpletexting.ErrCodeTimeout, simpletexting.ErrorCode(simpletexting.ErrTimeout))
	assert.Equal(t, simpletexting.ErrCodeServerError, simpletexting.ErrorCode(errors.New("boom")))
}
