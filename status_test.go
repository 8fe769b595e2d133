package safecall_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-github/v67/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/safecall"
)

// legacyError follows the HTTPStatus accessor convention instead of StatusCode.
type legacyError struct {
	status int
}

func (e *legacyError) Error() string   { return "legacy failure" }
func (e *legacyError) HTTPStatus() int { return e.status }

func TestStatusError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *safecall.StatusError
		want string
	}{
		{
			name: "without cause",
			err:  safecall.NewStatusError(http.StatusNotFound, "user not found"),
			want: "[404] user not found",
		},
		{
			name: "with cause",
			err:  safecall.WrapStatus(errors.New("EOF"), http.StatusBadGateway, "upstream failed"),
			want: "[502] upstream failed: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStatusError_Accessors(t *testing.T) {
	cause := errors.New("EOF")
	err := safecall.WrapStatus(cause, http.StatusBadGateway, "upstream failed")

	assert.Equal(t, http.StatusBadGateway, err.StatusCode())
	assert.Equal(t, "upstream failed", err.Message())
	assert.ErrorIs(t, err, cause)
}

func TestWrapStatus_NilError(t *testing.T) {
	require.Nil(t, safecall.WrapStatus(nil, http.StatusNotFound, "ignored"))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOK   bool
	}{
		{
			name:     "nil error",
			err:      nil,
			wantCode: 0,
			wantOK:   false,
		},
		{
			name:     "status error",
			err:      safecall.NewStatusError(http.StatusNotFound, "missing"),
			wantCode: http.StatusNotFound,
			wantOK:   true,
		},
		{
			name:     "wrapped status error",
			err:      fmt.Errorf("fetching: %w", safecall.NewStatusError(http.StatusForbidden, "denied")),
			wantCode: http.StatusForbidden,
			wantOK:   true,
		},
		{
			name:     "HTTPStatus accessor convention",
			err:      &legacyError{status: http.StatusConflict},
			wantCode: http.StatusConflict,
			wantOK:   true,
		},
		{
			name: "go-github error response",
			err: &github.ErrorResponse{
				Response: &http.Response{StatusCode: http.StatusUnprocessableEntity},
			},
			wantCode: http.StatusUnprocessableEntity,
			wantOK:   true,
		},
		{
			name: "go-github rate limit error",
			err: &github.RateLimitError{
				Response: &http.Response{StatusCode: http.StatusForbidden},
			},
			wantCode: http.StatusForbidden,
			wantOK:   true,
		},
		{
			name: "go-github abuse rate limit error",
			err: &github.AbuseRateLimitError{
				Response: &http.Response{StatusCode: http.StatusTooManyRequests},
			},
			wantCode: http.StatusTooManyRequests,
			wantOK:   true,
		},
		{
			name:     "plain error carries no code",
			err:      errors.New("connection refused"),
			wantCode: 0,
			wantOK:   false,
		},
		{
			name:     "zero code is treated as absent",
			err:      safecall.NewStatusError(0, "no status recorded"),
			wantCode: 0,
			wantOK:   false,
		},
		{
			name:     "negative code is treated as absent",
			err:      safecall.NewStatusError(-1, "bogus status"),
			wantCode: 0,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := safecall.StatusFromError(tt.err)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantCode, code)
		})
	}
}

func TestErrorFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     *http.Response
		wantNil  bool
		wantCode int
	}{
		{
			name:    "nil response",
			resp:    nil,
			wantNil: true,
		},
		{
			name:    "success status",
			resp:    &http.Response{StatusCode: http.StatusOK},
			wantNil: true,
		},
		{
			name:    "redirect status",
			resp:    &http.Response{StatusCode: http.StatusFound},
			wantNil: true,
		},
		{
			name:     "client error status",
			resp:     &http.Response{StatusCode: http.StatusNotFound},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "server error status",
			resp:     &http.Response{StatusCode: http.StatusServiceUnavailable},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := safecall.ErrorFromResponse(tt.resp)
			if tt.wantNil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			code, ok := safecall.StatusFromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestIsStatus(t *testing.T) {
	err := safecall.NewStatusError(http.StatusNotFound, "missing")

	assert.True(t, safecall.IsStatus(err, http.StatusNotFound))
	assert.False(t, safecall.IsStatus(err, http.StatusForbidden))
	assert.False(t, safecall.IsStatus(errors.New("plain"), http.StatusNotFound))
	assert.False(t, safecall.IsStatus(nil, http.StatusNotFound))
}
