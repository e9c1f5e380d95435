package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "operation stalled" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "gone subscription",
			err:  errors.New("push service returned status 410: subscription expired"),
			want: "http_410",
		},
		{
			name: "missing subscription",
			err:  errors.New("push service returned status 404: not found"),
			want: "http_404",
		},
		{
			name: "status wins over timeout wording",
			err:  errors.New("push service returned status 504: gateway timeout"),
			want: "http_504",
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: "timeout",
		},
		{
			name: "net timeout error",
			err:  fakeTimeoutError{},
			want: "timeout",
		},
		{
			name: "timeout substring",
			err:  errors.New("dial tcp: i/o Timeout"),
			want: "timeout",
		},
		{
			name: "opaque failure",
			err:  errors.New("connection reset by peer"),
			want: "unknown",
		},
		{
			name: "bare number is not a status",
			err:  errors.New("retry budget exhausted after 120 attempts"),
			want: "unknown",
		},
		{
			name: "bare number with timeout wording",
			err:  errors.New("gave up after 503 ms: request timeout"),
			want: "timeout",
		},
		{
			name: "wrapped status",
			err:  errors.Wrap(errors.New("push service returned status 429: slow down"), "send failed"),
			want: "http_429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}

func TestIsTerminalCode(t *testing.T) {
	assert.True(t, isTerminalCode("http_404"))
	assert.True(t, isTerminalCode("http_410"))
	assert.False(t, isTerminalCode("http_500"))
	assert.False(t, isTerminalCode("timeout"))
	assert.False(t, isTerminalCode("unknown"))
}
