package page

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildShortURL(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		code   string
		want   string
	}{
		{
			name:   "plain code",
			origin: "http://localhost:8080",
			code:   "abc123",
			want:   "http://localhost:8080?c=abc123",
		},
		{
			name:   "code with reserved symbols",
			origin: "https://example.com",
			code:   "a&b",
			want:   "https://example.com?c=a%26b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildShortURL(tt.origin, tt.code))
		})
	}
}

func TestNetworkError(t *testing.T) {
	err := NewNetworkError(ErrShortenURL, io.ErrUnexpectedEOF)

	assert.EqualError(t, err, ErrShortenURL.Error())
	assert.True(t, errors.Is(err, ErrShortenURL))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.False(t, errors.Is(err, ErrRedirectToURL))

	var ne *NetworkError
	assert.True(t, errors.As(err, &ne))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "interactive", ModeInteractive.String())
	assert.Equal(t, "redirect", ModeRedirect.String())
}
