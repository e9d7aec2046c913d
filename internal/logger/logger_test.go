package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	defer func() { Log = zap.NewNop() }()

	require.NoError(t, Initialize("DEBUG"))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	assert.Error(t, Initialize("not a level"))
}

func TestGetContextLogger(t *testing.T) {
	l := zap.NewExample()

	//nolint:staticcheck
	assert.Equal(t, Log, GetContextLogger(nil))
	assert.Equal(t, Log, GetContextLogger(context.Background()))
	assert.Equal(t, l, GetContextLogger(WithLogger(context.Background(), l)))
}

func TestRequestLogger(t *testing.T) {
	var ctxLogger *zap.Logger

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = GetContextLogger(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	}))

	t.Run("generated request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.NotNil(t, ctxLogger)
	})

	t.Run("request id from header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(RequestIDHeader, "42")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "42", w.Header().Get(RequestIDHeader))
	})
}
