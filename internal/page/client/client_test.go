package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MisterMaks/go-shortener-page/internal/page"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestURL     string = "example.com"
	TestCode    string = "abc123"
	TestLongURL string = "https://example.com"
)

func newTestAPI(t *testing.T, posts, gets *atomic.Int32) *httptest.Server {
	r := chi.NewRouter()
	r.Post("/urls", func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		assert.Contains(t, r.Header.Get(ContentTypeKey), ApplicationJSONKey)

		var req page.ShortenRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.URL {
		case TestURL:
			w.Header().Set(ContentTypeKey, ApplicationJSONKey)
			w.Write([]byte(`{"code":"` + TestCode + `"}`))
		case "no-code":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid url"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`<html>bad gateway</html>`))
		}
	})
	r.Get("/urls/{code}", func(w http.ResponseWriter, r *http.Request) {
		gets.Add(1)
		switch chi.URLParam(r, "code") {
		case TestCode:
			w.Write([]byte(`{"url":"` + TestLongURL + `"}`))
		case "slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{}`))
		}
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return httptest.NewServer(r)
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(nil, "http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, http.DefaultClient, c.HTTPClient)

	_, err = NewClient(nil, "localhost", 0)
	assert.Error(t, err)

	_, err = NewClient(nil, "ftp://localhost", 0)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestClient_Shorten(t *testing.T) {
	var posts, gets atomic.Int32
	ts := newTestAPI(t, &posts, &gets)
	defer ts.Close()

	c, err := NewClient(ts.Client(), ts.URL, time.Second)
	require.NoError(t, err)

	tests := []struct {
		name     string
		url      string
		wantCode string
		wantErr  error
	}{
		{
			name:     "valid url",
			url:      TestURL,
			wantCode: TestCode,
		},
		{
			name:    "response without code",
			url:     "no-code",
			wantErr: page.ErrEmptyCode,
		},
		{
			name: "not JSON response",
			url:  "broken",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := posts.Load()
			resp, err := c.Shorten(context.Background(), tt.url)
			assert.Equal(t, before+1, posts.Load())

			if tt.wantCode == "" {
				assert.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
	assert.Zero(t, gets.Load())
}

func TestClient_Resolve(t *testing.T) {
	var posts, gets atomic.Int32
	ts := newTestAPI(t, &posts, &gets)
	defer ts.Close()

	c, err := NewClient(ts.Client(), ts.URL, 50*time.Millisecond)
	require.NoError(t, err)

	t.Run("known code", func(t *testing.T) {
		resp, err := c.Resolve(context.Background(), TestCode)
		require.NoError(t, err)
		assert.Equal(t, TestLongURL, resp.URL)
	})

	t.Run("unknown code", func(t *testing.T) {
		resp, err := c.Resolve(context.Background(), "unknown")
		require.NoError(t, err)
		assert.Empty(t, resp.URL)
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := c.Resolve(context.Background(), "slow")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	assert.Equal(t, int32(3), gets.Load())
	assert.Zero(t, posts.Load())
}

func TestClient_Ping(t *testing.T) {
	var posts, gets atomic.Int32
	ts := newTestAPI(t, &posts, &gets)

	c, err := NewClient(ts.Client(), ts.URL, time.Second)
	require.NoError(t, err)
	assert.NoError(t, c.Ping(context.Background()))

	ts.Close()
	assert.Error(t, c.Ping(context.Background()))
}
