package gzip

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/MisterMaks/go-shortener-page/internal/logger"
	"go.uber.org/zap"
)

// Used constants.
const (
	ContentTypeKey     string = "Content-Type"
	TextHTMLKey        string = "text/html"
	ApplicationJSONKey string = "application/json"
	GzipKey            string = "gzip"
	ContentEncodingKey string = "Content-Encoding"
	ContentLengthKey   string = "Content-Length"
	AcceptEncodingKey  string = "Accept-Encoding"
	VaryKey            string = "Vary"
)

func compressible(contentType string) bool {
	return strings.Contains(contentType, TextHTMLKey) || strings.Contains(contentType, ApplicationJSONKey)
}

// compressWriter compresses successful HTML and JSON responses. Anything
// else, redirects included, is written as is.
type compressWriter struct {
	w           http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func newCompressWriter(w http.ResponseWriter) *compressWriter {
	return &compressWriter{w: w}
}

// Header return response header.
func (c *compressWriter) Header() http.Header {
	return c.w.Header()
}

// WriteHeader decides whether the body is compressed.
func (c *compressWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	if statusCode < 300 && compressible(c.w.Header().Get(ContentTypeKey)) {
		c.w.Header().Set(ContentEncodingKey, GzipKey)
		c.w.Header().Del(ContentLengthKey)
		c.zw = gzip.NewWriter(c.w)
	}
	c.w.WriteHeader(statusCode)
}

// Write write data.
func (c *compressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.zw == nil {
		return c.w.Write(p)
	}
	return c.zw.Write(p)
}

// Close flushes the compressed data, if any.
func (c *compressWriter) Close() error {
	if c.zw == nil {
		return nil
	}
	return c.zw.Close()
}

// compressReader decompresses a gzip request body.
type compressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &compressReader{
		r:  r,
		zr: zr,
	}, nil
}

// Read read data.
func (c compressReader) Read(p []byte) (n int, err error) {
	return c.zr.Read(p)
}

// Close close reader.
func (c *compressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

// GzipMiddleware compresses page responses for clients accepting gzip and
// decompresses gzip request bodies.
func GzipMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger := logger.GetContextLogger(r.Context())

		ow := w
		w.Header().Add(VaryKey, AcceptEncodingKey)

		if strings.Contains(r.Header.Get(AcceptEncodingKey), GzipKey) {
			cw := newCompressWriter(w)
			ow = cw
			defer func() {
				if err := cw.Close(); err != nil {
					ctxLogger.Warn("Failed to close compressWriter", zap.Error(err))
				}
			}()
		}

		if strings.Contains(r.Header.Get(ContentEncodingKey), GzipKey) {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				ctxLogger.Warn("Failed to read gzip body", zap.Error(err))
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body = cr
			defer func() {
				if err := cr.Close(); err != nil {
					ctxLogger.Warn("Failed to close compressReader", zap.Error(err))
				}
			}()
		}

		h.ServeHTTP(ow, r)
	})
}
