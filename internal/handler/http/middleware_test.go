package http

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-list/internal/logger"
	"github.com/MKhiriev/go-blog-list/internal/service"
	"github.com/MKhiriev/go-blog-list/internal/store"
	"github.com/MKhiriev/go-blog-list/internal/validators"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestWithGZip_NoContentIsNotCompressed(t *testing.T) {
	h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_PlainClient(t *testing.T) {
	h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var got string
	h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"title":"t"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"title":"t"}`, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, msgMalformedBody), rr.Body.String())
}

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, logger.FromRequest(r))
	}))

	t.Run("echoes incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		next.ServeHTTP(rr, req)
		assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
	})

	t.Run("generates when missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		next.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, rr.Header().Get(traceIDHeader), 36)
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, strings.Repeat("x", maxTraceIDLength+1))
		rr := httptest.NewRecorder()
		next.ServeHTTP(rr, req)
		assert.Len(t, rr.Header().Get(traceIDHeader), 36)
	})
}

func TestWithLogging_PassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	}))

	rr := httptest.NewRecorder()
	next.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "tea", rr.Body.String())
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit status", func(t *testing.T) {
		w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		assert.Equal(t, http.StatusOK, w.Status())

		n, err := w.Write([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, 5, w.size)
		assert.Equal(t, http.StatusOK, w.Status())
	})

	t.Run("first header wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, w.Status())
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Same(t, rec, w.Unwrap())
	})
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "validation", err: fmt.Errorf("wrap: %w", &validators.ValidationError{Message: "title and url are required"}), wantStatus: 400, wantMessage: "title and url are required"},
		{name: "invalid data", err: service.ErrInvalidDataProvided, wantStatus: 400, wantMessage: msgInvalidData},
		{name: "username taken", err: fmt.Errorf("create: %w", store.ErrUsernameTaken), wantStatus: 400, wantMessage: msgUsernameTaken},
		{name: "invalid token", err: service.ErrInvalidToken, wantStatus: 401, wantMessage: msgInvalidToken},
		{name: "expired token", err: service.ErrTokenIsExpired, wantStatus: 401, wantMessage: msgInvalidToken},
		{name: "no identity", err: service.ErrNoIdentity, wantStatus: 401, wantMessage: msgInvalidToken},
		{name: "wrong credentials", err: service.ErrWrongCredentials, wantStatus: 401, wantMessage: msgWrongCredentials},
		{name: "not owner", err: service.ErrNotBlogOwner, wantStatus: 401, wantMessage: msgNotBlogOwner},
		{name: "malformed body", err: fmt.Errorf("%w: eof", ErrMalformedBody), wantStatus: 400, wantMessage: msgMalformedBody},
		{name: "blog not found", err: fmt.Errorf("get: %w", &service.BlogNotFoundError{ID: "b9"}), wantStatus: 404, wantMessage: "blog b9 not found"},
		{name: "unexpected", err: io.ErrUnexpectedEOF, wantStatus: 500, wantMessage: msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
