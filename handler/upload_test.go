package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropkit/dropkit/file"
	"github.com/dropkit/dropkit/handler"
	"github.com/dropkit/dropkit/upload"
)

func newTestServer(t *testing.T, opts ...handler.Option) (http.Handler, string) {
	t.Helper()

	baseDir := t.TempDir()
	storage, err := file.NewLocalStorage(baseDir, "/files")
	require.NoError(t, err)

	svc := upload.New(storage)
	return handler.New(svc, storage, opts...).Router(), baseDir
}

func multipartBody(t *testing.T, field, filename string, payload []byte) (string, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return w.FormDataContentType(), &buf
}

func TestHandler_Upload(t *testing.T) {
	t.Parallel()

	t.Run("stores a well formed upload", func(t *testing.T) {
		t.Parallel()

		router, baseDir := newTestServer(t)
		contentType, body := multipartBody(t, "file", "a b.txt", []byte("HELLO"))

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp handler.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "a_b.txt", data["filename"])
		assert.Equal(t, float64(5), data["size"])
		assert.Equal(t, "/files/a_b.txt", data["url"])

		stored, err := os.ReadFile(filepath.Join(baseDir, "a_b.txt"))
		require.NoError(t, err)
		assert.Equal(t, []byte("HELLO"), stored)
	})

	t.Run("traversal filename cannot escape the upload dir", func(t *testing.T) {
		t.Parallel()

		router, baseDir := newTestServer(t)
		contentType, body := multipartBody(t, "file", "../../etc/passwd", []byte("root"))

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		// Everything written stays inside baseDir.
		entries, err := os.ReadDir(baseDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.NotContains(t, entries[0].Name(), "/")

		_, err = os.Stat(filepath.Join(baseDir, "..", "..", "etc", "passwd"))
		assert.Error(t, err)
	})

	t.Run("non multipart content type", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("HELLO"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_multipart")
	})

	t.Run("missing boundary", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("--X--"))
		req.Header.Set("Content-Type", "multipart/form-data")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing_boundary")
	})

	t.Run("truncated body", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/upload",
			strings.NewReader("--XYZ\r\nContent-Disposition: form-data; name=\"file\"\r\n\r\nHELLO"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=XYZ")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "boundary_not_found")
	})

	t.Run("oversized body", func(t *testing.T) {
		t.Parallel()

		router, _ := newTestServer(t, handler.WithMaxUploadSize(16))
		contentType, body := multipartBody(t, "file", "big.bin", bytes.Repeat([]byte("A"), 1024))

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "payload_too_large")
	})
}

func TestHandler_ListFiles(t *testing.T) {
	t.Parallel()

	router, baseDir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "a.txt"), []byte("A"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "b.txt"), []byte("BB"), 0644))

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	files, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, files, 2)
}

func TestHandler_Index(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `enctype="multipart/form-data"`)
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}
