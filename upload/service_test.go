package upload_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropkit/dropkit/file"
	"github.com/dropkit/dropkit/formdata"
	"github.com/dropkit/dropkit/upload"
)

// memStorage records saved payloads in memory.
type memStorage struct {
	saved   map[string][]byte
	saveErr error
}

func newMemStorage() *memStorage {
	return &memStorage{saved: make(map[string][]byte)}
}

func (m *memStorage) Save(_ context.Context, path string, data []byte) (*file.File, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	m.saved[path] = data
	return &file.File{
		Filename:     path,
		Size:         int64(len(data)),
		MIMEType:     file.DetectMIMEType(data),
		Extension:    file.Extension(path),
		RelativePath: path,
	}, nil
}

func (m *memStorage) Delete(_ context.Context, path string) error {
	delete(m.saved, path)
	return nil
}

func (m *memStorage) Exists(_ context.Context, path string) bool {
	_, ok := m.saved[path]
	return ok
}

func (m *memStorage) List(_ context.Context, _ string) ([]file.Entry, error) {
	entries := make([]file.Entry, 0, len(m.saved))
	for name, data := range m.saved {
		entries = append(entries, file.Entry{Name: name, Path: name, Size: int64(len(data))})
	}
	return entries, nil
}

func (m *memStorage) URL(path string) string { return "/files/" + path }

func buildBody(boundary, disposition, payload string) []byte {
	return []byte("--" + boundary + "\r\n" +
		"Content-Disposition: " + disposition + "\r\n" +
		"\r\n" +
		payload + "\r\n" +
		"--" + boundary + "--")
}

func TestService_HandleUpload(t *testing.T) {
	t.Parallel()

	contentType := "multipart/form-data; boundary=XYZ"

	tests := []struct {
		name         string
		opts         []upload.Option
		contentType  string
		body         []byte
		wantFilename string
		wantPayload  string
		wantErr      error
	}{
		{
			name:         "filename sanitized",
			opts:         []upload.Option{upload.WithFieldName("myFile")},
			contentType:  contentType,
			body:         buildBody("XYZ", `form-data; name="myFile"; filename="a b.txt"`, "HELLO"),
			wantFilename: "a_b.txt",
			wantPayload:  "HELLO",
		},
		{
			name:         "traversal attempt neutralized",
			opts:         []upload.Option{upload.WithFieldName("myFile")},
			contentType:  contentType,
			body:         buildBody("XYZ", `form-data; name="myFile"; filename="../../etc/passwd"`, "HELLO"),
			wantFilename: ".._.._etc_passwd",
			wantPayload:  "HELLO",
		},
		{
			name:         "absent filename falls back to placeholder",
			contentType:  contentType,
			body:         buildBody("XYZ", `form-data; name="file"`, "DATA"),
			wantFilename: upload.DefaultPlaceholder,
			wantPayload:  "DATA",
		},
		{
			name:         "unexpected field name falls back to placeholder",
			contentType:  contentType,
			body:         buildBody("XYZ", `form-data; name="other"; filename="x.txt"`, "DATA"),
			wantFilename: upload.DefaultPlaceholder,
			wantPayload:  "DATA",
		},
		{
			name:         "custom placeholder",
			opts:         []upload.Option{upload.WithPlaceholder("unnamed")},
			contentType:  contentType,
			body:         buildBody("XYZ", `form-data; name="file"`, "DATA"),
			wantFilename: "unnamed",
			wantPayload:  "DATA",
		},
		{
			name:        "not multipart",
			contentType: "text/plain",
			body:        []byte("HELLO"),
			wantErr:     formdata.ErrNotMultipart,
		},
		{
			name:        "missing boundary",
			contentType: "multipart/form-data",
			body:        buildBody("XYZ", `form-data; name="file"`, "DATA"),
			wantErr:     formdata.ErrMissingBoundary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := upload.New(newMemStorage(), tt.opts...)
			res, err := svc.HandleUpload(tt.contentType, tt.body)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilename, res.Filename)
			assert.Equal(t, []byte(tt.wantPayload), res.Payload)
		})
	}
}

func TestService_Receive(t *testing.T) {
	t.Parallel()

	contentType := "multipart/form-data; boundary=XYZ"

	t.Run("persists payload through storage", func(t *testing.T) {
		t.Parallel()

		storage := newMemStorage()
		svc := upload.New(storage, upload.WithFieldName("myFile"))

		body := buildBody("XYZ", `form-data; name="myFile"; filename="a b.txt"`, "HELLO")
		info, err := svc.Receive(context.Background(), contentType, body)
		require.NoError(t, err)
		assert.Equal(t, "a_b.txt", info.Filename)
		assert.Equal(t, int64(5), info.Size)
		assert.Equal(t, []byte("HELLO"), storage.saved["a_b.txt"])
	})

	t.Run("parse errors skip storage", func(t *testing.T) {
		t.Parallel()

		storage := newMemStorage()
		svc := upload.New(storage)

		_, err := svc.Receive(context.Background(), "text/plain", []byte("x"))
		require.ErrorIs(t, err, formdata.ErrNotMultipart)
		assert.Empty(t, storage.saved)
	})

	t.Run("logs stored upload metadata", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		svc := upload.New(newMemStorage(), upload.WithLogger(log))

		body := buildBody("XYZ", `form-data; name="file"; filename="a.txt"`, "HELLO")
		_, err := svc.Receive(context.Background(), contentType, body)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"filename":"a.txt"`)
		assert.Contains(t, buf.String(), `"size":5`)
	})

	t.Run("storage errors surface unchanged", func(t *testing.T) {
		t.Parallel()

		storage := newMemStorage()
		storage.saveErr = errors.New("disk full")
		svc := upload.New(storage)

		body := buildBody("XYZ", `form-data; name="file"; filename="x.txt"`, "DATA")
		_, err := svc.Receive(context.Background(), contentType, body)
		require.ErrorContains(t, err, "disk full")
	})
}
