package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dropkit/dropkit/file"
	"github.com/dropkit/dropkit/formdata"
	"github.com/dropkit/dropkit/pkg/httpserver"
	"github.com/dropkit/dropkit/pkg/logger"
	"github.com/dropkit/dropkit/pkg/requestid"
	"github.com/dropkit/dropkit/upload"
)

// DefaultMaxUploadSize caps buffered request bodies (10MB).
const DefaultMaxUploadSize = 10 << 20 // 10 MB

// Handler serves the upload endpoints.
type Handler struct {
	svc     *upload.Service
	storage file.Storage
	log     *slog.Logger
	maxSize int64
}

// Option configures the Handler.
type Option func(*Handler)

// WithMaxUploadSize caps the buffered request body size in bytes.
func WithMaxUploadSize(n int64) Option {
	if n <= 0 {
		panic("WithMaxUploadSize: size must be > 0")
	}
	return func(h *Handler) { h.maxSize = n }
}

// WithLogger supplies an external slog.Logger instance.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// New returns a Handler serving the given upload service and storage.
func New(svc *upload.Service, storage file.Storage, opts ...Option) *Handler {
	h := &Handler{
		svc:     svc,
		storage: storage,
		log:     slog.New(slog.DiscardHandler),
		maxSize: DefaultMaxUploadSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router assembles the HTTP routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)

	r.Get("/", h.index)
	r.Post("/upload", h.upload)
	r.Get("/files", h.listFiles)
	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), h.log))

	return r
}

// upload buffers the whole request body and hands it to the upload service.
// The decoder operates on complete bodies only, so buffering happens here at
// the transport edge.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body exceeds upload limit")
			return
		}
		writeError(w, http.StatusBadRequest, "unreadable_body", "failed to read request body")
		return
	}

	info, err := h.svc.Receive(r.Context(), r.Header.Get("Content-Type"), body)
	if err != nil {
		status, code := uploadErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "upload failed",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(err),
			)
		}
		writeError(w, status, code, err.Error())
		return
	}

	writeData(w, http.StatusCreated, map[string]any{
		"filename":  info.Filename,
		"size":      info.Size,
		"mime_type": info.MIMEType,
		"url":       h.storage.URL(info.RelativePath),
	})
}

// listFiles returns the entries stored in the upload directory root.
func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := h.storage.List(r.Context(), ".")
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list files", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "list_failed", "failed to list stored files")
		return
	}

	files := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		files = append(files, map[string]any{
			"name": e.Name,
			"size": e.Size,
			"url":  h.storage.URL(e.Path),
		})
	}

	writeData(w, http.StatusOK, files)
}

// uploadErrorStatus maps service errors to HTTP responses. Parse errors are
// the client's fault; anything else means storage trouble.
func uploadErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, formdata.ErrNotMultipart):
		return http.StatusUnsupportedMediaType, "not_multipart"
	case errors.Is(err, formdata.ErrMissingBoundary):
		return http.StatusBadRequest, "missing_boundary"
	case errors.Is(err, formdata.ErrBoundaryNotFound):
		return http.StatusBadRequest, "boundary_not_found"
	case errors.Is(err, formdata.ErrMalformedPart):
		return http.StatusBadRequest, "malformed_part"
	case errors.Is(err, formdata.ErrNoHeaderTerminator):
		return http.StatusBadRequest, "no_header_terminator"
	case errors.Is(err, formdata.ErrInvalidFilenameEncoding):
		return http.StatusBadRequest, "invalid_filename_encoding"
	default:
		return http.StatusInternalServerError, "storage_failed"
	}
}
