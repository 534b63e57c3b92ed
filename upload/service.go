package upload

import (
	"context"
	"log/slog"

	"github.com/dropkit/dropkit/file"
	"github.com/dropkit/dropkit/formdata"
	"github.com/dropkit/dropkit/pkg/logger"
	"github.com/dropkit/dropkit/pkg/sanitizer"
)

const (
	// DefaultFieldName is the form field the service accepts files from.
	DefaultFieldName = "file"

	// DefaultPlaceholder names payloads whose disposition carries no usable
	// filename.
	DefaultPlaceholder = "untitled"
)

// Result is the outcome of a successful parse: a filesystem-safe name and
// the decoded payload bytes.
type Result struct {
	// Filename is the sanitized on-disk name.
	Filename string

	// FieldName is the form field the part was submitted under.
	FieldName string

	// Payload holds the decoded file bytes.
	Payload []byte
}

// Service accepts buffered multipart request bodies and turns them into
// stored files. It is stateless and safe for concurrent use.
type Service struct {
	storage     file.Storage
	log         *slog.Logger
	fieldName   string
	placeholder string
}

// Option configures a Service.
type Option func(*Service)

// WithFieldName sets the form field name the service accepts files from.
func WithFieldName(name string) Option {
	if name == "" {
		panic("WithFieldName: name cannot be empty")
	}
	return func(s *Service) { s.fieldName = name }
}

// WithPlaceholder sets the filename used when a part carries no usable
// filename attribute.
func WithPlaceholder(name string) Option {
	if name == "" {
		panic("WithPlaceholder: name cannot be empty")
	}
	return func(s *Service) { s.placeholder = name }
}

// WithLogger supplies an external slog.Logger instance.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a Service persisting uploads through the given storage backend.
// The storage decides where files land; the service never touches ambient
// global state.
func New(storage file.Storage, opts ...Option) *Service {
	s := &Service{
		storage:     storage,
		log:         slog.New(slog.DiscardHandler),
		fieldName:   DefaultFieldName,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleUpload decodes a buffered multipart body and returns the sanitized
// filename together with the payload bytes. It performs no I/O.
//
// A part whose disposition names a different form field, or carries no
// filename at all, is still accepted: its payload is kept and the filename
// falls back to the configured placeholder. Framing and encoding problems
// surface as formdata sentinel errors.
func (s *Service) HandleUpload(contentType string, body []byte) (*Result, error) {
	part, err := formdata.Parse(contentType, body)
	if err != nil {
		return nil, err
	}

	name := part.Filename
	if name == "" || part.FieldName != s.fieldName {
		name = s.placeholder
	}

	return &Result{
		Filename:  sanitizer.FileName(name),
		FieldName: part.FieldName,
		Payload:   part.Payload,
	}, nil
}

// Receive decodes the body and persists the payload through the storage
// backend. Parse errors and storage errors are distinct classes; neither is
// retried, since parsing is deterministic and storage retry policy belongs
// to the backend.
func (s *Service) Receive(ctx context.Context, contentType string, body []byte) (*file.File, error) {
	res, err := s.HandleUpload(contentType, body)
	if err != nil {
		s.log.DebugContext(ctx, "rejected upload", logger.Error(err))
		return nil, err
	}

	info, err := s.storage.Save(ctx, res.Filename, res.Payload)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to store upload",
			logger.Filename(res.Filename),
			logger.Error(err),
		)
		return nil, err
	}

	s.log.InfoContext(ctx, "stored upload",
		logger.Filename(info.Filename),
		logger.Size(info.Size),
		slog.String("mime_type", info.MIMEType),
	)

	return info, nil
}
