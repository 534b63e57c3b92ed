package formdata

import "errors"

var (
	// ErrNotMultipart is returned when the Content-Type header is missing or
	// does not declare multipart/form-data
	ErrNotMultipart = errors.New("content type is not multipart/form-data")

	// ErrMissingBoundary is returned when the Content-Type header carries no
	// boundary parameter
	ErrMissingBoundary = errors.New("content type has no boundary parameter")

	// ErrBoundaryNotFound is returned when the opening or closing boundary
	// marker is absent from the body
	ErrBoundaryNotFound = errors.New("boundary marker not found in body")

	// ErrMalformedPart is returned when the byte range between the boundary
	// markers is degenerate
	ErrMalformedPart = errors.New("malformed part between boundary markers")

	// ErrNoHeaderTerminator is returned when a part has no blank line
	// separating its headers from its payload
	ErrNoHeaderTerminator = errors.New("part has no header terminator")

	// ErrInvalidFilenameEncoding is returned when the filename attribute
	// contains a malformed percent-encoded sequence
	ErrInvalidFilenameEncoding = errors.New("invalid percent-encoding in filename")
)
