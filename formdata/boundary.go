package formdata

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	contentTypePrefix = "multipart/form-data"
	boundaryParam     = "boundary="
)

// ParseContentType extracts the boundary parameter from a Content-Type
// header value. The header must start with "multipart/form-data" (the prefix
// match is case-sensitive, matching what browsers actually send).
//
// The boundary value is the remainder of the header after the first
// "boundary=" occurrence, taken verbatim: any parameters a sender appends
// after the boundary (e.g. "; charset=utf-8") become part of the value and
// produce a marker that will not match the body. Callers that need
// lenient parameter handling must strip trailing parameters themselves.
func ParseContentType(header string) (string, error) {
	if !strings.HasPrefix(header, contentTypePrefix) {
		return "", fmt.Errorf("%w: %q", ErrNotMultipart, header)
	}

	idx := strings.Index(header, boundaryParam)
	if idx < 0 {
		return "", ErrMissingBoundary
	}

	boundary := header[idx+len(boundaryParam):]
	if boundary == "" {
		return "", ErrMissingBoundary
	}

	return boundary, nil
}

// Locate finds the offsets of the opening boundary marker ("--" + boundary)
// and the closing token (marker + "--") within body. Both searches are
// byte-exact, first-occurrence substring scans: a payload that contains the
// literal closing token will truncate the part early. Returns
// ErrBoundaryNotFound if either marker is absent.
func Locate(body []byte, boundary string) (start, end int, err error) {
	marker := delimiter(boundary)

	start = bytes.Index(body, marker)
	if start < 0 {
		return 0, 0, fmt.Errorf("%w: opening marker %q", ErrBoundaryNotFound, marker)
	}

	closing := append(marker, dashes...)
	end = bytes.Index(body, closing)
	if end < 0 {
		return 0, 0, fmt.Errorf("%w: closing marker %q", ErrBoundaryNotFound, closing)
	}

	return start, end, nil
}

var dashes = []byte("--")

// delimiter returns the boundary marker as it appears on the wire.
func delimiter(boundary string) []byte {
	marker := make([]byte, 0, len(boundary)+len(dashes)*2)
	marker = append(marker, dashes...)
	return append(marker, boundary...)
}
