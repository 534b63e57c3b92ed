package formdata

import (
	"bytes"
	"fmt"
)

var (
	crlf             = []byte("\r\n")
	headerTerminator = []byte("\r\n\r\n")
)

// Part is a single decoded section of a multipart body.
type Part struct {
	// FieldName is the form field name from the Content-Disposition header.
	FieldName string

	// Filename is the percent-decoded original filename. Empty when the
	// disposition carries no usable filename attribute.
	Filename string

	// Payload holds the exact bytes between the part's header terminator
	// and the closing boundary marker, without the framing CRLF.
	Payload []byte
}

// extract returns the byte range strictly between the end of the opening
// marker line and the start of the closing marker.
func extract(body []byte, start, end, markerLen int) ([]byte, error) {
	contentStart := start + markerLen + len(crlf)
	if end <= contentStart {
		return nil, fmt.Errorf("%w: empty byte range between boundary markers", ErrMalformedPart)
	}
	return body[contentStart:end], nil
}

// splitHeadersAndBody cuts raw part content at the first blank line. The
// payload is everything after the double line terminator through the end of
// the raw content.
func splitHeadersAndBody(raw []byte) (headerBlock, payload []byte, err error) {
	idx := bytes.Index(raw, headerTerminator)
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: no blank line after part headers", ErrNoHeaderTerminator)
	}
	return raw[:idx], raw[idx+len(headerTerminator):], nil
}

// Parse decodes the first part of a multipart/form-data body. It validates
// the Content-Type header, frames the part between the boundary markers,
// splits headers from payload and recovers the disposition metadata.
//
// The returned Part aliases body; callers must not reuse the buffer while
// the Part is alive.
func Parse(contentType string, body []byte) (*Part, error) {
	boundary, err := ParseContentType(contentType)
	if err != nil {
		return nil, err
	}

	start, end, err := Locate(body, boundary)
	if err != nil {
		return nil, err
	}

	raw, err := extract(body, start, end, len(boundary)+len(dashes))
	if err != nil {
		return nil, err
	}

	headerBlock, payload, err := splitHeadersAndBody(raw)
	if err != nil {
		return nil, err
	}

	disp, err := ParseDisposition(ParseHeaders(string(headerBlock)).Get("Content-Disposition"))
	if err != nil {
		return nil, err
	}

	// The CRLF before the closing marker belongs to the framing, not the
	// payload.
	payload = bytes.TrimSuffix(payload, crlf)

	return &Part{
		FieldName: disp.FieldName,
		Filename:  disp.Filename,
		Payload:   payload,
	}, nil
}
