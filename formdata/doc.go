// Package formdata decodes single-part multipart/form-data request bodies.
//
// The package operates on a fully buffered body: callers read the entire
// request into memory first, then hand the raw bytes together with the
// Content-Type header value to Parse. Decoding is a pure, single-pass
// transformation with no I/O and no shared state, so it is safe to call
// concurrently as long as each call owns its buffer.
//
// Parsing is split into small, independently testable steps:
//
//   - ParseContentType extracts the boundary parameter from the header.
//   - Locate finds the opening and closing boundary markers in the body.
//   - ParseHeaders and ParseDisposition tokenize the part's header block.
//   - Parse composes all of the above into a Part.
//
// Every failure mode is a package-level sentinel error, so callers can map
// malformed input to precise HTTP responses with errors.Is:
//
//	part, err := formdata.Parse(r.Header.Get("Content-Type"), body)
//	switch {
//	case errors.Is(err, formdata.ErrNotMultipart):
//		// 415 Unsupported Media Type
//	case err != nil:
//		// 400 Bad Request
//	}
//
// The package deliberately decodes only the first part of the body; requests
// carrying several files are outside its contract.
package formdata
