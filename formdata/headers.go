package formdata

import (
	"fmt"
	"net/url"
	"strings"
)

// PartHeaders maps lower-cased header names to their raw values.
type PartHeaders map[string]string

// Get looks up a header value by case-insensitive name.
func (h PartHeaders) Get(name string) string {
	return h[strings.ToLower(name)]
}

// ParseHeaders tokenizes a part's header block line by line. Each line is
// split at the first colon; lines without one are skipped. Later duplicates
// overwrite earlier ones.
func ParseHeaders(block string) PartHeaders {
	headers := make(PartHeaders)
	for _, line := range strings.Split(block, "\r\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		headers[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
	return headers
}

// Disposition carries the metadata recovered from a Content-Disposition
// header value.
type Disposition struct {
	// FieldName is the value of the name parameter, empty when the parameter
	// is absent or unquoted.
	FieldName string

	// Filename is the percent-decoded value of the filename parameter, empty
	// when the parameter is absent, unquoted or the disposition type is not
	// form-data.
	Filename string
}

// ParseDisposition walks the disposition value one semicolon-separated token
// at a time. Parameters must be double-quoted to be recognized; malformed
// quoting yields an empty result rather than an error. The filename value is
// percent-decoded, and a malformed percent sequence fails the parse with
// ErrInvalidFilenameEncoding.
func ParseDisposition(value string) (Disposition, error) {
	var d Disposition
	formData := false

	for _, token := range strings.Split(value, ";") {
		token = strings.TrimSpace(token)

		key, val, ok := strings.Cut(token, "=")
		if !ok {
			if strings.EqualFold(token, "form-data") {
				formData = true
			}
			continue
		}

		val, quoted := unquote(strings.TrimSpace(val))
		if !quoted {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			d.FieldName = val
		case "filename":
			decoded, err := url.PathUnescape(val)
			if err != nil {
				return Disposition{}, fmt.Errorf("%w: %v", ErrInvalidFilenameEncoding, err)
			}
			d.Filename = decoded
		}
	}

	if !formData {
		return Disposition{}, nil
	}
	return d, nil
}

// unquote strips one layer of double quotes and reports whether the value
// was properly quoted.
func unquote(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1], true
	}
	return s, false
}
