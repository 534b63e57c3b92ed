package sanitizer

import "strings"

// FileName maps an arbitrary, possibly hostile filename to one safe for use
// as a single path component. Every rune outside [A-Za-z0-9._-] is replaced
// one-for-one with an underscore, so path separators, null bytes and control
// characters cannot survive. The mapping is idempotent.
//
// The result is deliberately not checked for emptiness, length or reserved
// device names; storage backends confine resolved paths to their base
// directory independently.
func FileName(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, raw)
}
