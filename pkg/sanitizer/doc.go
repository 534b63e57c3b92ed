// Package sanitizer provides deterministic helpers for cleaning un-trusted
// user input before it reaches the filesystem.
//
// All helpers are pure, total functions: they never return an error and
// always produce a safe result for any input. They are stateless and safe
// for concurrent use.
//
// Example:
//
//	safe := sanitizer.FileName("../../etc/passwd") // ".._.._etc_passwd"
//	safe = sanitizer.FileName("a b.txt")           // "a_b.txt"
package sanitizer
