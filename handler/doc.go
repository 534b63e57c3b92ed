// Package handler exposes the upload service over HTTP.
//
// The router buffers each request body fully before handing it to the
// upload service (the decoder requires the complete body in memory), maps
// every parse error to a precise 4xx response, and reserves 5xx for storage
// failures. Responses use a JSON envelope with "data" and "error" members.
package handler
