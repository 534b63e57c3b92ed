// Package upload composes the multipart decoder, filename sanitizer and a
// storage backend into a single-file upload service.
//
// A Service is constructed once with its storage collaborator and reused for
// every request; it holds no per-request state:
//
//	storage, _ := file.NewLocalStorage("./uploads", "/files")
//	svc := upload.New(storage, upload.WithFieldName("myFile"))
//
//	info, err := svc.Receive(ctx, r.Header.Get("Content-Type"), body)
//
// HandleUpload performs the pure parse-and-sanitize step without touching
// storage; Receive additionally persists the payload. Parse failures surface
// as formdata sentinel errors, storage failures as file package errors, so
// callers can tell malformed input apart from I/O trouble.
package upload
