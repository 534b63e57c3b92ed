// Package file provides storage backends for decoded upload payloads.
//
// The package includes:
//   - A Storage interface abstracting where payload bytes end up
//   - LocalStorage for filesystem storage confined to a base directory
//   - S3Storage for AWS S3 and S3-compatible services
//   - Helpers for MIME type detection and extension extraction
//
// Example usage with LocalStorage:
//
//	storage, err := file.NewLocalStorage("./uploads", "/files")
//	if err != nil {
//	    return err
//	}
//
//	info, err := storage.Save(ctx, "report.pdf", payload)
//	if err != nil {
//	    return err
//	}
//
//	url := storage.URL(info.RelativePath)
//
// Example usage with S3Storage:
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//	    Bucket: "my-bucket",
//	    Region: "us-east-1",
//	})
//	if err != nil {
//	    return err
//	}
//
//	info, err := storage.Save(ctx, "report.pdf", payload)
package file
