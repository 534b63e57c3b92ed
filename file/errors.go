package file

import "errors"

var (
	// ErrInvalidConfig is returned when a storage backend is constructed with
	// incomplete configuration
	ErrInvalidConfig = errors.New("invalid storage configuration")

	// ErrInvalidPath is returned when the path contains traversal attempts or
	// resolves outside the base directory
	ErrInvalidPath = errors.New("invalid path")

	// ErrFileNotFound is returned when a file does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrDirectoryNotFound is returned when a directory does not exist
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNotDirectory is returned when a path is expected to be a directory but isn't
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrIsDirectory is returned when a path is expected to be a file but is a directory
	ErrIsDirectory = errors.New("path is a directory")

	// ErrFailedToWriteFile is returned when a file cannot be written
	ErrFailedToWriteFile = errors.New("failed to write file")

	// ErrFailedToDeleteFile is returned when a file cannot be deleted
	ErrFailedToDeleteFile = errors.New("failed to delete file")

	// ErrFailedToCreateDirectory is returned when a directory cannot be created
	ErrFailedToCreateDirectory = errors.New("failed to create directory")

	// ErrFailedToReadDirectory is returned when a directory cannot be read
	ErrFailedToReadDirectory = errors.New("failed to read directory")

	// ErrFailedToStatPath is returned when file/directory info cannot be obtained
	ErrFailedToStatPath = errors.New("failed to stat path")

	// ErrFailedToGetAbsolutePath is returned when absolute path cannot be determined
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
)
