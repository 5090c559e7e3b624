package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInsufficientText    = errors.New("could not extract sufficient text from file")
	ErrUploadFailed        = errors.New("artifact upload to storage failed")
)
