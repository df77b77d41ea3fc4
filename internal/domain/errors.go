package domain

import "errors"

// Domain errors
var (
	ErrDocumentRead    = errors.New("document could not be read")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilename = errors.New("invalid filename")
	ErrCacheCorrupt    = errors.New("cache artifact is malformed")
)

// DocumentReadError reports a PDF that could not be opened or parsed.
type DocumentReadError struct {
	Path string
	Err  error
}

func (e *DocumentReadError) Error() string {
	if e.Err != nil {
		return "read " + e.Path + ": " + e.Err.Error()
	}
	return "read " + e.Path + ": " + ErrDocumentRead.Error()
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrDocumentRead) hold for every DocumentReadError.
func (e *DocumentReadError) Is(target error) bool {
	return target == ErrDocumentRead
}
