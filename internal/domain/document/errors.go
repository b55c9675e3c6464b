package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrEmptyFile        = errors.New("file is empty")
	ErrFileTooLarge     = errors.New("file exceeds maximum size")
	ErrUnsupportedType  = errors.New("file type not allowed")
)
