package gallery

import "errors"

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrInvalidImage  = errors.New("file is not a supported image")
)
