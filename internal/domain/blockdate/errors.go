package blockdate

import "errors"

var (
	ErrBlockNotFound = errors.New("no block exists for this date")
)
