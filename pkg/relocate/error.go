package relocate

import "errors"

var (
	ErrClockMissing = errors.New("clock is missing.")
)
