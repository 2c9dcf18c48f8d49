package dirmon

import "errors"

var (
	ErrWatchDirMissing = errors.New("watch directory is missing.")
	ErrLoggerMissing   = errors.New("logger is missing.")
)
