package printer

import "errors"

var (
	ErrSpoolCommandMissing = errors.New("spool command is missing.")
	ErrRunnerMissing       = errors.New("command runner is missing.")
)
