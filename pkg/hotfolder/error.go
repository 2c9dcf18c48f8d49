package hotfolder

import "errors"

var (
	ErrConfigMissing       = errors.New("config is missing.")
	ErrDirMonitorMissing   = errors.New("directory monitor is missing.")
	ErrDocProcessorMissing = errors.New("document processor is missing.")
)
