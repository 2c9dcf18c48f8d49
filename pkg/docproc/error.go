package docproc

import "errors"

var (
	ErrEventChanMissing = errors.New("file event channel is missing.")
	ErrExtractorMissing = errors.New("content extractor is missing.")
	ErrRelocatorMissing = errors.New("file relocator is missing.")
	ErrPrintSinkMissing = errors.New("print sink is missing.")
	ErrOutputMissing    = errors.New("output writer is missing.")
)
