package interfaces

import "context"

// PrintSink submits print jobs to the host print system.
type PrintSink interface {
	// PrintFile submits the original document at path.
	PrintFile(ctx context.Context, path string) error
	// PrintText renders text to a temporary file and submits that.
	PrintText(ctx context.Context, name string, text string) error
}
