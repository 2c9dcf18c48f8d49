package interfaces

import "context"

// DocProcessor consumes FileEvents and runs the per-file pipeline
// (settle, extract, display, print, relocate) for each of them.
type DocProcessor interface {
	RunDocProcessor(ctx context.Context) error
}
