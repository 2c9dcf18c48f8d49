package interfaces

import (
	"context"

	"github.com/hotfolder/hotfolder/pkg/types"
)

// DirMonitor watches a single directory and emits one FileEvent per
// newly appeared regular file.
type DirMonitor interface {
	RunDirMonitor(ctx context.Context) error
	Events() <-chan types.FileEvent
}
