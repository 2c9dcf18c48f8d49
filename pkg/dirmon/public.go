package dirmon

import (
	"context"
	"os"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/rjeczalik/notify"

	"github.com/hotfolder/hotfolder/pkg/types"
)

func (w *DirMonitor) Events() <-chan types.FileEvent {
	return w.eventsOut
}

// RunDirMonitor subscribes to create notifications for the watched
// directory, records the names of the files already present, then
// dispatches notifications until ctx is cancelled.
//
// The subscription is set up before the initial scan so a file
// created in between is not lost; its notification waits in the
// buffered channel and the registry filters it if the scan already
// recorded the name.
func (w *DirMonitor) RunDirMonitor(ctx context.Context) (err error) {
	defer Wrap(&err, "running directory monitor")
	defer close(w.eventsOut)
	defer notify.Stop(w.eventsIn)
	defer close(w.eventsIn)

	err = os.MkdirAll(string(w.watchDir), 0o755)
	if err != nil {
		return
	}

	err = notify.Watch(string(w.watchDir), w.eventsIn, notify.Create)
	if err != nil {
		return
	}

	w.log.Info("Recording files already in the watched directory...")
	err = w.seed()
	if err != nil {
		return
	}
	close(w.started)
	w.log.Infow("Recording files already in the watched directory...Done.",
		"count", len(w.known),
	)

LOOP:
	for {
		select {
		case <-ctx.Done():
			break LOOP
		case event := <-w.eventsIn:
			err = w.handle(ctx, event)
			if err != nil {
				return
			}
		}
	}

	<-ctx.Done()
	err = context.Cause(ctx)
	if err != nil {
		return
	}

	return
}
