package dirmon

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rjeczalik/notify"

	"github.com/hotfolder/hotfolder/pkg/types"
)

// seed records every regular file already present in the watched
// directory without emitting events for them.
func (w *DirMonitor) seed() (err error) {
	var entries []os.DirEntry
	entries, err = os.ReadDir(string(w.watchDir))
	if err != nil {
		return
	}

	for i := range entries {
		if !entries[i].Type().IsRegular() {
			continue
		}

		w.known[entries[i].Name()] = struct{}{}
	}

	return
}

// handle filters one raw notification down to "newly appeared regular
// file" and emits a FileEvent for it. The name enters the registry
// before the send, so a burst of notifications for the same name
// dispatches the pipeline at most once.
func (w *DirMonitor) handle(ctx context.Context, event notify.EventInfo) (err error) {
	path := event.Path()
	name := filepath.Base(path)

	if name == "" || name == "." || name == string(filepath.Separator) {
		return
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		// Vanished between notification and stat.
		return
	}

	if !info.Mode().IsRegular() {
		return
	}

	if _, ok := w.known[name]; ok {
		return
	}

	w.known[name] = struct{}{}

	w.log.Debugw("New file appeared.",
		"path", path,
	)

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	case w.eventsOut <- types.FileEvent{Path: path, Name: name}:
		w.log.Debugw("File event sent.",
			"path", path,
		)
	}

	return
}
