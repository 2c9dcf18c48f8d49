package dirmon

import (
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/rjeczalik/notify"
	"go.uber.org/zap"

	"github.com/hotfolder/hotfolder/pkg/hotfolder/config"
	"github.com/hotfolder/hotfolder/pkg/types"
)

// DirMonitor watches a single directory (non-recursive) and emits one
// FileEvent per newly appeared regular file. The known-name registry
// is touched only from the monitor goroutine, so it needs no lock.
type DirMonitor struct {
	eventsOut chan types.FileEvent
	eventsIn  chan notify.EventInfo

	watchDir config.WatchDir

	// known holds every filename observed in the watched directory
	// during this process lifetime, including the pre-existing ones
	// recorded by the initial scan. Names are never removed, so a
	// file re-created under a previously seen name is ignored.
	known map[string]struct{}

	// started is closed once the initial scan completed.
	started chan struct{}

	log *zap.SugaredLogger
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/hotfolder/hotfolder/pkg/dirmon.DirMonitor -as interfaces.DirMonitor -o ../interfaces/dirmon.go

func New(opts ...Opt) (ret *DirMonitor, err error) {
	defer Wrap(&err, "create directory monitor")

	w := &DirMonitor{}

	w.eventsOut = make(chan types.FileEvent)

	// FIXME:
	// github.com/rjeczalik/notify drop events if receiver is too slow.
	// https://github.com/rjeczalik/notify/issues/85
	// https://github.com/rjeczalik/notify/issues/98
	w.eventsIn = make(chan notify.EventInfo, 20)

	w.known = map[string]struct{}{}
	w.started = make(chan struct{})

	for i := range opts {
		w, err = opts[i](w)
		if err != nil {
			return
		}
	}

	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}

	if w.watchDir == "" {
		err = ErrWatchDirMissing
		return
	}

	ret = w

	w.log.Debugw("Create a new directory monitor.",
		"watch dir", w.watchDir,
	)

	return
}

type Opt func(w *DirMonitor) (ret *DirMonitor, err error)

func WithWatchDir(dir config.WatchDir) Opt {
	return func(w *DirMonitor) (ret *DirMonitor, err error) {
		if dir == "" {
			err = ErrWatchDirMissing
			return
		}

		w.watchDir = dir
		ret = w
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(w *DirMonitor) (ret *DirMonitor, err error) {
		if log == nil {
			err = ErrLoggerMissing
			return
		}

		w.log = log
		ret = w
		return
	}
}
