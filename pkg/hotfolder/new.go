package hotfolder

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"

	"github.com/hotfolder/hotfolder/pkg/hotfolder/config"
	"github.com/hotfolder/hotfolder/pkg/interfaces"
)

// Hotfolder is the assembled daemon: one directory monitor feeding
// one document processor, run together until stopped.
type Hotfolder struct {
	cfg *config.Config
	log *zap.SugaredLogger

	monitor   interfaces.DirMonitor
	processor interfaces.DocProcessor

	ctx    context.Context
	cancel context.CancelCauseFunc
}

type Opt = (func(*Hotfolder) (*Hotfolder, error))

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/hotfolder/hotfolder/pkg/hotfolder.Hotfolder -as interfaces.Hotfolder -o ../interfaces/hotfolder.go

func New(opts ...Opt) (ret *Hotfolder, err error) {
	defer Wrap(&err, "create new hotfolder core")

	h := &Hotfolder{}
	for i := range opts {
		h, err = opts[i](h)
		if err != nil {
			h = nil
			return
		}
	}

	if h.log == nil {
		h.log = zap.NewNop().Sugar()
	}

	if h.cfg == nil {
		err = ErrConfigMissing
		return
	}

	if h.monitor == nil {
		err = ErrDirMonitorMissing
		return
	}

	if h.processor == nil {
		err = ErrDocProcessorMissing
		return
	}

	h.ctx, h.cancel = context.WithCancelCause(context.Background())

	ret = h

	h.log.Debugw("Create a new core.",
		"configuration", h.cfg,
	)

	return
}

func WithConfig(cfg *config.Config) Opt {
	return func(h *Hotfolder) (ret *Hotfolder, err error) {
		h.cfg = cfg
		ret = h
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(h *Hotfolder) (ret *Hotfolder, err error) {
		h.log = log
		ret = h
		return
	}
}

func WithDirMonitor(mon interfaces.DirMonitor) Opt {
	return func(h *Hotfolder) (ret *Hotfolder, err error) {
		h.monitor = mon
		ret = h
		return
	}
}

func WithDocProcessor(proc interfaces.DocProcessor) Opt {
	return func(h *Hotfolder) (ret *Hotfolder, err error) {
		h.processor = proc
		ret = h
		return
	}
}
