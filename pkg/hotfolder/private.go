package hotfolder

import (
	"context"
)

func (h *Hotfolder) runDirMonitor(ctx context.Context) (err error) {
	defer h.log.Debugw("Directory monitor exited.")

	h.log.Debugw("Start directory monitor.")

	err = h.monitor.RunDirMonitor(ctx)
	if err != nil {
		return
	}

	return context.Cause(ctx)
}

func (h *Hotfolder) runDocProcessor(ctx context.Context) (err error) {
	defer h.log.Debugw("Document processor exited.")

	h.log.Debugw("Start document processor.")

	err = h.processor.RunDocProcessor(ctx)
	if err != nil {
		return
	}

	return context.Cause(ctx)
}
