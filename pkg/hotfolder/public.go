package hotfolder

import (
	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"
)

// Run blocks until both components exited. Stop cancels them with the
// given cause; the cause comes back out of Run.
func (h *Hotfolder) Run() (err error) {
	defer Wrap(&err, "running hotfolder core")

	p := pool.New().
		WithContext(h.ctx).
		WithCancelOnError()

	p.Go(h.runDirMonitor)
	p.Go(h.runDocProcessor)

	return p.Wait()
}

// Stop cancels the run context. In-flight per-file pipelines are not
// awaited; their settle and print waits abort with the context.
func (h *Hotfolder) Stop(cause error) {
	h.cancel(cause)
}
