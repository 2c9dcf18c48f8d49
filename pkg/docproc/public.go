package docproc

import (
	"context"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/sourcegraph/conc/pool"

	"github.com/hotfolder/hotfolder/pkg/types"
)

// RunDocProcessor consumes FileEvents until the channel closes. Each
// file runs in its own pool task, so pipelines for files created in
// rapid succession may overlap; the monitor's registry already
// guarantees at most one event per file, and every pipeline only
// touches the file identified by its own path.
func (p *DocProcessor) RunDocProcessor(ctx context.Context) (err error) {
	defer Wrap(&err, "running document processor")

	pipelines := pool.New().WithContext(ctx)

	for event := range p.events {
		event := event
		pipelines.Go(func(ctx context.Context) error {
			p.process(ctx, event)
			return nil
		})
	}

	err = pipelines.Wait()
	if err != nil {
		return
	}

	<-ctx.Done()
	return context.Cause(ctx)
}

// process is the per-file pipeline. Every failure is terminal for
// this file only; nothing here may take down the dispatcher.
func (p *DocProcessor) process(ctx context.Context, event types.FileEvent) {
	// Give the writer a moment to finish. Best effort only.
	if !p.wait(ctx, p.settle) {
		return
	}

	result, err := p.extractor.Extract(event.Path)
	if err != nil {
		p.log.Errorw("Failed to extract file content.",
			"path", event.Path,
			"error", err,
		)
		return
	}

	p.display(event, result)

	if p.printEnabled && result.PrintMode != types.PrintModeSkip {
		err = p.print(ctx, event, result)
		if err != nil {
			p.log.Warnw("Failed to print file, continue to relocation.",
				"path", event.Path,
				"error", err,
			)
		}
	}

	err = p.relocator.Relocate(event.Path, event.Name)
	if err != nil {
		p.log.Errorw("Failed to relocate file, leave it in place.",
			"path", event.Path,
			"error", err,
		)
	}
}
