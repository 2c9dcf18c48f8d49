package docproc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hotfolder/hotfolder/pkg/types"
)

const blockRule = "========================================"

// wait sleeps for d, honoring cancellation.
// Reports whether the full delay elapsed.
func (p *DocProcessor) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// display writes the operator-facing block for one processed file.
// Built as one string and written once so blocks of overlapping
// pipelines do not interleave line by line.
func (p *DocProcessor) display(event types.FileEvent, result *types.ExtractionResult) {
	var sb strings.Builder

	sb.WriteString(blockRule + "\n")
	fmt.Fprintf(&sb, "File: %s\n", event.Name)
	fmt.Fprintf(&sb, "Path: %s\n", event.Path)
	fmt.Fprintf(&sb, "Size: %d bytes\n", result.Size)
	sb.WriteString("----------------------------------------\n")
	sb.WriteString(result.Text)
	if !strings.HasSuffix(result.Text, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString(blockRule + "\n")

	fmt.Fprint(p.out, sb.String())
}

func (p *DocProcessor) print(ctx context.Context, event types.FileEvent, result *types.ExtractionResult) error {
	switch result.PrintMode {
	case types.PrintModeOriginalDocument:
		return p.printer.PrintFile(ctx, event.Path)
	case types.PrintModeText:
		return p.printer.PrintText(ctx, event.Name, result.Text)
	default:
		return nil
	}
}
