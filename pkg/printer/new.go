package printer

import (
	"context"
	"os/exec"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"

	"github.com/hotfolder/hotfolder/internal/consts"
)

// Runner executes an external spool command.
// Injectable so tests can observe submissions without a print system.
type Runner func(ctx context.Context, name string, args ...string) error

// Printer submits print jobs through the host spooler (lp, with lpr
// as fallback when lp is not installed).
type Printer struct {
	spoolCmd     string
	runner       Runner
	cleanupDelay time.Duration
	log          *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Printer, err error) {
	defer Wrap(&err, "create printer sink")

	p := &Printer{}
	for i := range opts {
		p, err = opts[i](p)
		if err != nil {
			return
		}
	}

	if p.log == nil {
		p.log = zap.NewNop().Sugar()
	}

	if p.runner == nil {
		p.runner = runCommand
	}

	if p.cleanupDelay == 0 {
		p.cleanupDelay = consts.SpoolCleanupDelay
	}

	if p.spoolCmd == "" {
		p.spoolCmd = detectSpoolCommand()
	}

	ret = p

	p.log.Debugw("Create a new printer sink.",
		"spool command", p.spoolCmd,
	)

	return
}

// detectSpoolCommand prefers lp, then lpr. When neither is on PATH
// the sink still constructs; submission fails later and the pipeline
// logs it as a warning.
func detectSpoolCommand() string {
	for _, cmd := range []string{"lp", "lpr"} {
		if _, err := exec.LookPath(cmd); err == nil {
			return cmd
		}
	}

	return "lp"
}

type Opt func(p *Printer) (ret *Printer, err error)

func WithSpoolCommand(cmd string) Opt {
	return func(p *Printer) (ret *Printer, err error) {
		if cmd == "" {
			err = ErrSpoolCommandMissing
			return
		}

		p.spoolCmd = cmd
		ret = p
		return
	}
}

func WithRunner(runner Runner) Opt {
	return func(p *Printer) (ret *Printer, err error) {
		if runner == nil {
			err = ErrRunnerMissing
			return
		}

		p.runner = runner
		ret = p
		return
	}
}

func WithCleanupDelay(d time.Duration) Opt {
	return func(p *Printer) (ret *Printer, err error) {
		p.cleanupDelay = d
		ret = p
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(p *Printer) (ret *Printer, err error) {
		p.log = log
		ret = p
		return
	}
}
