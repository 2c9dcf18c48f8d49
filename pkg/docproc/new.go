package docproc

import (
	"io"
	"os"
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"

	"github.com/hotfolder/hotfolder/internal/consts"
	"github.com/hotfolder/hotfolder/pkg/interfaces"
	"github.com/hotfolder/hotfolder/pkg/types"
)

// DocProcessor consumes FileEvents and runs the per-file pipeline:
// settle, extract, display, print, relocate.
type DocProcessor struct {
	events <-chan types.FileEvent

	extractor interfaces.Extractor
	printer   interfaces.PrintSink
	relocator interfaces.Relocator

	printEnabled bool
	settle       time.Duration

	// out is where the operator-facing content blocks go.
	out io.Writer

	log *zap.SugaredLogger
}

//go:generate go run github.com/rjeczalik/interfaces/cmd/interfacer@v0.3.0 -for github.com/hotfolder/hotfolder/pkg/docproc.DocProcessor -as interfaces.DocProcessor -o ../interfaces/docproc.go

func New(opts ...Opt) (ret *DocProcessor, err error) {
	defer Wrap(&err, "create document processor")

	p := &DocProcessor{}
	for i := range opts {
		p, err = opts[i](p)
		if err != nil {
			return
		}
	}

	if p.log == nil {
		p.log = zap.NewNop().Sugar()
	}

	if p.out == nil {
		p.out = os.Stdout
	}

	if p.settle == 0 {
		p.settle = consts.SettleDelay
	}

	if p.events == nil {
		err = ErrEventChanMissing
		return
	}

	if p.extractor == nil {
		err = ErrExtractorMissing
		return
	}

	if p.relocator == nil {
		err = ErrRelocatorMissing
		return
	}

	if p.printEnabled && p.printer == nil {
		err = ErrPrintSinkMissing
		return
	}

	ret = p

	p.log.Debugw("Create a new document processor.",
		"printing", p.printEnabled,
	)

	return
}

type Opt func(p *DocProcessor) (ret *DocProcessor, err error)

func WithEvents(ch <-chan types.FileEvent) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		if ch == nil {
			err = ErrEventChanMissing
			return
		}

		p.events = ch
		ret = p
		return
	}
}

func WithExtractor(e interfaces.Extractor) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		if e == nil {
			err = ErrExtractorMissing
			return
		}

		p.extractor = e
		ret = p
		return
	}
}

func WithPrintSink(s interfaces.PrintSink) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		p.printer = s
		ret = p
		return
	}
}

func WithRelocator(r interfaces.Relocator) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		if r == nil {
			err = ErrRelocatorMissing
			return
		}

		p.relocator = r
		ret = p
		return
	}
}

func WithPrinting(enabled bool) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		p.printEnabled = enabled
		ret = p
		return
	}
}

func WithSettleDelay(d time.Duration) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		p.settle = d
		ret = p
		return
	}
}

func WithOutput(out io.Writer) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		if out == nil {
			err = ErrOutputMissing
			return
		}

		p.out = out
		ret = p
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(p *DocProcessor) (ret *DocProcessor, err error) {
		p.log = log
		ret = p
		return
	}
}
