package extract

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"

	"github.com/hotfolder/hotfolder/pkg/interfaces"
)

// Extractor turns a file on disk into an ExtractionResult, delegating
// to format specific decoders for Word and PDF documents.
type Extractor struct {
	word interfaces.WordDecoder
	pdf  interfaces.PDFDecoder
	log  *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Extractor, err error) {
	defer Wrap(&err, "create content extractor")

	e := &Extractor{}
	for i := range opts {
		e, err = opts[i](e)
		if err != nil {
			return
		}
	}

	if e.log == nil {
		e.log = zap.NewNop().Sugar()
	}

	if e.word == nil {
		e.word = &WordExtractor{}
	}

	// NOTE: e.pdf staying nil means the PDF decoder capability is
	// unavailable and PDF files degrade to placeholder content.

	ret = e

	e.log.Debugw("Create a new content extractor.")

	return
}

type Opt func(e *Extractor) (ret *Extractor, err error)

func WithWordDecoder(d interfaces.WordDecoder) Opt {
	return func(e *Extractor) (ret *Extractor, err error) {
		e.word = d
		ret = e
		return
	}
}

func WithPDFDecoder(d interfaces.PDFDecoder) Opt {
	return func(e *Extractor) (ret *Extractor, err error) {
		e.pdf = d
		ret = e
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(e *Extractor) (ret *Extractor, err error) {
		e.log = log
		ret = e
		return
	}
}
