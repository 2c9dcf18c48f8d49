package cmd

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/hotfolder/hotfolder/pkg/dirmon"
	"github.com/hotfolder/hotfolder/pkg/docproc"
	"github.com/hotfolder/hotfolder/pkg/extract"
	"github.com/hotfolder/hotfolder/pkg/hotfolder"
	"github.com/hotfolder/hotfolder/pkg/hotfolder/config"
	"github.com/hotfolder/hotfolder/pkg/interfaces"
	"github.com/hotfolder/hotfolder/pkg/printer"
	"github.com/hotfolder/hotfolder/pkg/relocate"
	"github.com/hotfolder/hotfolder/pkg/types"
)

func provideWatchDir(cfg *config.Config) config.WatchDir {
	return cfg.WatchDir
}

func provideMoveTo(cfg *config.Config) config.MoveTo {
	return cfg.MoveTo
}

func provideDirMonitor(
	watchDir config.WatchDir, logger *zap.SugaredLogger,
) (
	interfaces.DirMonitor, error,
) {
	return dirmon.New(
		dirmon.WithWatchDir(watchDir),
		dirmon.WithLogger(logger),
	)
}

func provideEventChan(mon interfaces.DirMonitor) <-chan types.FileEvent {
	return mon.Events()
}

func providePDFDecoder() interfaces.PDFDecoder {
	return &extract.PDFExtractor{}
}

func provideExtractor(
	pdf interfaces.PDFDecoder, logger *zap.SugaredLogger,
) (
	ret interfaces.Extractor,
	err error,
) {
	var e *extract.Extractor
	e, err = extract.New(
		extract.WithPDFDecoder(pdf),
		extract.WithLogger(logger),
	)

	if err != nil {
		return
	}

	ret = e
	return
}

func providePrintSink(
	logger *zap.SugaredLogger,
) (
	ret interfaces.PrintSink,
	err error,
) {
	var p *printer.Printer
	p, err = printer.New(
		printer.WithLogger(logger),
	)

	if err != nil {
		return
	}

	ret = p
	return
}

func provideRelocator(
	moveTo config.MoveTo, logger *zap.SugaredLogger,
) (
	ret interfaces.Relocator,
	err error,
) {
	var r *relocate.Relocator
	r, err = relocate.New(
		relocate.WithDestination(string(moveTo)),
		relocate.WithLogger(logger),
	)

	if err != nil {
		return
	}

	ret = r
	return
}

func provideDocProcessor(
	ch <-chan types.FileEvent,
	extractor interfaces.Extractor,
	sink interfaces.PrintSink,
	relocator interfaces.Relocator,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) (
	ret interfaces.DocProcessor, err error,
) {
	var p *docproc.DocProcessor
	p, err = docproc.New(
		docproc.WithEvents(ch),
		docproc.WithExtractor(extractor),
		docproc.WithPrintSink(sink),
		docproc.WithRelocator(relocator),
		docproc.WithPrinting(cfg.Print),
		docproc.WithLogger(logger),
	)

	if err != nil {
		return
	}

	ret = p
	return
}

func provideHotfolder(
	mon interfaces.DirMonitor,
	proc interfaces.DocProcessor,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) (
	interfaces.Hotfolder, error,
) {
	return hotfolder.New(
		hotfolder.WithConfig(cfg),
		hotfolder.WithLogger(logger),
		hotfolder.WithDirMonitor(mon),
		hotfolder.WithDocProcessor(proc),
	)
}

var set = wire.NewSet(
	provideDirMonitor,
	provideDocProcessor,
	provideEventChan,
	provideExtractor,
	provideHotfolder,
	provideMoveTo,
	providePDFDecoder,
	providePrintSink,
	provideRelocator,
	provideWatchDir,
)
