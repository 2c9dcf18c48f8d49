package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hotfolder/hotfolder/pkg/types"
)

func (e *Extractor) extractWord(path string, size int64) *types.ExtractionResult {
	text, err := e.word.DecodeWord(path)
	if err != nil {
		e.log.Debugw("Word decode failed, fallback to placeholder.",
			"path", path,
			"error", err,
		)

		return placeholder(path, size)
	}

	return &types.ExtractionResult{
		Text:      text,
		Size:      size,
		PrintMode: types.PrintModeText,
	}
}

func (e *Extractor) extractPDF(path string, size int64) *types.ExtractionResult {
	if e.pdf == nil {
		e.log.Debugw("PDF decoder unavailable, fallback to placeholder.",
			"path", path,
		)

		return placeholder(path, size)
	}

	text, err := e.pdf.DecodePDF(path)
	if err != nil {
		e.log.Debugw("PDF decode failed, fallback to placeholder.",
			"path", path,
			"error", err,
		)

		return placeholder(path, size)
	}

	// PDFs are printed as the original document so layout survives.
	return &types.ExtractionResult{
		Text:      text,
		Size:      size,
		PrintMode: types.PrintModeOriginalDocument,
	}
}

func (e *Extractor) extractGeneric(path string, size int64) (ret *types.ExtractionResult, err error) {
	var content []byte
	content, err = os.ReadFile(path)
	if err != nil {
		return
	}

	if !utf8.Valid(content) {
		ret = placeholder(path, size)
		return
	}

	ret = &types.ExtractionResult{
		Text:      string(content),
		Size:      size,
		PrintMode: types.PrintModeText,
	}

	return
}

func placeholder(path string, size int64) *types.ExtractionResult {
	return &types.ExtractionResult{
		Text: fmt.Sprintf(
			"(binary content of %q not displayable, %d bytes)",
			filepath.Base(path), size,
		),
		Size:      size,
		PrintMode: types.PrintModeSkip,
	}
}
