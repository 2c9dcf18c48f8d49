package extract

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"

	"github.com/hotfolder/hotfolder/pkg/types"
)

// Extract reads the file at path and produces its textual
// representation. Decode failures never surface as errors; they
// degrade to placeholder content with PrintModeSkip. An error is
// returned only when the file itself cannot be read.
func (e *Extractor) Extract(path string) (ret *types.ExtractionResult, err error) {
	defer Wrap(&err, "extract content of %q", path)

	var info os.FileInfo
	info, err = os.Stat(path)
	if err != nil {
		return
	}

	size := info.Size()

	switch category(path) {
	case categoryWord:
		ret = e.extractWord(path, size)
	case categoryPDF:
		ret = e.extractPDF(path, size)
	default:
		ret, err = e.extractGeneric(path, size)
	}

	return
}

type fileCategory uint8

const (
	categoryGeneric fileCategory = iota
	categoryWord
	categoryPDF
)

func category(path string) fileCategory {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx", ".doc":
		return categoryWord
	case ".pdf":
		return categoryPDF
	default:
		return categoryGeneric
	}
}
