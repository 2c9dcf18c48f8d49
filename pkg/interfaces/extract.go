package interfaces

import "github.com/hotfolder/hotfolder/pkg/types"

// Extractor produces the textual representation of a file.
type Extractor interface {
	Extract(path string) (*types.ExtractionResult, error)
}
