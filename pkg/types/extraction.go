package types

type PrintMode uint8

const (
	PrintModeText             PrintMode = iota // Text
	PrintModeOriginalDocument                  // OriginalDocument
	PrintModeSkip                              // Skip
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=PrintMode -linecomment

// ExtractionResult is what the content extractor hands to the
// display/print stages. Text holds either the decoded content or a
// placeholder description when the file could not be decoded.
type ExtractionResult struct {
	Text string
	// Size is the size of the source file in bytes.
	Size int64
	// PrintMode tells the printer sink what to submit:
	// the extracted text, the original document, or nothing.
	PrintMode PrintMode
}
