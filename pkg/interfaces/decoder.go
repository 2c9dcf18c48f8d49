package interfaces

// WordDecoder extracts plain text from a Word document on disk.
type WordDecoder interface {
	DecodeWord(path string) (text string, err error)
}

// PDFDecoder extracts plain text from a PDF document on disk.
//
// The extractor treats the decoder as a capability: a nil decoder
// means "unavailable" and the extractor degrades to its placeholder
// description instead of failing.
type PDFDecoder interface {
	DecodePDF(path string) (text string, err error)
}
