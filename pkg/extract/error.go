package extract

import "errors"

var (
	ErrNoDocumentXML = errors.New("word/document.xml not found in archive.")
	ErrNoTextContent = errors.New("no text content found in document.")
)
