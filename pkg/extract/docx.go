package extract

import (
	"archive/zip"
	"encoding/xml"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"
)

// WordExtractor decodes Word documents.
//
// A .docx file is a ZIP archive; the document body lives in
// word/document.xml with one <w:p> element per paragraph. Legacy
// binary .doc files are not ZIP archives, so opening them fails and
// the caller degrades to placeholder content.
type WordExtractor struct{}

func (d *WordExtractor) DecodeWord(path string) (text string, err error) {
	defer Wrap(&err, "decode word document %q", path)

	var r *zip.ReadCloser
	r, err = zip.OpenReader(path)
	if err != nil {
		return
	}
	defer r.Close()

	var doc *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		err = ErrNoDocumentXML
		return
	}

	rc, err := doc.Open()
	if err != nil {
		return
	}
	defer rc.Close()

	text, err = decodeDocumentXML(xml.NewDecoder(rc))
	return
}

// decodeDocumentXML streams the WordprocessingML body, collecting the
// character data of every paragraph.
func decodeDocumentXML(decoder *xml.Decoder) (ret string, err error) {
	var (
		sb          strings.Builder
		paragraph   strings.Builder
		inParagraph bool
	)

	for {
		tok, tokErr := decoder.Token()
		if tokErr != nil {
			// Including io.EOF: the document is done.
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				paragraph.Reset()
			}

		case xml.CharData:
			if inParagraph {
				paragraph.Write(t)
			}

		case xml.EndElement:
			if t.Name.Local != "p" || !inParagraph {
				continue
			}

			inParagraph = false

			line := strings.TrimSpace(paragraph.String())
			if line == "" {
				continue
			}

			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
		}
	}

	ret = sb.String()
	return
}
