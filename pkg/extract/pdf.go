package extract

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"

	. "github.com/black-desk/lib/go/errwrap"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor decodes PDF documents with pdfcpu.
type PDFExtractor struct{}

func (d *PDFExtractor) DecodePDF(path string) (text string, err error) {
	defer Wrap(&err, "decode pdf document %q", path)

	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	var ctx *model.Context
	ctx, err = api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		text := extractPageText(ctx, pageNr)
		if text == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		err = ErrNoTextContent
		return
	}

	text = sb.String()
	return
}

func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}

	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}

	return streamText(data)
}

// pdfStringRe matches PDF string literals: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// streamText scans content stream operators for shown text.
// Tj shows one string, TJ shows an array of strings, T* moves to the
// next line. Everything else is positioning and ignored.
func streamText(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)

		switch {
		case bytes.HasSuffix(line, []byte("Tj")),
			bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.Write(unescapePDFString(m[1]))
			}

		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return strings.TrimSpace(sb.String())
}

func unescapePDFString(raw []byte) []byte {
	var out bytes.Buffer
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			out.WriteByte(raw[i])
			continue
		}

		i++
		switch raw[i] {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		default:
			out.WriteByte(raw[i])
		}
	}
	return out.Bytes()
}
