package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts the text of every readable page and joins them with
// newlines. Pages with no text content are skipped.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "PDF", Cause: err}
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: "PDF", Cause: err}
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	return CleanText(strings.Join(pages, "\n")), nil
}
