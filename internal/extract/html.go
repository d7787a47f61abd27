package extract

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

// htmlText returns the visible text of an HTML document with scripts,
// styles, and page chrome removed. Job-board specific de-noising lives in
// the fetch package; this is the generic reading used for uploaded files.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Format: "HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	return CleanText(doc.Find("body").Text()), nil
}
