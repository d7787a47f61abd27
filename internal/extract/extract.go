// Package extract converts uploaded candidate documents to plain text.
// Supported formats are PDF, DOCX, HTML, and plain text; extraction is
// dispatched on the file extension and every path runs the extracted text
// through CleanText before returning it.
package extract

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Text extracts the plain-text content of a document based on its filename
// extension. An extensionless name is treated as plain text; an extension
// with no extractor yields an UnsupportedFormatError.
func Text(filename string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".html", ".htm":
		return htmlText(data)
	case ".txt", ".text", ".md", "":
		return plainText(data), nil
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

// plainText decodes bytes as UTF-8, falling back to a Latin-1 reading for
// legacy exports that are not valid UTF-8.
func plainText(data []byte) string {
	if utf8.Valid(data) {
		return CleanText(string(data))
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return CleanText(string(runes))
}
