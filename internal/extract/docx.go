package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// docxText walks the WordprocessingML body of a .docx archive. Text runs
// are concatenated in document order, paragraph ends become newlines, and
// explicit tabs and breaks are preserved, so table cell text comes out on
// its own lines.
func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Cause: err}
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", &ExtractionError{Format: "DOCX", Cause: errors.New("word/document.xml missing")}
	}

	rc, err := document.Open()
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Cause: err}
	}
	defer rc.Close()

	text, err := wordprocessingText(rc)
	if err != nil {
		return "", &ExtractionError{Format: "DOCX", Cause: err}
	}
	return CleanText(text), nil
}

func wordprocessingText(r io.Reader) (string, error) {
	var sb strings.Builder
	decoder := xml.NewDecoder(r)

	inTextRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inTextRun = true
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(el)
			}
		}
	}

	return sb.String(), nil
}
