// Package document acquires the two source texts an interview session
// is built from: the candidate's resume and the target job description.
package document

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var multiSpace = regexp.MustCompile(`\s\s+`)

// NormalizeText collapses whitespace runs to single spaces and trims
// the result, so chunk boundaries are not dominated by layout artifacts.
func NormalizeText(s string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// ExtractResumeText pulls plain text out of an uploaded resume based on
// its MIME type.
func ExtractResumeText(mime string, data []byte) (string, error) {
	switch mime {
	case "text/plain":
		return NormalizeText(string(data)), nil

	case "application/pdf":
		text, err := extractPDFText(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", err
		}
		return NormalizeText(text), nil

	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		text, err := extractDocxText(data)
		if err != nil {
			return "", err
		}
		return NormalizeText(text), nil

	default:
		return "", fmt.Errorf("document: unsupported resume type: %s", mime)
	}
}

func extractPDFText(reader io.ReaderAt, size int64) (string, error) {
	pdfReader, err := pdf.NewReader(reader, size)
	if err != nil {
		return "", fmt.Errorf("document: read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("document: parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
