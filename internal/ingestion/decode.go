// Package ingestion decodes uploaded resume documents into plain text and
// normalizes that text before parsing.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported upload extensions, without the leading dot.
var supportedTypes = map[string]bool{
	"pdf":  true,
	"docx": true,
	"txt":  true,
	"md":   true,
}

// ErrUnsupportedType is returned for uploads outside the supported set.
var ErrUnsupportedType = fmt.Errorf("unsupported file type")

// FileType returns the normalized extension of a file name, without the dot.
func FileType(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}

// Supported reports whether the file type can be decoded.
func Supported(fileType string) bool {
	return supportedTypes[fileType]
}

// ExtractText decodes a document into cleaned plain text based on its file
// type. Text-based types pass through the cleaner untouched otherwise.
func ExtractText(fileType string, data []byte) (string, error) {
	switch fileType {
	case "txt", "md":
		return CleanText(string(data)), nil
	case "pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case "docx":
		text, err := extractDocxText(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, fileType)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
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
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripDocxMarkup(doc.Editable().GetContent()), nil
}

var (
	paragraphClosePattern = regexp.MustCompile(`</w:p>`)
	xmlTagPattern         = regexp.MustCompile(`<[^>]+>`)
)

// stripDocxMarkup converts the raw document XML into plain text. Paragraph
// boundaries become newlines so section structure survives decoding.
func stripDocxMarkup(content string) string {
	content = paragraphClosePattern.ReplaceAllString(content, "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
