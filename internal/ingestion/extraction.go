package ingestion

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Extraction failure messages are returned in-band so that downstream
// analysis can surface them to the user instead of aborting.
const (
	errPDF     = "Error: Could not extract text from the provided PDF file."
	errDOCX    = "Error: Could not extract text from the provided DOCX file."
	errImage   = "Error: Could not extract text from the provided image file."
	errGeneric = "Error: Could not extract text from the provided file."
)

// ExtractText extracts plain text from raw file content. fileType is the
// file extension without the dot (pdf, docx, txt); unknown types are decoded
// as UTF-8. Failures never return an error: they produce a Document whose
// Err field carries the message.
func ExtractText(data []byte, fileType string) types.Document {
	switch strings.ToLower(fileType) {
	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			return types.ErrorDocument(errPDF)
		}
		return types.NewDocument(CleanText(text))

	case "docx":
		text, err := extractDOCX(data)
		if err != nil {
			// Some exporters mislabel plain text as DOCX.
			if utf8.Valid(data) && !bytes.HasPrefix(data, []byte("PK")) {
				return types.NewDocument(CleanText(string(data)))
			}
			return types.ErrorDocument(errDOCX)
		}
		return types.NewDocument(CleanText(text))

	case "jpg", "jpeg", "png", "bmp", "gif":
		return types.ErrorDocument(errImage)

	default:
		if !utf8.Valid(data) {
			return types.ErrorDocument(errGeneric)
		}
		return types.NewDocument(CleanText(string(data)))
	}
}

// FromFile reads a file and extracts its text, inferring the format from
// the extension.
func FromFile(path string) types.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ErrorDocument(errGeneric)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ExtractText(data, ext)
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return docxPlainText(doc.Editable().GetContent()), nil
}

// docxPlainText strips the WordprocessingML markup that GetContent returns,
// inserting newlines at paragraph boundaries.
func docxPlainText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
