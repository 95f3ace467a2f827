package parsers

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ParseError indicates an uploaded document could not be decoded to text.
// No partial output is produced when decoding fails.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("unsupported document format: %s", e.Format)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FileExtractor turns uploaded document bytes into plain text. The whole
// file is expected in memory; there is no streaming path.
type FileExtractor struct{}

func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// ExtractText routes on the file extension and decodes the document to
// plain text. Supported: .pdf, .docx, .txt.
func (e *FileExtractor) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx":
		return e.extractDocx(data)
	case ".txt":
		return string(data), nil
	default:
		return "", &ParseError{Format: ext}
	}
}

func (e *FileExtractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "pdf", Err: err}
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

	if strings.TrimSpace(sb.String()) == "" {
		return "", &ParseError{Format: "pdf", Err: fmt.Errorf("no extractable text")}
	}
	return sb.String(), nil
}

func (e *FileExtractor) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Format: "docx", Err: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return stripDocxTags(content), nil
}

// stripDocxTags flattens the raw document XML returned by the docx library
// into newline-separated plain text.
func stripDocxTags(content string) string {
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
