package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextPlainText(t *testing.T) {
	extractor := NewFileExtractor()

	text, err := extractor.ExtractText("resume.txt", []byte("John Doe\nEngineer"))
	assert.NoError(t, err)
	assert.Equal(t, "John Doe\nEngineer", text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	extractor := NewFileExtractor()

	tests := []struct {
		name     string
		filename string
	}{
		{name: "image file", filename: "resume.png"},
		{name: "legacy doc", filename: "resume.doc"},
		{name: "no extension", filename: "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.ExtractText(tt.filename, []byte("data"))
			assert.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	extractor := NewFileExtractor()

	_, err := extractor.ExtractText("resume.pdf", []byte("not a pdf at all"))
	assert.Error(t, err)

	var parseErr *ParseError
	if assert.ErrorAs(t, err, &parseErr) {
		assert.Equal(t, "pdf", parseErr.Format)
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	extractor := NewFileExtractor()

	_, err := extractor.ExtractText("resume.docx", []byte("not a zip archive"))
	assert.Error(t, err)

	var parseErr *ParseError
	if assert.ErrorAs(t, err, &parseErr) {
		assert.Equal(t, "docx", parseErr.Format)
	}
}

func TestStripDocxTags(t *testing.T) {
	content := `<w:p><w:r><w:t>Line one</w:t></w:r></w:p><w:p><w:r><w:t>Line two</w:t></w:r></w:p>`
	assert.Equal(t, "Line one\nLine two\n", stripDocxTags(content))
}
