package services

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resumearchitect/models"
	"resumearchitect/utils"
)

// DocumentFormat is the user-requested export target.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDocx DocumentFormat = "docx"
)

const docxMIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocumentBackend converts a resume into downloadable document bytes.
// Callers pick a variant explicitly; the returned MIME type always
// describes what was actually produced.
type DocumentBackend interface {
	// Render produces the document. markdown is the pre-rendered resume
	// text; backends that build from the structured record ignore it.
	Render(r *models.Resume, markdown string) (data []byte, mimeType string, err error)
	// FileExtension is the extension for download filenames.
	FileExtension() string
}

// BackendFor selects the backend for a requested format. There is no true
// PDF renderer: "pdf" selects the HTML print backend, which produces an
// HTML document meant for print-to-PDF and is labeled text/html rather
// than a PDF MIME type.
func BackendFor(format DocumentFormat) (DocumentBackend, error) {
	switch format {
	case FormatPDF:
		return &HTMLPrintBackend{}, nil
	case FormatDocx:
		return &NativeDocxBackend{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// HTMLPrintBackend wraps the rendered markdown in a minimal HTML document
// with print-oriented CSS. The markdown-to-HTML translation is a fixed set
// of line-prefix substitutions, not a full markdown parser.
type HTMLPrintBackend struct{}

func (b *HTMLPrintBackend) FileExtension() string { return "html" }

func (b *HTMLPrintBackend) Render(r *models.Resume, markdown string) ([]byte, string, error) {
	if strings.TrimSpace(markdown) == "" {
		markdown = HarvardTemplate(r)
	}

	title := strings.TrimSpace(r.PersonalInfo.FullName() + " Resume")
	html := fmt.Sprintf(printDocument, title, markdownToHTML(markdown))
	return []byte(html), "text/html", nil
}

var (
	h1Regex     = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Regex     = regexp.MustCompile(`(?m)^## (.+)$`)
	h3Regex     = regexp.MustCompile(`(?m)^### (.+)$`)
	liRegex     = regexp.MustCompile(`(?m)^- (.+)$`)
	headerRegex = regexp.MustCompile(`<h1>(.+)</h1>\n(.+)`)
)

// markdownToHTML translates the renderer's line-prefix markers to HTML
// tags in a fixed order, grouping adjacent list items into a single <ul>
// and turning blank-line pairs into paragraph breaks. The line after the
// h1 heading becomes the contact-info block.
func markdownToHTML(markdown string) string {
	out := h3Regex.ReplaceAllString(markdown, "<h3>$1</h3>")
	out = h2Regex.ReplaceAllString(out, "<h2>$1</h2>")
	out = h1Regex.ReplaceAllString(out, "<h1>$1</h1>")
	out = liRegex.ReplaceAllString(out, "<li>$1</li>")
	out = headerRegex.ReplaceAllString(out, `<h1>$1</h1><div class="contact-info">$2</div>`)
	out = wrapListRuns(out)
	out = strings.ReplaceAll(out, "\n\n", "</p><p>")
	return out
}

// wrapListRuns wraps each maximal run of adjacent <li> lines in one <ul>.
func wrapListRuns(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	inList := false
	for _, line := range lines {
		isItem := strings.HasPrefix(strings.TrimSpace(line), "<li>")
		if isItem && !inList {
			out = append(out, "<ul>")
			inList = true
		}
		if !isItem && inList {
			out = append(out, "</ul>")
			inList = false
		}
		out = append(out, line)
	}
	if inList {
		out = append(out, "</ul>")
	}
	return strings.Join(out, "\n")
}

// NativeDocxBackend builds a genuine word-processor document directly from
// the structured record, bypassing the markdown text entirely.
type NativeDocxBackend struct{}

func (b *NativeDocxBackend) FileExtension() string { return "docx" }

func (b *NativeDocxBackend) Render(r *models.Resume, _ string) ([]byte, string, error) {
	data, err := utils.BuildWordDocument(r)
	if err != nil {
		return nil, "", err
	}
	return data, docxMIMEType, nil
}

// ExportFilename builds the download name First_Last_Resume.ext, title
// casing the name parts and substituting placeholder tokens when a name
// field is empty.
func ExportFilename(firstName, lastName, ext string) string {
	titler := cases.Title(language.English)
	first := strings.TrimSpace(firstName)
	if first == "" {
		first = "My"
	} else {
		first = titler.String(first)
	}
	last := strings.TrimSpace(lastName)
	if last == "" {
		last = "New"
	} else {
		last = titler.String(last)
	}
	return fmt.Sprintf("%s_%s_Resume.%s", first, last, ext)
}

const printDocument = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
  body {
    font-family: Arial, sans-serif;
    line-height: 1.6;
    margin: 1in;
    color: #333;
  }
  h1 {
    font-size: 24pt;
    margin-bottom: 4pt;
    color: #000;
  }
  h2 {
    font-size: 14pt;
    margin-top: 12pt;
    margin-bottom: 4pt;
    border-bottom: 1pt solid #999;
    color: #333;
  }
  h3 {
    font-size: 12pt;
    margin-top: 10pt;
    margin-bottom: 2pt;
    color: #444;
  }
  p {
    margin: 2pt 0;
  }
  ul {
    margin-top: 4pt;
    margin-bottom: 8pt;
  }
  li {
    margin-bottom: 2pt;
  }
  .contact-info {
    margin-bottom: 12pt;
    font-size: 10pt;
  }
</style>
</head>
<body>
%s
</body>
</html>
`
