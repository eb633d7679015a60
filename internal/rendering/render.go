package rendering

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/letter-studio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	htmlTemplateName  = "templates/letter.html.tmpl"
	latexTemplateName = "templates/letter.tex.tmpl"
)

// Format names an output document type.
type Format string

const (
	FormatText  Format = "text"
	FormatHTML  Format = "html"
	FormatLaTeX Format = "latex"
)

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatHTML, FormatLaTeX:
		return f, nil
	case "txt":
		return FormatText, nil
	case "tex":
		return FormatLaTeX, nil
	default:
		return "", &RenderError{Format: s, Message: "unsupported format (want text, html or latex)"}
	}
}

// ContentType is the MIME type of a rendered document.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatLaTeX:
		return "application/x-latex; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension is the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatLaTeX:
		return ".tex"
	default:
		return ".txt"
	}
}

// Options control rendering. All fields are optional.
type Options struct {
	// TemplatePath replaces the embedded template for html and latex.
	TemplatePath string
	// Language is the letter's language register, used for the html lang attribute.
	Language string
	// Title is the html document title; the subject line when empty.
	Title string
}

// htmlData is passed to the HTML template
type htmlData struct {
	Lang    string
	Title   string
	Content *types.LetterContent
}

// latexData is passed to the LaTeX template; every string is already escaped
type latexData struct {
	Header     []string
	Subject    string
	Salutation string
	Paragraphs []string
	Gratitude  string
	Closing    []string
}

// Render renders content in the given format.
func Render(content *types.LetterContent, format Format, opts Options) (string, error) {
	if content == nil {
		return "", &RenderError{Format: string(format), Message: "no letter content"}
	}

	switch format {
	case FormatText:
		return content.FullText, nil
	case FormatHTML:
		return RenderHTML(content, opts)
	case FormatLaTeX:
		return RenderLaTeX(content, opts)
	default:
		return "", &RenderError{Format: string(format), Message: "unsupported format (want text, html or latex)"}
	}
}

// RenderHTML renders a print-ready HTML page mirroring the letter preview.
func RenderHTML(content *types.LetterContent, opts Options) (string, error) {
	src, err := templateSource(opts.TemplatePath, htmlTemplateName)
	if err != nil {
		return "", err
	}

	tmpl, err := htmltemplate.New("letter").Parse(src)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	title := opts.Title
	if title == "" {
		title = content.SubjectLine
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, htmlData{
		Lang:    htmlLang(opts.Language),
		Title:   title,
		Content: content,
	}); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}

	return result.String(), nil
}

// RenderLaTeX renders a standalone LaTeX letter for xelatex.
func RenderLaTeX(content *types.LetterContent, opts Options) (string, error) {
	src, err := templateSource(opts.TemplatePath, latexTemplateName)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("letter").Parse(src)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	data := latexData{
		Header:     escapeAll(content.HeaderLines, EscapeLaTeX),
		Subject:    EscapeLaTeX(content.SubjectLine),
		Salutation: EscapeLaTeX(content.Salutation),
		Paragraphs: escapeAll(content.BodyParagraphs, EscapeLaTeX),
		Gratitude:  EscapeLaTeX(content.GratitudeLine),
		Closing:    escapeAll(content.ClosingLines, escapeIndentedLaTeX),
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}

	return result.String(), nil
}

// templateSource reads the template at path, or the embedded one when path is empty
func templateSource(path, embedded string) (string, error) {
	if path == "" {
		content, err := templateFS.ReadFile(embedded)
		if err != nil {
			return "", &TemplateError{Message: "embedded template missing: " + embedded, Cause: err}
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}
	return string(content), nil
}

func escapeAll(lines []string, escape func(string) string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = escape(l)
	}
	return out
}

func htmlLang(language string) string {
	switch language {
	case "hindi":
		return "hi"
	case "hinglish":
		return "hi-Latn"
	default:
		return "en"
	}
}
