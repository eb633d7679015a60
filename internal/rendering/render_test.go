package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContent(t *testing.T) *types.LetterContent {
	t.Helper()
	in := types.SampleInputs("July 20th, 2026")
	in.SignOffName = "Yours faithfully,\n   Aarav Sharma"
	in.ContextPoints = append(in.ContextPoints, "", "fees of <50% & \"more\"")
	content, err := composer.Generate(in)
	require.NoError(t, err)
	return content
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"text":   FormatText,
		"txt":    FormatText,
		"HTML":   FormatHTML,
		" html ": FormatHTML,
		"latex":  FormatLaTeX,
		"tex":    FormatLaTeX,
	}
	for input, want := range tests {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("pdf")
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "pdf", renderErr.Format)
	assert.Equal(t, "render error (pdf): unsupported format (want text, html or latex)", err.Error())
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(sampleContent(t), Format("docx"), Options{})
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "docx", renderErr.Format)

	_, err = Render(nil, FormatHTML, Options{})
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "html", renderErr.Format)
}

func TestFormat_Metadata(t *testing.T) {
	assert.Equal(t, ".html", FormatHTML.Extension())
	assert.Equal(t, ".tex", FormatLaTeX.Extension())
	assert.Equal(t, ".txt", FormatText.Extension())
	assert.Contains(t, FormatHTML.ContentType(), "text/html")
}

func TestRender_Text(t *testing.T) {
	content := sampleContent(t)
	out, err := Render(content, FormatText, Options{})
	require.NoError(t, err)
	assert.Equal(t, content.FullText, out)
}

func TestRender_NilContent(t *testing.T) {
	_, err := Render(nil, FormatHTML, Options{})
	assert.Error(t, err)
}

func TestRenderHTML_Structure(t *testing.T) {
	content := sampleContent(t)
	html, err := RenderHTML(content, Options{Language: "hinglish"})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "hi-Latn", lang)
	assert.Equal(t, content.SubjectLine, doc.Find("title").Text())
	assert.Equal(t, len(content.HeaderLines), doc.Find(".letter-header").Children().Length())
	assert.Equal(t, 1, doc.Find(".letter-header .spacer").Length())
	assert.Equal(t, content.SubjectLine, doc.Find("h2.letter-subject").Text())
	assert.Equal(t, content.Salutation, doc.Find(".letter-salutation").Text())
	assert.Equal(t, len(content.BodyParagraphs), doc.Find(".letter-body .paragraph").Length())
	assert.Equal(t, content.GratitudeLine, doc.Find(".gratitude").Text())
	assert.Equal(t, "   Aarav Sharma", doc.Find(".letter-closing .line").Last().Text())

	// user text is escaped, not injected
	assert.Contains(t, html, "&lt;50%")
	assert.Equal(t, 0, doc.Find(".letter-body b").Length())
}

func TestRenderHTML_OmitsEmptyGratitude(t *testing.T) {
	content := sampleContent(t)
	content.GratitudeLine = ""

	html, err := RenderHTML(content, Options{})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find(".gratitude").Length())

	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
}

func TestContentFromHTML_RoundTrip(t *testing.T) {
	for _, gratitude := range []string{"", "thank you"} {
		in := types.SampleInputs("July 20th, 2026")
		in.GratitudeNote = gratitude
		in.SignOffName = "Regards,\n  Aarav\n  Class X"
		in.ContextPoints = []string{"line one\nline two", "", "a & b <c>"}
		content, err := composer.Generate(in)
		require.NoError(t, err)

		html, err := RenderHTML(content, Options{})
		require.NoError(t, err)

		recovered, err := ContentFromHTML(html)
		require.NoError(t, err)
		if diff := cmp.Diff(content, recovered); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}

		text, err := PlainTextFromHTML(html)
		require.NoError(t, err)
		assert.Equal(t, content.FullText, text)
	}
}

func TestContentFromHTML_NoLetter(t *testing.T) {
	_, err := ContentFromHTML("<html><body><p>hello</p></body></html>")
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "html", renderErr.Format)
}

func TestRenderLaTeX(t *testing.T) {
	content := sampleContent(t)
	latex, err := RenderLaTeX(content, Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(latex, "% Compile with xelatex"))
	assert.Contains(t, latex, `\begin{document}`)
	assert.Contains(t, latex, `\end{document}`)
	assert.Contains(t, latex, `\textbf{`+EscapeLaTeX(content.SubjectLine)+`}`)
	assert.Contains(t, latex, `Fees of <50\% \& "more".`)
	assert.Contains(t, latex, `~~~Aarav Sharma\par`)
	assert.Contains(t, latex, `\vspace{\baselineskip}`)
	assert.Contains(t, latex, content.Salutation)
	for _, p := range content.BodyParagraphs {
		assert.Contains(t, latex, EscapeLaTeX(p))
	}
}

func TestRender_CustomTemplate(t *testing.T) {
	content := sampleContent(t)
	dir := t.TempDir()

	htmlPath := filepath.Join(dir, "custom.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(`<p>{{.Content.Salutation}}</p>`), 0644))
	out, err := Render(content, FormatHTML, Options{TemplatePath: htmlPath})
	require.NoError(t, err)
	assert.Equal(t, "<p>"+content.Salutation+"</p>", out)

	texPath := filepath.Join(dir, "custom.tex")
	require.NoError(t, os.WriteFile(texPath, []byte(`{{.Subject}}`), 0644))
	out, err = Render(content, FormatLaTeX, Options{TemplatePath: texPath})
	require.NoError(t, err)
	assert.Equal(t, EscapeLaTeX(content.SubjectLine), out)
}

func TestRender_TemplateErrors(t *testing.T) {
	content := sampleContent(t)

	_, err := Render(content, FormatHTML, Options{TemplatePath: "/nonexistent/template.html"})
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")

	badPath := filepath.Join(t.TempDir(), "bad.tex")
	require.NoError(t, os.WriteFile(badPath, []byte(`{{.InvalidSyntax{{}}`), 0644))
	_, err = Render(content, FormatLaTeX, Options{TemplatePath: badPath})
	assert.ErrorAs(t, err, &templateErr)

	missingField := filepath.Join(t.TempDir(), "missing.tex")
	require.NoError(t, os.WriteFile(missingField, []byte(`{{.NoSuchField}}`), 0644))
	_, err = Render(content, FormatLaTeX, Options{TemplatePath: missingField})
	assert.ErrorAs(t, err, &templateErr)
}
