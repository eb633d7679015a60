// Package observability provides the verbose CLI printer and Prometheus metrics.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/letter-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLetter outputs a section-by-section summary of a generated letter.
func (p *Printer) PrintLetter(in types.LetterInputs, content *types.LetterContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tone:      %s\n", in.Tone))
	sb.WriteString(fmt.Sprintf("Language:  %s\n", in.Language))
	sb.WriteString(fmt.Sprintf("Header:    %d lines\n", len(content.HeaderLines)))
	sb.WriteString(fmt.Sprintf("Subject:   %s\n", content.SubjectLine))
	sb.WriteString(fmt.Sprintf("Greeting:  %s\n", content.Salutation))
	sb.WriteString("\n")

	if len(content.BodyParagraphs) > 0 {
		sb.WriteString(fmt.Sprintf("Paragraphs (%d):\n", len(content.BodyParagraphs)))
		count := min(len(content.BodyParagraphs), maxItemsToShow)
		for i := 0; i < count; i++ {
			marker := "•"
			if i < len(in.ContextPoints) && strings.TrimSpace(in.ContextPoints[i]) == "" {
				marker = "∘" // filler
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", marker, truncate(content.BodyParagraphs[i], 48)))
		}
		if len(content.BodyParagraphs) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.BodyParagraphs)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if content.GratitudeLine != "" {
		sb.WriteString(fmt.Sprintf("Gratitude: %s\n", content.GratitudeLine))
	} else {
		sb.WriteString("Gratitude: (omitted)\n")
	}
	sb.WriteString(fmt.Sprintf("Closing:   %s\n", strings.Join(content.ClosingLines, " / ")))
	sb.WriteString(fmt.Sprintf("Length:    %d characters", len([]rune(content.FullText))))

	p.printBox("GENERATED LETTER", sb.String())
}

// PrintOptions outputs the tone and language catalogs.
func (p *Printer) PrintOptions(opts types.Options) {
	var sb strings.Builder

	sb.WriteString("Tones:\n")
	for _, o := range opts.Tones {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", o.Value, o.Label))
	}
	sb.WriteString("\nLanguages:\n")
	for _, o := range opts.Languages {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", o.Value, o.Label))
	}

	p.printBox("LETTER OPTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatch outputs a one-line summary per generated letter.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatch(inputs []types.LetterInputs, contents []types.LetterContent) {
	if len(contents) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO LETTERS GENERATED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d letters:\n\n", len(contents)))

	for i, c := range contents {
		label := ""
		if i < len(inputs) {
			label = fmt.Sprintf("%s/%s", inputs[i].Tone, inputs[i].Language)
		}
		sb.WriteString(fmt.Sprintf("#%-3d %-20s %d paragraphs\n", i+1, label, len(c.BodyParagraphs)))
		sb.WriteString(fmt.Sprintf("     %s\n", truncate(c.Salutation, 45)))
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
