package composer

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/letter-studio/internal/phrases"
	"github.com/jonathan/letter-studio/internal/types"
)

// Composer turns LetterInputs into LetterContent. It holds only read-only
// collaborators, so one Composer may serve any number of goroutines.
type Composer struct {
	resolver *phrases.Resolver
	validate *validator.Validate
}

// New returns a Composer using resolver for phrasing.
func New(resolver *phrases.Resolver) *Composer {
	return &Composer{
		resolver: resolver,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

var defaultComposer = New(phrases.Default())

// Generate composes a letter with the embedded lexicon.
func Generate(in types.LetterInputs) (*types.LetterContent, error) {
	return defaultComposer.Generate(in)
}

// Generate builds the letter for in. The same inputs always produce the
// same content. On error no content is returned.
func (c *Composer) Generate(in types.LetterInputs) (*types.LetterContent, error) {
	bundle, err := c.resolver.Resolve(in.Tone, in.Language)
	if err != nil {
		return nil, err
	}
	if err := c.validate.Struct(in); err != nil {
		return nil, newInputError(err)
	}

	content := &types.LetterContent{
		HeaderLines:    headerLines(in),
		SubjectLine:    bundle.SubjectLine(in.Subject),
		Salutation:     bundle.Salutation(in.RecipientName),
		BodyParagraphs: bodyParagraphs(in.ContextPoints, bundle),
		GratitudeLine:  bundle.Connector.Complete(in.GratitudeNote),
		ClosingLines:   closingLines(in.SignOffName, bundle),
	}
	content.FullText = FullText(content)

	return content, nil
}

// headerLines lays out sender, a blank separator, recipient and date.
// Absent fields produce no line; the separator only appears between a
// sender block and something after it.
func headerLines(in types.LetterInputs) []string {
	sender := blockLines(in.SenderName, in.SenderAddress)
	rest := blockLines(in.RecipientName, in.RecipientAddress, in.LetterDate)

	lines := make([]string, 0, len(sender)+len(rest)+1)
	lines = append(lines, sender...)
	if len(sender) > 0 && len(rest) > 0 {
		lines = append(lines, "")
	}
	return append(lines, rest...)
}

// blockLines splits each field into its non-blank trimmed lines.
func blockLines(fields ...string) []string {
	var lines []string
	for _, f := range fields {
		for _, line := range splitLines(f) {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

func bodyParagraphs(points []string, bundle *phrases.Bundle) []string {
	paragraphs := make([]string, len(points))
	for i, point := range points {
		if sentence := bundle.Connector.Complete(point); sentence != "" {
			paragraphs[i] = sentence
		} else {
			paragraphs[i] = bundle.Filler
		}
	}
	return paragraphs
}

// closingLines keeps the sign-off's own line order and indentation.
// A blank sign-off falls back to the register's valediction.
func closingLines(signOff string, bundle *phrases.Bundle) []string {
	if strings.TrimSpace(signOff) == "" {
		return []string{bundle.Valediction}
	}
	return splitLines(signOff)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// FullText flattens content in document order: header, subject,
// salutation, each paragraph, gratitude and closing, one blank line between
// sections. Empty sections are left out.
func FullText(content *types.LetterContent) string {
	sections := make([]string, 0, len(content.BodyParagraphs)+5)
	if len(content.HeaderLines) > 0 {
		sections = append(sections, strings.Join(content.HeaderLines, "\n"))
	}
	sections = append(sections, content.SubjectLine, content.Salutation)
	sections = append(sections, content.BodyParagraphs...)
	if content.GratitudeLine != "" {
		sections = append(sections, content.GratitudeLine)
	}
	if len(content.ClosingLines) > 0 {
		sections = append(sections, strings.Join(content.ClosingLines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}
