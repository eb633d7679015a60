package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/letter-studio/internal/catalog"
	"github.com/jonathan/letter-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleContent() *types.LetterContent {
	return &types.LetterContent{
		HeaderLines:    []string{"Aarav Sharma", "", "Respected Principal"},
		SubjectLine:    "Subject: Leave request",
		Salutation:     "Dear Respected Principal,",
		BodyParagraphs: []string{"I was selected for a competition.", "I would be grateful for your kind consideration of this matter."},
		ClosingLines:   []string{"Regards,", "Aarav"},
		FullText:       "irrelevant",
	}
}

func TestPrintLetter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	in := types.LetterInputs{
		Tone:          "formal",
		Language:      "english",
		ContextPoints: []string{"I was selected for a competition.", ""},
	}
	p.PrintLetter(in, sampleContent())
	output := buf.String()

	assert.Contains(t, output, "GENERATED LETTER")
	assert.Contains(t, output, "formal")
	assert.Contains(t, output, "Subject: Leave request")
	assert.Contains(t, output, "Paragraphs (2)")
	assert.Contains(t, output, "∘ I would be grateful")
	assert.Contains(t, output, "Gratitude: (omitted)")
	assert.Contains(t, output, "Regards, / Aarav")
}

func TestPrintLetter_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintLetter(types.LetterInputs{}, nil)
	assert.Empty(t, buf.String())
}

func TestPrintLetter_ManyParagraphs(t *testing.T) {
	var buf bytes.Buffer
	content := sampleContent()
	content.BodyParagraphs = []string{"a", "b", "c", "d", "e", "f", "g"}

	NewPrinter(&buf).PrintLetter(types.LetterInputs{}, content)
	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintOptions(catalog.All())
	output := buf.String()

	assert.Contains(t, output, "LETTER OPTIONS")
	assert.Contains(t, output, "semi-formal")
	assert.Contains(t, output, "Hinglish (Roman Hindi)")
}

func TestPrintBatch(t *testing.T) {
	var buf bytes.Buffer
	inputs := []types.LetterInputs{{Tone: "casual", Language: "hinglish"}}
	NewPrinter(&buf).PrintBatch(inputs, []types.LetterContent{*sampleContent()})
	output := buf.String()

	assert.Contains(t, output, "Generated 1 letters")
	assert.Contains(t, output, "casual/hinglish")
}

func TestPrintBatch_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatch(nil, nil)
	assert.Contains(t, buf.String(), "NO LETTERS GENERATED")
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TEST", strings.Repeat("विषय", 30))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
