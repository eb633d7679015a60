// Package types provides type definitions for structured data used throughout the letter-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// LetterInputs is the caller-owned input to letter generation.
// The composer reads it and never mutates it.
type LetterInputs struct {
	SenderName       string   `json:"senderName" validate:"max=200"`
	SenderAddress    string   `json:"senderAddress" validate:"max=1000"`
	RecipientName    string   `json:"recipientName" validate:"max=200"`
	RecipientAddress string   `json:"recipientAddress" validate:"max=1000"`
	Subject          string   `json:"subject" validate:"max=500"`
	ContextPoints    []string `json:"contextPoints" validate:"max=50,dive,max=2000"`
	GratitudeNote    string   `json:"gratitudeNote" validate:"max=2000"`
	SignOffName      string   `json:"signOffName" validate:"max=500"`
	Tone             string   `json:"tone"`
	Language         string   `json:"language"`
	LetterDate       string   `json:"letterDate" validate:"max=100"`
}

// LetterContent is the generated letter, both structured and flattened.
// A fresh value is built on every generation call.
type LetterContent struct {
	HeaderLines    []string `json:"headerLines"`
	SubjectLine    string   `json:"subjectLine"`
	Salutation     string   `json:"salutation"`
	BodyParagraphs []string `json:"bodyParagraphs"`
	GratitudeLine  string   `json:"gratitudeLine"`
	ClosingLines   []string `json:"closingLines"`
	FullText       string   `json:"fullText"`
}

// Option is a selectable tone or language entry.
// Value is what generation consumes; Label is for display only.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options groups both selector catalogs, as served to UIs.
type Options struct {
	Tones     []Option `json:"tones"`
	Languages []Option `json:"languages"`
}

// LetterBatch wraps several inputs for batch generation (wrapper for schema)
type LetterBatch struct {
	Letters []LetterInputs `json:"letters"`
}

// LetterContents wraps several generated letters, in request order
type LetterContents struct {
	Letters []LetterContent `json:"letters"`
}
