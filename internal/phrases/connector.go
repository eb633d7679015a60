package phrases

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceEnders end a sentence in any supported script.
const sentenceEnders = ".!?।॥…"

// trailingClosers may follow the sentence-ending mark.
const trailingClosers = "\"'”’)]»"

// Connector turns a raw bullet fragment into a complete sentence.
type Connector struct {
	// Terminal is appended when the fragment has no ending punctuation.
	Terminal string
}

// Complete trims fragment, upper-cases its first letter and appends the
// terminal mark when the fragment does not already end a sentence.
// Wording is otherwise left as written. A blank fragment yields "".
func (c Connector) Complete(fragment string) string {
	s := strings.TrimSpace(fragment)
	if s == "" {
		return ""
	}

	s = capitalizeFirst(s)
	if !endsSentence(s) {
		s += c.Terminal
	}
	return s
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func endsSentence(s string) bool {
	s = strings.TrimRight(s, trailingClosers)
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && strings.ContainsRune(sentenceEnders, r)
}
