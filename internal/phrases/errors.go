// Package phrases resolves a tone and language register into the concrete phrasing of a letter.
package phrases

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is wrapped by every OptionError.
var ErrUnknownOption = errors.New("unknown option")

// OptionError reports a tone or language value outside the catalog.
// It is a caller contract violation, never a fallback case.
type OptionError struct {
	Kind  string // "tone" or "language"
	Value string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

func (e *OptionError) Unwrap() error {
	return ErrUnknownOption
}

// LexiconError represents a malformed phrase lexicon
type LexiconError struct {
	Message string
	Cause   error
}

func (e *LexiconError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("lexicon error: %s", e.Message)
}

func (e *LexiconError) Unwrap() error {
	return e.Cause
}
