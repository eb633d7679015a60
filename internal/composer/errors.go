// Package composer builds letters from LetterInputs.
package composer

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InputError reports inputs beyond the accepted size bounds.
// Empty fields are never an InputError.
type InputError struct {
	Fields []string
	Cause  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid letter inputs: %s", strings.Join(e.Fields, ", "))
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// BatchError identifies which letter in a batch failed.
type BatchError struct {
	Index int
	Cause error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("letter %d: %v", e.Index, e.Cause)
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}

func newInputError(err error) *InputError {
	ie := &InputError{Cause: err}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			ie.Fields = append(ie.Fields, fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
		}
	}
	if len(ie.Fields) == 0 {
		ie.Fields = []string{err.Error()}
	}
	return ie
}
