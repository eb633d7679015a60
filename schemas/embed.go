// Package schemas holds the JSON Schema documents for letter request files.
package schemas

import "embed"

// Schema file names.
const (
	Common       = "common.schema.json"
	LetterInputs = "letter_inputs.schema.json"
	LetterBatch  = "letter_batch.schema.json"
)

// BaseURL is the $id prefix shared by every schema.
const BaseURL = "https://letter-studio.local/schemas/"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
