package schemas

import (
	"errors"
	"testing"

	schemafiles "github.com/jonathan/letter-studio/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLetter = `{
	"senderName": "Aarav Sharma",
	"recipientName": "Respected Principal",
	"subject": "Leave request",
	"contextPoints": ["I was selected for a competition.", ""],
	"gratitudeNote": "",
	"tone": "formal",
	"language": "english",
	"signOffName": "Regards,\nAarav"
}`

func TestCompileSchemas(t *testing.T) {
	all, err := compileSchemas()
	require.NoError(t, err)
	assert.Contains(t, all, schemafiles.LetterInputs)
	assert.Contains(t, all, schemafiles.LetterBatch)
}

func TestDecodeLetterInputs_Valid(t *testing.T) {
	in, err := DecodeLetterInputs([]byte(validLetter))
	require.NoError(t, err)
	assert.Equal(t, "Aarav Sharma", in.SenderName)
	assert.Equal(t, []string{"I was selected for a competition.", ""}, in.ContextPoints)
	assert.Equal(t, "Regards,\nAarav", in.SignOffName)
}

func TestDecodeLetterInputs_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing tone", `{"language": "english", "contextPoints": [""]}`, "(root)"},
		{"missing points", `{"tone": "formal", "language": "english"}`, "(root)"},
		{"wrong type", `{"tone": "formal", "language": "english", "contextPoints": "one"}`, "contextPoints"},
		{"point not string", `{"tone": "formal", "language": "english", "contextPoints": [1]}`, "contextPoints.0"},
		{"snake case field", `{"tone": "formal", "language": "english", "contextPoints": [], "sender_name": "A"}`, "(root)"},
		{"empty tone", `{"tone": "", "language": "english", "contextPoints": []}`, "tone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLetterInputs([]byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestDecodeLetterInputs_UnknownToneStillDecodes(t *testing.T) {
	// option membership is the resolver's job, not the schema's
	in, err := DecodeLetterInputs([]byte(`{"tone": "pirate", "language": "english", "contextPoints": [""]}`))
	require.NoError(t, err)
	assert.Equal(t, "pirate", in.Tone)
}

func TestDecodeLetterInputs_MalformedJSON(t *testing.T) {
	_, err := DecodeLetterInputs([]byte("{ invalid json }"))
	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
}

func TestDecodeLetterBatch(t *testing.T) {
	batch, err := DecodeLetterBatch([]byte(`{"letters": [` + validLetter + `,` + validLetter + `]}`))
	require.NoError(t, err)
	assert.Len(t, batch.Letters, 2)

	_, err = DecodeLetterBatch([]byte(`{"letters": []}`))
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = DecodeLetterBatch([]byte(`{"letters": [{"tone": "formal"}]}`))
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nope.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}
