//nolint:revive // types is a standard Go package name pattern
package types

// Field names one editable text field of LetterInputs.
// The set is closed; values come from the JSON field names.
type Field string

const (
	FieldSenderName       Field = "senderName"
	FieldSenderAddress    Field = "senderAddress"
	FieldRecipientName    Field = "recipientName"
	FieldRecipientAddress Field = "recipientAddress"
	FieldSubject          Field = "subject"
	FieldGratitudeNote    Field = "gratitudeNote"
	FieldSignOffName      Field = "signOffName"
	FieldTone             Field = "tone"
	FieldLanguage         Field = "language"
	FieldLetterDate       Field = "letterDate"
)

// AllFields lists every Field in form order.
func AllFields() []Field {
	return []Field{
		FieldSenderName,
		FieldSenderAddress,
		FieldRecipientName,
		FieldRecipientAddress,
		FieldSubject,
		FieldGratitudeNote,
		FieldSignOffName,
		FieldLetterDate,
		FieldTone,
		FieldLanguage,
	}
}

// ParseField converts a field name into a Field.
func ParseField(name string) (Field, error) {
	for _, f := range AllFields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", &FieldError{Field: Field(name)}
}

// With returns a copy of in with one field replaced. in is left untouched.
// Tone and language values are not checked here; generation rejects unknown ones.
func (in LetterInputs) With(field Field, value string) (LetterInputs, error) {
	out := in
	out.ContextPoints = clonePoints(in.ContextPoints)

	switch field {
	case FieldSenderName:
		out.SenderName = value
	case FieldSenderAddress:
		out.SenderAddress = value
	case FieldRecipientName:
		out.RecipientName = value
	case FieldRecipientAddress:
		out.RecipientAddress = value
	case FieldSubject:
		out.Subject = value
	case FieldGratitudeNote:
		out.GratitudeNote = value
	case FieldSignOffName:
		out.SignOffName = value
	case FieldTone:
		out.Tone = value
	case FieldLanguage:
		out.Language = value
	case FieldLetterDate:
		out.LetterDate = value
	default:
		return in, &FieldError{Field: field}
	}

	return out, nil
}

// WithPoints returns a copy of in carrying its own copy of points.
func (in LetterInputs) WithPoints(points []string) LetterInputs {
	out := in
	out.ContextPoints = clonePoints(points)
	return out
}
