//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampleInputs(t *testing.T) {
	in := SampleInputs("October 17th, 2026")

	assert.Equal(t, "Aarav Sharma", in.SenderName)
	assert.Equal(t, "formal", in.Tone)
	assert.Equal(t, "hinglish", in.Language)
	assert.Len(t, in.ContextPoints, 3)
	assert.Equal(t, "Yours faithfully,\nAarav Sharma", in.SignOffName)
	assert.Equal(t, "October 17th, 2026", in.LetterDate)

	// callers get independent slices
	in.ContextPoints[0] = "changed"
	assert.NotEqual(t, "changed", SampleInputs("x").ContextPoints[0])
}

func TestFormatLetterDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC), "October 17th, 2026"},
		{time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), "July 1st, 2026"},
		{time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC), "July 2nd, 2026"},
		{time.Date(2026, time.July, 3, 0, 0, 0, 0, time.UTC), "July 3rd, 2026"},
		{time.Date(2026, time.July, 11, 0, 0, 0, 0, time.UTC), "July 11th, 2026"},
		{time.Date(2026, time.July, 12, 0, 0, 0, 0, time.UTC), "July 12th, 2026"},
		{time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC), "July 13th, 2026"},
		{time.Date(2026, time.July, 21, 0, 0, 0, 0, time.UTC), "July 21st, 2026"},
		{time.Date(2026, time.July, 22, 0, 0, 0, 0, time.UTC), "July 22nd, 2026"},
		{time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC), "July 31st, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLetterDate(tt.date))
		})
	}
}
