//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// SampleInputs returns the pre-filled sample letter shown on first load,
// dated with the given pre-formatted date.
func SampleInputs(letterDate string) LetterInputs {
	return LetterInputs{
		SenderName:       "Aarav Sharma",
		SenderAddress:    "Sector 21, Gurugram",
		RecipientName:    "Respected Principal",
		RecipientAddress: "Sunrise Public School",
		Subject:          "Leave request for cultural event",
		ContextPoints: []string{
			"I have been selected to represent our school in a district level music competition.",
			"The event is scheduled for 28th to 30th July and requires my full participation.",
			"I have completed all pending assignments and coordinated with classmates for notes.",
		},
		GratitudeNote: "I am grateful for your constant encouragement and promise to uphold the school's name.",
		SignOffName:   "Yours faithfully,\nAarav Sharma",
		Tone:          "formal",
		Language:      "hinglish",
		LetterDate:    letterDate,
	}
}

// FormatLetterDate renders t as a long date with an ordinal day,
// e.g. "October 17th, 2026".
func FormatLetterDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
