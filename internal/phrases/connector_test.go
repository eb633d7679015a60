package phrases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnector_Complete(t *testing.T) {
	english := Connector{Terminal: "."}
	hindi := Connector{Terminal: "।"}

	tests := []struct {
		name      string
		connector Connector
		input     string
		want      string
	}{
		{"already complete", english, "I was selected for a competition.", "I was selected for a competition."},
		{"adds terminal", english, "the event is on Monday", "The event is on Monday."},
		{"trims surrounding space", english, "  notes are ready \n", "Notes are ready."},
		{"keeps question mark", english, "could you approve this?", "Could you approve this?"},
		{"keeps exclamation", english, "thanks a lot!", "Thanks a lot!"},
		{"closing quote after period", english, `she said "yes."`, `She said "yes."`},
		{"ellipsis", english, "and so on…", "And so on…"},
		{"digit first", english, "28th July works", "28th July works."},
		{"devanagari gets danda", hindi, "मैं कल नहीं आ पाऊँगा", "मैं कल नहीं आ पाऊँगा।"},
		{"devanagari already ended", hindi, "धन्यवाद।", "धन्यवाद।"},
		{"latin in hindi register", hindi, "ok", "Ok।"},
		{"blank", english, "   ", ""},
		{"internal whitespace kept", english, "line one\nline two", "Line one\nline two."},
		{"accented lower first", english, "école starts", "École starts."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.connector.Complete(tt.input))
		})
	}
}
