package catalog

import (
	"testing"

	"github.com/jonathan/letter-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneOptions_StableOrder(t *testing.T) {
	first := ToneOptions()
	second := ToneOptions()

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, ToneFormal, first[0].Value)
	assert.Equal(t, ToneSemiFormal, first[1].Value)
	assert.Equal(t, ToneCasual, first[2].Value)
}

func TestLanguageOptions_StableOrder(t *testing.T) {
	opts := LanguageOptions()

	require.Len(t, opts, 3)
	assert.Equal(t, LanguageEnglish, opts[0].Value)
	assert.Equal(t, LanguageHindi, opts[1].Value)
	assert.Equal(t, LanguageHinglish, opts[2].Value)
}

func TestOptions_ReturnCopies(t *testing.T) {
	opts := ToneOptions()
	opts[0].Value = "mutated"

	assert.Equal(t, ToneFormal, ToneOptions()[0].Value)
}

func TestOptions_UniqueValues(t *testing.T) {
	for name, opts := range map[string][]string{
		"tones":     values(ToneOptions()),
		"languages": values(LanguageOptions()),
	} {
		t.Run(name, func(t *testing.T) {
			seen := make(map[string]bool)
			for _, v := range opts {
				assert.False(t, seen[v], "duplicate value %q", v)
				seen[v] = true
			}
		})
	}
}

func TestLookup(t *testing.T) {
	opt, ok := LookupTone("casual")
	assert.True(t, ok)
	assert.Equal(t, "Casual", opt.Label)

	_, ok = LookupTone("sarcastic")
	assert.False(t, ok)

	_, ok = LookupLanguage("")
	assert.False(t, ok)

	opt, ok = LookupLanguage("hinglish")
	assert.True(t, ok)
	assert.NotEmpty(t, opt.Label)
}

func TestAll(t *testing.T) {
	all := All()
	assert.Equal(t, ToneOptions(), all.Tones)
	assert.Equal(t, LanguageOptions(), all.Languages)
}

func values(opts []types.Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}
