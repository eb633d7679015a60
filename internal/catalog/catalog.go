// Package catalog holds the fixed tone and language options offered to letter writers.
package catalog

import "github.com/jonathan/letter-studio/internal/types"

// Tone values.
const (
	ToneFormal     = "formal"
	ToneSemiFormal = "semi-formal"
	ToneCasual     = "casual"
)

// Language values.
const (
	LanguageEnglish  = "english"
	LanguageHindi    = "hindi"
	LanguageHinglish = "hinglish"
)

// Display order is the order a selector shows; generation ignores it.
var (
	toneOptions = []types.Option{
		{Value: ToneFormal, Label: "Formal"},
		{Value: ToneSemiFormal, Label: "Semi-formal"},
		{Value: ToneCasual, Label: "Casual"},
	}

	languageOptions = []types.Option{
		{Value: LanguageEnglish, Label: "English"},
		{Value: LanguageHindi, Label: "हिन्दी (Hindi)"},
		{Value: LanguageHinglish, Label: "Hinglish (Roman Hindi)"},
	}
)

// ToneOptions returns the supported tones in display order.
// The returned slice is a copy and may be modified by the caller.
func ToneOptions() []types.Option {
	return cloneOptions(toneOptions)
}

// LanguageOptions returns the supported language registers in display order.
// The returned slice is a copy and may be modified by the caller.
func LanguageOptions() []types.Option {
	return cloneOptions(languageOptions)
}

// All returns both catalogs.
func All() types.Options {
	return types.Options{
		Tones:     ToneOptions(),
		Languages: LanguageOptions(),
	}
}

// LookupTone returns the catalog entry for value.
func LookupTone(value string) (types.Option, bool) {
	return lookup(toneOptions, value)
}

// LookupLanguage returns the catalog entry for value.
func LookupLanguage(value string) (types.Option, bool) {
	return lookup(languageOptions, value)
}

func lookup(options []types.Option, value string) (types.Option, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt, true
		}
	}
	return types.Option{}, false
}

func cloneOptions(options []types.Option) []types.Option {
	out := make([]types.Option, len(options))
	copy(out, options)
	return out
}
