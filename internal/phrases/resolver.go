package phrases

import (
	"strings"

	"github.com/jonathan/letter-studio/internal/catalog"
)

// toneSlots is the structural layer: each tone picks one slot in every lexicon.
var toneSlots = map[string]Slot{
	catalog.ToneFormal:     SlotFormal,
	catalog.ToneSemiFormal: SlotNeutral,
	catalog.ToneCasual:     SlotInformal,
}

// Bundle is the resolved phrasing for one tone and language pair.
type Bundle struct {
	Tone             string
	Language         string
	SubjectLabel     string
	Greeting         string
	GenericRecipient string
	Filler           string
	Valediction      string
	Connector        Connector
}

// Salutation applies the greeting to name, or to the generic recipient
// when name is blank.
func (b *Bundle) Salutation(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = b.GenericRecipient
	}
	return strings.ReplaceAll(b.Greeting, NamePlaceholder, name)
}

// SubjectLine prefixes the trimmed subject with the subject label.
// An empty subject still yields the bare label.
func (b *Bundle) SubjectLine(subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return b.SubjectLabel
	}
	return b.SubjectLabel + " " + subject
}

// Resolver composes bundles from a lexicon. It is read-only after
// construction and safe for concurrent use.
type Resolver struct {
	lex *Lexicon
}

var defaultResolver = mustDefaultResolver()

func mustDefaultResolver() *Resolver {
	r, err := NewResolver(defaultLexiconYAML)
	if err != nil {
		panic(err)
	}
	return r
}

// NewResolver builds a Resolver from lexicon YAML.
func NewResolver(lexiconYAML []byte) (*Resolver, error) {
	lex, err := ParseLexicon(lexiconYAML)
	if err != nil {
		return nil, err
	}
	return &Resolver{lex: lex}, nil
}

// Default returns the Resolver backed by the embedded lexicon.
func Default() *Resolver {
	return defaultResolver
}

// Resolve uses the embedded lexicon.
func Resolve(tone, language string) (*Bundle, error) {
	return defaultResolver.Resolve(tone, language)
}

// Resolve returns the phrase bundle for tone and language. Values outside
// the catalog return an *OptionError; there is no default register.
func (r *Resolver) Resolve(tone, language string) (*Bundle, error) {
	if _, ok := catalog.LookupTone(tone); !ok {
		return nil, &OptionError{Kind: "tone", Value: tone}
	}
	if _, ok := catalog.LookupLanguage(language); !ok {
		return nil, &OptionError{Kind: "language", Value: language}
	}

	slot, ok := toneSlots[tone]
	if !ok {
		return nil, &OptionError{Kind: "tone", Value: tone}
	}
	lang, ok := r.lex.Languages[language]
	if !ok {
		return nil, &OptionError{Kind: "language", Value: language}
	}
	phrases := lang.Slots[slot]

	if o, ok := r.lex.override(tone, language); ok {
		phrases = merge(phrases, o)
	}

	return &Bundle{
		Tone:             tone,
		Language:         language,
		SubjectLabel:     lang.SubjectLabel,
		Greeting:         phrases.Greeting,
		GenericRecipient: phrases.GenericRecipient,
		Filler:           phrases.Filler,
		Valediction:      phrases.Valediction,
		Connector:        Connector{Terminal: lang.Terminal},
	}, nil
}

func merge(base, o SlotPhrases) SlotPhrases {
	if o.Greeting != "" {
		base.Greeting = o.Greeting
	}
	if o.GenericRecipient != "" {
		base.GenericRecipient = o.GenericRecipient
	}
	if o.Filler != "" {
		base.Filler = o.Filler
	}
	if o.Valediction != "" {
		base.Valediction = o.Valediction
	}
	return base
}
