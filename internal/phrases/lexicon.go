package phrases

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jonathan/letter-studio/internal/catalog"
	"gopkg.in/yaml.v3"
)

// NamePlaceholder marks where the recipient goes in a greeting.
const NamePlaceholder = "{name}"

//go:embed lexicon.yaml
var defaultLexiconYAML []byte

// Slot is a tone's structural position in every language's lexicon.
type Slot string

const (
	SlotFormal   Slot = "formal"
	SlotNeutral  Slot = "neutral"
	SlotInformal Slot = "informal"
)

var allSlots = []Slot{SlotFormal, SlotNeutral, SlotInformal}

// SlotPhrases are the register-dependent phrases of one language.
type SlotPhrases struct {
	Greeting         string `yaml:"greeting"`
	GenericRecipient string `yaml:"generic_recipient"`
	Filler           string `yaml:"filler"`
	Valediction      string `yaml:"valediction"`
}

// LanguageLexicon is the lexical layer for one language register.
type LanguageLexicon struct {
	SubjectLabel string               `yaml:"subject_label"`
	Terminal     string               `yaml:"terminal"`
	Slots        map[Slot]SlotPhrases `yaml:"slots"`
}

// Override replaces selected phrases for one tone and language pair.
type Override struct {
	Tone        string `yaml:"tone"`
	Language    string `yaml:"language"`
	SlotPhrases `yaml:",inline"`
}

// Lexicon is the complete phrase data behind a Resolver.
type Lexicon struct {
	Languages map[string]LanguageLexicon `yaml:"languages"`
	Overrides []Override                 `yaml:"overrides"`
}

// ParseLexicon decodes and checks lexicon YAML. Every catalog language must
// be present with all slots filled, and overrides may only name catalog values.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, &LexiconError{Message: "failed to parse lexicon YAML", Cause: err}
	}
	if err := lex.validate(); err != nil {
		return nil, err
	}
	return &lex, nil
}

func (l *Lexicon) validate() error {
	for _, opt := range catalog.LanguageOptions() {
		lang, ok := l.Languages[opt.Value]
		if !ok {
			return &LexiconError{Message: fmt.Sprintf("missing language %q", opt.Value)}
		}
		if lang.SubjectLabel == "" || lang.Terminal == "" {
			return &LexiconError{Message: fmt.Sprintf("language %q needs subject_label and terminal", opt.Value)}
		}
		for _, slot := range allSlots {
			phrases, ok := lang.Slots[slot]
			if !ok {
				return &LexiconError{Message: fmt.Sprintf("language %q missing slot %q", opt.Value, slot)}
			}
			if err := phrases.check(fmt.Sprintf("%s/%s", opt.Value, slot), true); err != nil {
				return err
			}
		}
	}

	for i, o := range l.Overrides {
		if _, ok := catalog.LookupTone(o.Tone); !ok {
			return &LexiconError{Message: fmt.Sprintf("override %d names unknown tone %q", i, o.Tone)}
		}
		if _, ok := catalog.LookupLanguage(o.Language); !ok {
			return &LexiconError{Message: fmt.Sprintf("override %d names unknown language %q", i, o.Language)}
		}
		if err := o.check(fmt.Sprintf("override %s/%s", o.Tone, o.Language), false); err != nil {
			return err
		}
	}

	return nil
}

func (p SlotPhrases) check(where string, complete bool) error {
	if complete && (p.Greeting == "" || p.GenericRecipient == "" || p.Filler == "" || p.Valediction == "") {
		return &LexiconError{Message: where + ": every phrase must be set"}
	}
	if p.Greeting != "" && !strings.Contains(p.Greeting, NamePlaceholder) {
		return &LexiconError{Message: where + ": greeting lacks " + NamePlaceholder}
	}
	return nil
}

func (l *Lexicon) override(tone, language string) (SlotPhrases, bool) {
	for _, o := range l.Overrides {
		if o.Tone == tone && o.Language == language {
			return o.SlotPhrases, true
		}
	}
	return SlotPhrases{}, false
}
