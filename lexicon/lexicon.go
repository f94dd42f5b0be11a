// Package lexicon maps surface tokens to their base forms.
//
// A Lexicon answers one part of speech at a time; Lemma walks the parts of
// speech in a fixed priority order and returns the first answer.
package lexicon

import (
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("lexicon: unknown backend")

// POS is a part-of-speech rank.
type POS int

const (
	Noun POS = iota + 1
	Verb
	Adjective
	Adverb
	AdjectiveSatellite
)

func (p POS) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	case AdjectiveSatellite:
		return "adjective-satellite"
	default:
		return fmt.Sprintf("POS(%d)", int(p))
	}
}

// Priority is the order in which Lemma consults a Lexicon.
var Priority = []POS{AdjectiveSatellite, Adverb, Adjective, Verb, Noun}

// Lexicon looks up the base form of token as the given part of speech.
// ok is false when the token is not known as that part of speech.
type Lexicon interface {
	BaseForm(token string, pos POS) (base string, ok bool)
}

// Lemma returns the first non-empty base form of token in Priority order,
// or token itself when no part of speech matches.
func Lemma(lx Lexicon, token string) string {
	if lx == nil || token == "" {
		return token
	}
	for _, pos := range Priority {
		if base, ok := lx.BaseForm(token, pos); ok && base != "" {
			return base
		}
	}
	return token
}

// Chain consults each lexicon in turn and returns the first answer.
type Chain []Lexicon

// BaseForm implements Lexicon.
func (c Chain) BaseForm(token string, pos POS) (string, bool) {
	for _, lx := range c {
		if base, ok := lx.BaseForm(token, pos); ok && base != "" {
			return base, true
		}
	}
	return "", false
}

// Backend names accepted by Open.
const (
	BackendKagome   = "kagome"
	BackendEnglish  = "english"
	BackendSnowball = "snowball"
	BackendAuto     = "auto"
)

// Open initialises the named backend. An empty name selects auto, which
// sends ASCII tokens to the English dictionary and the rest to kagome.
// Initialisation failures are returned so the caller can decide whether to
// run without base forms.
func Open(name string, opts ...KagomeOption) (Lexicon, error) {
	switch name {
	case BackendKagome:
		return NewKagome(opts...)
	case BackendEnglish:
		return NewEnglish()
	case BackendSnowball:
		return NewSnowball(), nil
	case "", BackendAuto:
		k, err := NewKagome(opts...)
		if err != nil {
			return nil, err
		}
		e, err := NewEnglish()
		if err != nil {
			return nil, err
		}
		return ByScript{ASCII: e, Other: k}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
