package lexicon

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPA dictionary top-level part-of-speech names.
var kagomePOS = map[string]POS{
	"名詞":  Noun,
	"動詞":  Verb,
	"形容詞": Adjective,
	"副詞":  Adverb,
	"連体詞": AdjectiveSatellite,
}

// KagomeOption configures a Kagome lexicon.
type KagomeOption func(*kagomeConfig)

type kagomeConfig struct {
	dict *dict.Dict
}

// WithDict sets the dictionary (default: embedded IPA dictionary).
func WithDict(d *dict.Dict) KagomeOption {
	return func(c *kagomeConfig) {
		if d != nil {
			c.dict = d
		}
	}
}

// kagomeMemoSize bounds the per-lexicon analysis memo. The memo is
// dropped wholesale when full.
const kagomeMemoSize = 4096

type analysis struct {
	base string
	pos  POS
	ok   bool
}

// Kagome resolves base forms from a morphological dictionary. A token is
// answered only when it analyses as a single morpheme of the requested part
// of speech. Each distinct token is analysed once; Lemma's per-POS queries
// hit the memo. Kagome is safe for concurrent use.
type Kagome struct {
	tokenize func(string) []tokenizer.Token

	mu   sync.Mutex
	memo map[string]analysis
}

// NewKagome builds a Kagome lexicon.
func NewKagome(opts ...KagomeOption) (*Kagome, error) {
	var cfg kagomeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dict == nil {
		cfg.dict = ipa.Dict()
	}

	t, err := tokenizer.New(cfg.dict, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("initializing kagome tokenizer: %w", err)
	}
	return &Kagome{
		tokenize: t.Tokenize,
		memo:     make(map[string]analysis),
	}, nil
}

// BaseForm implements Lexicon.
func (k *Kagome) BaseForm(token string, pos POS) (string, bool) {
	a := k.analyze(token)
	if !a.ok || a.pos != pos {
		return "", false
	}
	return a.base, true
}

func (k *Kagome) analyze(token string) analysis {
	k.mu.Lock()
	a, hit := k.memo[token]
	k.mu.Unlock()
	if hit {
		return a
	}

	a = k.analyzeUncached(token)

	k.mu.Lock()
	if len(k.memo) >= kagomeMemoSize {
		clear(k.memo)
	}
	k.memo[token] = a
	k.mu.Unlock()
	return a
}

func (k *Kagome) analyzeUncached(token string) analysis {
	var morpheme *tokenizer.Token
	for _, t := range k.tokenize(token) {
		if t.Class == tokenizer.DUMMY || strings.TrimSpace(t.Surface) == "" {
			continue
		}
		if morpheme != nil {
			return analysis{}
		}
		morpheme = &t
	}
	if morpheme == nil {
		return analysis{}
	}

	features := morpheme.POS()
	if len(features) == 0 {
		return analysis{}
	}
	pos, known := kagomePOS[features[0]]
	if !known {
		return analysis{}
	}
	base, ok := morpheme.BaseForm()
	if !ok || base == "" || base == "*" {
		return analysis{}
	}
	return analysis{base: base, pos: pos, ok: true}
}
