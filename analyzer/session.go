// Package analyzer wraps the kagome morphological analyzer behind pooled,
// mutex-guarded sessions.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// DefaultMaxInput is the largest input, in bytes, a session parses by
// default.
const DefaultMaxInput = 900000

// OutputMode selects what Parse emits per token.
type OutputMode int

const (
	// Wakati emits token surfaces.
	Wakati OutputMode = iota
	// BaseForm emits dictionary base forms, falling back to the surface.
	BaseForm
)

func (m OutputMode) String() string {
	switch m {
	case Wakati:
		return "wakati"
	case BaseForm:
		return "baseform"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// SessionConfig configures a Session.
type SessionConfig struct {
	Mode OutputMode
	// MaxInput caps the bytes accepted by Parse. Zero means DefaultMaxInput.
	MaxInput int
	UserDict *dict.UserDict
}

// Session is one kagome tokenizer plus its output settings.
type Session struct {
	tok      *tokenizer.Tokenizer
	mode     OutputMode
	maxInput int
	mu       sync.Mutex
	closed   bool
}

// NewSession creates a session over d.
func NewSession(d *dict.Dict, cfg SessionConfig) (*Session, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil dictionary", ErrDictNotFound)
	}

	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if cfg.UserDict != nil {
		opts = append(opts, tokenizer.UserDict(cfg.UserDict))
	}
	tok, err := tokenizer.New(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}

	maxInput := cfg.MaxInput
	if maxInput <= 0 {
		maxInput = DefaultMaxInput
	}
	return &Session{tok: tok, mode: cfg.Mode, maxInput: maxInput}, nil
}

// MaxInput returns the session's input ceiling in bytes.
func (s *Session) MaxInput() int {
	return s.maxInput
}

// Parse tokenizes text and returns the tokens, each followed by a single
// space, terminated by a newline. Whitespace tokens are dropped.
func (s *Session) Parse(ctx context.Context, text string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if len(text) > s.maxInput {
		return "", fmt.Errorf("%w: %d > %d bytes", ErrInputTooLong, len(text), s.maxInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrSessionClosed
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	for _, t := range s.tok.Tokenize(text) {
		if t.Class == tokenizer.DUMMY || strings.TrimSpace(t.Surface) == "" {
			continue
		}
		b.WriteString(s.feature(t))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String(), nil
}

func (s *Session) feature(t tokenizer.Token) string {
	if s.mode != BaseForm {
		return t.Surface
	}
	base, ok := t.BaseForm()
	if !ok || base == "" || base == "*" {
		return t.Surface
	}
	return base
}

// Close releases the tokenizer. Further Parse calls fail.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.tok = nil
	return nil
}
