package strsplit

import (
	"log/slog"
	"runtime"
	"unicode/utf8"

	"github.com/jamesainslie/go-strsplit/analyzer"
	"github.com/jamesainslie/go-strsplit/filter"
	"github.com/jamesainslie/go-strsplit/lexicon"
)

// Option configures a Splitter.
type Option func(*config)

type config struct {
	preFilter      string
	normalize      bool
	tokenize       bool
	dictPath       string
	userDictPath   string
	baseForm       bool
	tokenFilter    string
	lexicon        lexicon.Lexicon
	lexiconBackend string
	useLexicon     bool
	cutProlong     bool
	chunkLimit     int
	poolSize       int
	sentinel       string
	logger         *slog.Logger

	// rawChunkLimit is the WithChunkLimit argument when it was raised.
	rawChunkLimit    int
	chunkLimitRaised bool
}

func defaultConfig() config {
	return config{
		preFilter:  filter.DefaultPreFilter,
		normalize:  true,
		tokenize:   true,
		chunkLimit: analyzer.DefaultMaxInput,
		poolSize:   runtime.NumCPU(),
		logger:     slog.Default(),
	}
}

// WithPreFilter sets the expression stripped from each line before
// normalization (default: filter.DefaultPreFilter). An empty expression
// disables the stage.
func WithPreFilter(expr string) Option {
	return func(c *config) {
		c.preFilter = expr
	}
}

// WithoutNormalize disables NFKC normalization and case folding.
func WithoutNormalize() Option {
	return func(c *config) {
		c.normalize = false
	}
}

// WithoutTokenize disables morphological analysis.
func WithoutTokenize() Option {
	return func(c *config) {
		c.tokenize = false
	}
}

// WithDictionary sets the system dictionary file (default: embedded IPA).
func WithDictionary(path string) Option {
	return func(c *config) {
		c.dictPath = path
	}
}

// WithUserDictionary adds a kagome user dictionary.
func WithUserDictionary(path string) Option {
	return func(c *config) {
		c.userDictPath = path
	}
}

// WithBaseForm makes the analyzer emit base forms instead of surfaces.
func WithBaseForm(on bool) Option {
	return func(c *config) {
		c.baseForm = on
	}
}

// WithTokenFilter sets the expression stripped from every output token.
func WithTokenFilter(expr string) Option {
	return func(c *config) {
		c.tokenFilter = expr
	}
}

// WithLexicon enables base form substitution in the token filter using lx.
func WithLexicon(lx lexicon.Lexicon) Option {
	return func(c *config) {
		if lx != nil {
			c.lexicon = lx
			c.useLexicon = true
		}
	}
}

// WithLexiconBackend enables base form substitution using a lexicon opened
// by name (see lexicon.Open). If the backend fails to initialize the token
// filter stage is skipped.
func WithLexiconBackend(name string) Option {
	return func(c *config) {
		c.lexiconBackend = name
		c.useLexicon = true
	}
}

// WithCutProlong trims one trailing prolong mark from long tokens.
func WithCutProlong(on bool) Option {
	return func(c *config) {
		c.cutProlong = on
	}
}

// WithChunkLimit sets the largest chunk, in bytes, handed to the analyzer
// (default: analyzer.DefaultMaxInput). Values below utf8.UTFMax are raised
// to utf8.UTFMax so any character fits; New logs the adjustment.
func WithChunkLimit(n int) Option {
	return func(c *config) {
		c.chunkLimit = max(n, utf8.UTFMax)
		c.rawChunkLimit = n
		c.chunkLimitRaised = n < utf8.UTFMax
	}
}

// WithPoolSize sets the analyzer session pool size (default:
// runtime.NumCPU()). Run processes lines in batches of this size.
func WithPoolSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithSentinel makes Run stop at the first line equal to s.
func WithSentinel(s string) Option {
	return func(c *config) {
		c.sentinel = s
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
