package strsplit

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-strsplit/analyzer"
	"github.com/jamesainslie/go-strsplit/filter"
	"github.com/jamesainslie/go-strsplit/lexicon"
	"github.com/jamesainslie/go-strsplit/segment"
)

// Splitter runs lines through the pre-filter, normalize, tokenize and token
// filter stages. It is safe for concurrent use.
type Splitter struct {
	preFilter   *filter.Pattern
	normalize   bool
	pool        *analyzer.Pool
	tokenFilter *filter.TokenFilter
	chunkLimit  int
	poolSize    int
	sentinel    string
	logger      *slog.Logger
}

// New creates a Splitter.
func New(opts ...Option) (*Splitter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pre, err := filter.Compile(cfg.preFilter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	tokenPattern, err := filter.Compile(cfg.tokenFilter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	if cfg.chunkLimitRaised {
		cfg.logger.Warn("chunk limit raised to minimum",
			"requested", cfg.rawChunkLimit, "limit", cfg.chunkLimit)
	}

	s := &Splitter{
		preFilter:  pre,
		normalize:  cfg.normalize,
		chunkLimit: cfg.chunkLimit,
		poolSize:   cfg.poolSize,
		sentinel:   cfg.sentinel,
		logger:     cfg.logger,
	}

	var d *dict.Dict
	if cfg.tokenize {
		d, err = analyzer.LoadDict(cfg.dictPath)
		if err != nil {
			return nil, dictError(err)
		}
		udict, err := analyzer.LoadUserDict(cfg.userDictPath)
		if err != nil {
			return nil, dictError(err)
		}

		mode := analyzer.Wakati
		if cfg.baseForm {
			mode = analyzer.BaseForm
		}
		s.pool, err = analyzer.NewPool(d, cfg.poolSize, analyzer.SessionConfig{
			Mode:     mode,
			MaxInput: cfg.chunkLimit,
			UserDict: udict,
		})
		if err != nil {
			return nil, fmt.Errorf("creating analyzer pool: %w", err)
		}
	}

	tf := &filter.TokenFilter{
		CutProlong: cfg.cutProlong,
		Pattern:    tokenPattern,
	}
	if cfg.useLexicon {
		lx := cfg.lexicon
		var lexErr error
		if lx == nil {
			lx, lexErr = lexicon.Open(cfg.lexiconBackend, lexicon.WithDict(d))
		}
		if lexErr != nil {
			s.logger.Warn("lexicon unavailable, token filter disabled",
				"backend", cfg.lexiconBackend, "error", lexErr)
			tf = nil
		} else {
			tf.Lexicon = lx
		}
	}
	if tf.Active() {
		s.tokenFilter = tf
	}

	return s, nil
}

func dictError(err error) error {
	if errors.Is(err, analyzer.ErrDictNotFound) {
		return fmt.Errorf("%w: %w", ErrDictNotFound, err)
	}
	return err
}

// Process runs one line through every enabled stage.
func (s *Splitter) Process(ctx context.Context, line string) (string, error) {
	out := s.preFilter.Strip(line)

	if s.normalize {
		var err error
		out, err = filter.Normalize(out)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNormalize, err)
		}
	}

	if s.pool != nil {
		var err error
		out, err = s.tokenize(ctx, out)
		if err != nil {
			return "", err
		}
	}

	if s.tokenFilter != nil {
		out = s.tokenFilter.Apply(out)
	}
	return out, nil
}

// tokenize parses text chunk by chunk on one session, so chunk outputs are
// concatenated in order.
func (s *Splitter) tokenize(ctx context.Context, text string) (string, error) {
	session, err := s.pool.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("acquiring session: %w", err)
	}
	defer s.pool.Release(session)

	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	n := 0
	for c := range segment.Chunks(text, s.chunkLimit) {
		parsed, err := session.Parse(ctx, c.Text)
		if err != nil {
			return "", fmt.Errorf("parsing chunk %d %s: %w", c.Index, c.Range, err)
		}
		b.WriteString(strings.TrimSuffix(parsed, "\n"))
		n++
	}
	if n > 1 {
		s.logger.Debug("line split into chunks", "chunks", n, "bytes", len(text), "limit", s.chunkLimit)
	}
	return strings.TrimSuffix(b.String(), " "), nil
}

// ProcessLines processes lines concurrently, at most pool-size at a time,
// and returns the results in input order.
func (s *Splitter) ProcessLines(ctx context.Context, lines []string) ([]string, error) {
	out := make([]string, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.poolSize)
	for i, line := range lines {
		g.Go(func() error {
			res, err := s.Process(ctx, line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Run reads lines from r and writes each processed line to w, newline
// terminated. It stops at end of input or at the sentinel line. Lines are
// processed in batches of up to pool-size, and a batch is written as soon as
// no further input is buffered, so interactive callers see each answer
// before sending the next line.
func (s *Splitter) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	batch := make([]string, 0, s.poolSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		results, err := s.ProcessLines(ctx, batch)
		if err != nil {
			return err
		}
		for _, res := range results {
			if _, err := bw.WriteString(res); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		batch = batch[:0]
		return bw.Flush()
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading input: %w", err)
		}
		eof := err != nil
		if eof && line == "" {
			break
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if s.sentinel != "" && line == s.sentinel {
			break
		}

		batch = append(batch, line)
		// An empty read buffer means the next read may block, so emit what
		// is pending rather than hold it behind input that has not arrived.
		if len(batch) == s.poolSize || br.Buffered() == 0 {
			if err := flush(); err != nil {
				return err
			}
		}
		if eof {
			break
		}
	}
	return flush()
}

// Close releases the analyzer sessions.
func (s *Splitter) Close() error {
	var errs []error
	if s.pool != nil {
		if err := s.pool.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing analyzer pool: %w", err))
		}
	}
	return errors.Join(errs...)
}
