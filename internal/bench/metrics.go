package bench

import (
	"unicode/utf8"

	"github.com/jamesainslie/go-strsplit/segment"
)

// Config holds evaluation parameters.
type Config struct {
	Limit           int // chunk limit in bytes
	Tolerance       int // byte match tolerance against sentence ends
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Limit:           256,
		Tolerance:       3,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	Chunks     int
	SoftBreaks int // chunk ends placed before a break character
	HardCuts   int // chunk ends placed at a bare character boundary
	Oversize   int // chunks longer than the limit
	Misaligned int // chunk starts that are not character boundaries
	MaxLen     int
	MeanLen    float64

	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64

	totalLen int
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			if abs(p-t) <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	m := Metrics{
		TruePositives:  tp,
		FalsePositives: len(predicted) - tp,
		FalseNegatives: len(truth) - tp,
	}
	m.score(cfg)
	return m
}

// EvaluateDocument chunks doc at cfg.Limit and scores the chunk ends
// against the document's sentence ends.
func EvaluateDocument(doc *Document, cfg Config) Metrics {
	text := doc.Text
	var m Metrics
	var breaks []int

	for r := range segment.Ranges(text, cfg.Limit) {
		m.Chunks++
		m.totalLen += r.Len()
		m.MaxLen = max(m.MaxLen, r.Len())
		if cfg.Limit > 0 && r.Len() > cfg.Limit {
			m.Oversize++
		}
		if r.Start == 0 {
			continue
		}
		if !utf8.RuneStart(text[r.Start]) {
			m.Misaligned++
		}
		c, _ := utf8.DecodeRuneInString(text[r.Start:])
		if segment.Classify(c).Soft() {
			m.SoftBreaks++
		} else {
			m.HardCuts++
		}
		breaks = append(breaks, r.Start)
	}

	// The final sentence end is the end of the text, never a chunk break.
	var truth []int
	for _, s := range doc.Sentences {
		if s.End < len(text) {
			truth = append(truth, s.End)
		}
	}

	b := Evaluate(breaks, truth, cfg)
	m.TruePositives = b.TruePositives
	m.FalsePositives = b.FalsePositives
	m.FalseNegatives = b.FalseNegatives
	m.score(cfg)
	return m
}

// Aggregate sums per-document metrics and recomputes the ratios.
func Aggregate(ms []Metrics, cfg Config) Metrics {
	var agg Metrics
	for _, m := range ms {
		agg.Chunks += m.Chunks
		agg.SoftBreaks += m.SoftBreaks
		agg.HardCuts += m.HardCuts
		agg.Oversize += m.Oversize
		agg.Misaligned += m.Misaligned
		agg.MaxLen = max(agg.MaxLen, m.MaxLen)
		agg.totalLen += m.totalLen
		agg.TruePositives += m.TruePositives
		agg.FalsePositives += m.FalsePositives
		agg.FalseNegatives += m.FalseNegatives
	}
	agg.score(cfg)
	return agg
}

func (m *Metrics) score(cfg Config) {
	tp, fp, fn := m.TruePositives, m.FalsePositives, m.FalseNegatives

	m.Precision, m.Recall, m.F1, m.WeightedScore = 0, 0, 0, 0
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	if m.Chunks > 0 {
		m.MeanLen = float64(m.totalLen) / float64(m.Chunks)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
