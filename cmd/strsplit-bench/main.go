package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	strsplit "github.com/jamesainslie/go-strsplit"
	"github.com/jamesainslie/go-strsplit/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory containing corpus .txt files")
		limit     = flag.Int("limit", 256, "Chunk limit in bytes")
		tolerance = flag.Int("tolerance", 3, "Byte tolerance for matching chunk ends to sentence ends")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
		sweep     = flag.Bool("sweep", false, "Run chunk limit sweep")
		sweepMin  = flag.Int("sweep-min", 16, "Sweep minimum limit")
		sweepMax  = flag.Int("sweep-max", 1024, "Sweep maximum limit (exclusive)")
		sweepStep = flag.Int("sweep-step", 16, "Sweep step size")
		process   = flag.Bool("process", false, "Also run the full pipeline over every line and report throughput")
		workers   = flag.Int("workers", 4, "Analyzer sessions for -process")
	)
	flag.Parse()

	docs, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), *corpusDir)

	cfg := bench.Config{
		Limit:           *limit,
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	ctx := context.Background()

	if *sweep {
		runSweep(ctx, docs, cfg, *sweepMin, *sweepMax, *sweepStep)
	} else {
		runSingle(docs, cfg)
	}

	if *process {
		runProcess(ctx, docs, cfg.Limit, *workers)
	}
}

func runSingle(docs []*bench.Document, cfg bench.Config) {
	per := make([]bench.Metrics, 0, len(docs))
	for _, doc := range docs {
		per = append(per, bench.EvaluateDocument(doc, cfg))
	}
	printMetrics(bench.Aggregate(per, cfg), cfg)
}

func runSweep(ctx context.Context, docs []*bench.Document, cfg bench.Config, min, max, step int) {
	limits := bench.SweepLimits(min, max, step)

	fmt.Printf("Chunk Limit Sweep (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s %-8s %-8s\n", "Limit", "Chunks", "Hard", "Prec", "Rec", "F1", "Weighted")

	results, err := bench.Sweep(ctx, docs, cfg, limits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	// Print sorted by limit for readability
	for _, l := range limits {
		for _, r := range results {
			if r.Limit == l {
				m := r.Metrics
				fmt.Printf("%-8d %-8d %-8d %-8.2f %-8.2f %-8.2f %-8.2f\n",
					r.Limit, m.Chunks, m.HardCuts, m.Precision, m.Recall, m.F1, m.WeightedScore)
				break
			}
		}
	}

	fmt.Println(strings.Repeat("-", 66))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: %d (Weighted: %.2f)\n", best.Limit, best.Metrics.WeightedScore)
	}
}

func runProcess(ctx context.Context, docs []*bench.Document, limit, workers int) {
	sp, err := strsplit.New(strsplit.WithChunkLimit(limit), strsplit.WithPoolSize(workers))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating splitter: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = sp.Close() }()

	var lines, tokens, bytesIn int
	start := time.Now()
	for _, doc := range docs {
		in := doc.Lines()
		out, err := sp.ProcessLines(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error processing %s: %v\n", doc.ID, err)
			os.Exit(1)
		}
		lines += len(in)
		for i, o := range out {
			bytesIn += len(in[i])
			tokens += len(strings.Fields(o))
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("\nPipeline: %d lines, %d tokens, %d bytes in %s", lines, tokens, bytesIn, elapsed.Round(time.Millisecond))
	if s := elapsed.Seconds(); s > 0 {
		fmt.Printf(" (%.0f lines/s, %.2f MB/s)", float64(lines)/s, float64(bytesIn)/s/1e6)
	}
	fmt.Println()
}

func printMetrics(m bench.Metrics, cfg bench.Config) {
	fmt.Printf("Limit: %d  Chunks: %d  Soft: %d  Hard: %d  Oversize: %d  Misaligned: %d\n",
		cfg.Limit, m.Chunks, m.SoftBreaks, m.HardCuts, m.Oversize, m.Misaligned)
	fmt.Printf("Max len: %d  Mean len: %.1f\n", m.MaxLen, m.MeanLen)
	fmt.Printf("Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}
