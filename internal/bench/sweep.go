package bench

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// SweepResult holds metrics for one chunk limit.
type SweepResult struct {
	Limit   int
	Metrics Metrics
}

// SweepLimits generates chunk limits from min up to, but excluding, max.
func SweepLimits(min, max, step int) []int {
	if step <= 0 {
		return nil
	}
	var limits []int
	for l := min; l < max; l += step {
		limits = append(limits, l)
	}
	return limits
}

// Sweep evaluates every limit over docs and returns results sorted by
// weighted score, best first. Ties keep limit order.
func Sweep(ctx context.Context, docs []*Document, cfg Config, limits []int) ([]SweepResult, error) {
	results := make([]SweepResult, len(limits))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, limit := range limits {
		g.Go(func() error {
			c := cfg
			c.Limit = limit

			per := make([]Metrics, 0, len(docs))
			for _, doc := range docs {
				if err := ctx.Err(); err != nil {
					return err
				}
				per = append(per, EvaluateDocument(doc, c))
			}
			results[i] = SweepResult{Limit: limit, Metrics: Aggregate(per, c)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
