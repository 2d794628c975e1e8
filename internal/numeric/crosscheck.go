package numeric

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/flowsample/internal/errors"
)

// StrategyResult is the outcome of one strategy in a cross-check.
type StrategyResult struct {
	Name  string
	Value int
}

// CrossCheck runs every strategy concurrently for n and verifies that they
// agree. It returns the per-strategy results in input order and the agreed
// value, or an apperrors.MismatchError when any two differ.
func CrossCheck(ctx context.Context, strategies []Strategy, n int) ([]StrategyResult, int, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]StrategyResult, len(strategies))

	for i, s := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = StrategyResult{Name: s.Name(), Value: s.Compute(n)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return results, 0, nil
	}

	agreed := results[0].Value
	for _, r := range results[1:] {
		if r.Value != agreed {
			byName := make(map[string]int, len(results))
			for _, r := range results {
				byName[r.Name] = r.Value
			}
			return results, 0, apperrors.MismatchError{N: n, Results: byName}
		}
	}
	return results, agreed, nil
}
