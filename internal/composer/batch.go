package composer

import (
	"context"

	"github.com/jonathan/letter-studio/internal/types"
	"golang.org/x/sync/errgroup"
)

// maxBatchWorkers bounds concurrent generations within one batch.
const maxBatchWorkers = 8

// GenerateBatch composes every letter concurrently and returns them in
// input order. The first failure cancels the rest and is returned as a
// *BatchError; no partial results are returned.
func (c *Composer) GenerateBatch(ctx context.Context, inputs []types.LetterInputs) ([]types.LetterContent, error) {
	results := make([]types.LetterContent, len(inputs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxBatchWorkers)

	for i := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			content, err := c.Generate(inputs[i])
			if err != nil {
				return &BatchError{Index: i, Cause: err}
			}
			// each goroutine owns results[i]
			results[i] = *content
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GenerateBatch uses the embedded lexicon.
func GenerateBatch(ctx context.Context, inputs []types.LetterInputs) ([]types.LetterContent, error) {
	return defaultComposer.GenerateBatch(ctx, inputs)
}
