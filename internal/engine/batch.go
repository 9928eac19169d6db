package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/catalogmatch/rangemapper/internal/model"
)

// MapAll maps a batch of queries concurrently with a bounded worker pool.
// Output order matches input order; queries share nothing but the read-only
// catalog index. The first error (an invalid query or a missing catalog)
// aborts the batch.
func (e *MappingEngine) MapAll(ctx context.Context, queries []model.LetterProductQuery) ([]*model.MappingResult, error) {
	if len(queries) == 0 {
		return nil, nil
	}

	results := make([]*model.MappingResult, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	for i := range queries {
		i := i
		g.Go(func() error {
			result, err := e.Map(ctx, queries[i])
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
