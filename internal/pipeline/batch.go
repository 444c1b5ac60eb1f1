package pipeline

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/types"
)

// ParseAll parses independent resume documents in parallel. Each document
// owns its input and its slot in the result slice, so no coordination beyond
// the worker limit is needed. Results keep input order; a failed document is
// recorded in its result and never blocks its siblings.
func ParseAll(ctx context.Context, paths []string, concurrency int) (*types.BatchRun, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	run := &types.BatchRun{
		RunID:   uuid.New(),
		Results: make([]types.BatchResult, len(paths)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := ParseFile(path)
			run.Results[i] = types.BatchResult{Path: path, Record: record, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return run, nil
}
