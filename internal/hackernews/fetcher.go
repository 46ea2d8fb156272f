package hackernews

import (
	"context"
	"fmt"
	"go-practice/internal/logger"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultCount       = 10
	DefaultConcurrency = 4
)

type Source interface {
	TopStoryIDs(ctx context.Context) ([]int64, error)
	Item(ctx context.Context, id int64) (Story, error)
}

// Failure records an item that could not be fetched.
type Failure struct {
	ID  int64
	Err error
}

type Result struct {
	Stories  []Story
	Failures []Failure
}

type Fetcher struct {
	source      Source
	concurrency int
}

func NewFetcher(source Source, concurrency int) *Fetcher {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Fetcher{source: source, concurrency: concurrency}
}

// Fetch loads the first n top stories, at most f.concurrency at a time.
// Stories keep their ranking order; items that fail are left out of
// Stories and listed in Failures. Only a failed id listing or a cancelled
// context fails the call.
func (f *Fetcher) Fetch(ctx context.Context, n int) (*Result, error) {
	if n <= 0 {
		n = DefaultCount
	}
	ids, err := f.source.TopStoryIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) > n {
		ids = ids[:n]
	}

	stories := make([]Story, len(ids))
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			story, err := f.source.Item(ctx, id)
			if err != nil {
				errs[i] = err
				return nil
			}
			stories[i] = story
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}

	res := &Result{Stories: make([]Story, 0, len(ids))}
	for i, id := range ids {
		if errs[i] != nil {
			logger.Warn().Int64("id", id).Err(errs[i]).Msg("dropping story")
			res.Failures = append(res.Failures, Failure{ID: id, Err: errs[i]})
			continue
		}
		res.Stories = append(res.Stories, stories[i])
	}
	return res, nil
}
