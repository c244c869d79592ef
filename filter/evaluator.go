package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithBatchSize sets the chunk size below which evaluation stays sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large card sets into chunks evaluated in
// parallel. Cards on which the expression fails at runtime do not match.
type ConcurrentEvaluator struct {
	workers   int
	batchSize int
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: 100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the cards matching filter, preserving input order
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, cards []CardInfo) ([]CardInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return []CardInfo{}, nil
	}

	if len(cards) <= e.batchSize || e.workers == 1 {
		return matchAll(filter, cards), nil
	}

	chunkSize := max(len(cards)/e.workers, e.batchSize)
	chunks := make([][]CardInfo, 0, len(cards)/chunkSize+1)
	for i := 0; i < len(cards); i += chunkSize {
		chunks = append(chunks, cards[i:min(i+chunkSize, len(cards))])
	}

	results := make([][]CardInfo, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = matchAll(filter, chunk)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]CardInfo, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}

	return matches, nil
}

func matchAll(filter CompiledFilter, cards []CardInfo) []CardInfo {
	matches := make([]CardInfo, 0, len(cards)/4)
	for _, card := range cards {
		if ok, err := filter.Match(card); err == nil && ok {
			matches = append(matches, card)
		}
	}
	return matches
}
