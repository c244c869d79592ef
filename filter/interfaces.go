package filter

import (
	"context"
)

// Filter decides whether a card matches
type Filter interface {
	// Match reports whether card satisfies the filter
	Match(card CardInfo) (bool, error)
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// Evaluator applies a filter to many cards
type Evaluator interface {
	// Evaluate returns the cards matching filter, in input order
	Evaluate(ctx context.Context, filter CompiledFilter, cards []CardInfo) ([]CardInfo, error)
}
