// Package dfs provides options and error definitions for depth-first
// traversal over a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartCityNotFound is returned when the start city ID is absent.
	ErrStartCityNotFound = errors.New("dfs: start city not found")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is the pre-order hook, fired when a city is first reached.
	// Returning an error aborts the traversal.
	OnVisit func(id int, depth int) error
}

// DefaultOptions returns Options with background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the pre-order visit hook.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a DFS traversal: city IDs in pre-order
// visit sequence.
type Result struct {
	Order []int
}
