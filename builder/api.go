// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Topology factories live in impl_*.go, one per file.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// Constructor adds vertices and edges to b using the resolved configuration.
// Constructors validate their parameters before touching b and return
// sentinel errors wrapped with method context.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves opts, applies every constructor in order to a single
// core.Builder and returns the frozen graph. The first constructor error is
// wrapped with "BuildGraph: %w" and returned; no graph is produced.
//
// Complexity: O(len(opts)) plus the cost of each constructor plus O(N²) to
// freeze.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	b := core.NewBuilder(0)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Graph(), nil
}

// Apply runs constructors against an existing builder, for callers that
// need to mix generated topology with hand-added edges.
func Apply(b *core.Builder, opts []BuilderOption, cons ...Constructor) error {
	if b == nil {
		return fmt.Errorf("Apply: nil builder: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addEdge inserts {u,v}; indices are produced by the constructors and are
// always in range, so a failure means a broken constructor.
func addEdge(method string, b *core.Builder, u, v int) error {
	if err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
