// Package repository holds the read-only runner store and its loaders.
package repository

import (
	"context"

	"github.com/okian/racelens/internal/domain/model"
)

// Store provides read access to the loaded results.
type Store interface {
	// All returns every runner in sheet order. Callers must not modify it.
	All(ctx context.Context) []model.Runner

	// ByPosition returns the runner with the given overall position.
	// Returns ErrNotFound if no runner holds it.
	ByPosition(ctx context.Context, position int) (model.Runner, error)

	// Count returns the number of runners.
	Count(ctx context.Context) int
}
