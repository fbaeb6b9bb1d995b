// Package errors provides domain-specific sentinel errors for the
// course assistant. Use errors.Is() to check these errors in your code.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a requested course, teacher, department or
	// semester has no match in the catalog.
	ErrNotFound = errors.New("resource not found")

	// ErrGraphNotConfigured indicates no knowledge graph store was configured.
	ErrGraphNotConfigured = errors.New("knowledge graph not configured")

	// ErrGraphUnavailable indicates the knowledge graph store is configured
	// but unreachable.
	ErrGraphUnavailable = errors.New("knowledge graph unavailable")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCatalog indicates the course dataset contained no records.
	ErrEmptyCatalog = errors.New("course catalog is empty")
)

// CatalogError represents dataset loading failures with file context.
type CatalogError struct {
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error (path=%s): %v", e.Path, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new catalog error.
func NewCatalogError(path string, err error) *CatalogError {
	return &CatalogError{
		Path: path,
		Err:  err,
	}
}
