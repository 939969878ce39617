package services

import (
	"errors"
	"fmt"
	"log"

	"job-tracker-api/internal/storage"
)

// mapRepoError maps storage errors to service errors. A *storage.ConflictError stays
// reachable through errors.As so callers can report the conflicting fields.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s: %w", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

func ptr[T any](v T) *T { return &v }
