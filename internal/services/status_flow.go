package services

import (
	"fmt"

	"job-tracker-api/internal/models"
)

// AdvanceStatus validates a move from current to requested and returns the resulting status.
// Rejection is allowed from anywhere; otherwise an application stays put or moves exactly
// one step forward along models.StatusPipeline. Nothing leaves rejected.
func AdvanceStatus(current, requested models.ApplicationStatus) (models.ApplicationStatus, error) {
	if requested == models.ApplicationStatusRejected {
		return requested, nil
	}
	if current == models.ApplicationStatusRejected {
		return current, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, current)
	}

	ci, ni := current.PipelineIndex(), requested.PipelineIndex()
	if ci < 0 || ni < 0 {
		return current, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
	}
	if ni == ci || ni == ci+1 {
		return requested, nil
	}
	return current, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
}
