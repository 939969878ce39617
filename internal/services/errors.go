package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate company+position
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrFollowUpNotSet     = errors.New("application has no follow-up scheduled")
)
