package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrClientNotFound     = fmt.Errorf("client %w", ErrNotFound)
	ErrPackageNotFound    = fmt.Errorf("package %w", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("booking %w", ErrNotFound)
	ErrOccurrenceNotFound = fmt.Errorf("occurrence %w", ErrNotFound)
	ErrRequestNotFound    = fmt.Errorf("request %w", ErrNotFound)
)

var (
	ErrInsufficientHours = errors.New("insufficient bookable hours")
	ErrDuplicateRequest  = errors.New("an unresolved request already exists for this lesson")
	ErrRequestNotPending = errors.New("request is already resolved")
)

var (
	ErrEmailTaken = errors.New("email is already used by another client")
)

var (
	ErrValidation = errors.New("validation error")
)
