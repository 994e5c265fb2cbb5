// Package services defines the business logic for the platform catalog and
// the comparison dashboard. This file centralizes service-level error values
// so that they can be consistently returned by service methods and checked by
// callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	// ErrPlatformNotFound indicates that no platform carries the requested name.
	ErrPlatformNotFound = errors.New("platform not found")

	// ErrValidation is the parent of every review validation error; callers can
	// test errors.Is(err, ErrValidation) instead of enumerating the cases.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRating is returned when a rating falls outside 1..5.
	ErrInvalidRating = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)

	// ErrEmptyAuthor is returned when a review has a blank user name.
	ErrEmptyAuthor = fmt.Errorf("%w: user name is required", ErrValidation)

	// ErrEmptyComment is returned when a review has a blank comment.
	ErrEmptyComment = fmt.Errorf("%w: comment is required", ErrValidation)

	// ErrSamePlatform is returned when a comparison names the same platform twice.
	ErrSamePlatform = errors.New("choose two different platforms")
)
