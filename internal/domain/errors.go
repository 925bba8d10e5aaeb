package domain

import "errors"

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnknownGenre = errors.New("unknown genre")
	ErrConflict     = errors.New("conflict")
)

// Sentinel errors for the booking workflows. BookingError unwraps to one of these.
var (
	ErrParse       = errors.New("malformed booking input")
	ErrOrdering    = errors.New("start is after end")
	ErrContainment = errors.New("outside artist availability")
	ErrCollision   = errors.New("overlaps an existing booking")
)
