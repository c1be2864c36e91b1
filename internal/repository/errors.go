package repository

import "errors"

var (
	// ErrAlreadySeeded is returned when the mirror already holds records.
	ErrAlreadySeeded = errors.New("mirror already seeded")
	// ErrUnknownModule is returned for a module key outside the known set.
	ErrUnknownModule = errors.New("unknown module")
)
