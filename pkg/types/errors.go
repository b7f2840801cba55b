package types

import "errors"

// Store operation errors.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrInvalidID         = errors.New("invalid entity ID")
	ErrInvalidData       = errors.New("invalid entity data")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Stage errors.
var (
	ErrInvalidStage = errors.New("invalid stage value")
)
