package service

import "errors"

var (
	// ErrInvalidInput rejects a request before any write is attempted.
	ErrInvalidInput = errors.New("service: invalid input")

	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("service: not found")

	// ErrDuplicatePath rejects appending a taxonomy path that already exists.
	ErrDuplicatePath = errors.New("service: duplicate taxonomy path")

	// ErrUnknownClassification rejects a review whose classification does
	// not match any stored taxonomy path.
	ErrUnknownClassification = errors.New("service: classification does not match any taxonomy path")
)
