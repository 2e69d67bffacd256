// Package booking implements the hotel, customer and reservation
// repositories. Every operation loads the relevant document in full,
// works on the in-memory record sequence and, when it mutates, writes
// the whole sequence back.
package booking

import "errors"

// Repository failure kinds, matched with errors.Is. None of them mutate
// stored data, with one exception: Modify on a missing ID still rewrites
// the unchanged document before reporting ErrNotFound.
var (
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidRecord    = errors.New("invalid record")
)
