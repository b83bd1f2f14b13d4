package selector

import (
	"errors"
	"fmt"
)

// ErrDuplicatePart is matched (errors.Is) by every DuplicatePartError.
var ErrDuplicatePart = errors.New("element, id and pseudo-element parts may occur at most once per compound selector")

// ErrOutOfOrder is matched (errors.Is) by every OutOfOrderPartError.
var ErrOutOfOrder = errors.New("parts of a compound selector must appear in order: element, id, class, attribute, pseudo-class, pseudo-element")

// DuplicatePartError reports a second occurrence of a uniqueness-restricted
// part kind within one compound selector.
type DuplicatePartError struct {
	Kind Kind
}

func (e DuplicatePartError) Error() string {
	return fmt.Sprintf("duplicate %s part: %v", e.Kind, ErrDuplicatePart)
}

func (e DuplicatePartError) Unwrap() error {
	return ErrDuplicatePart
}

// OutOfOrderPartError reports a part whose rank is lower than that of the
// part preceding it within one compound selector.
type OutOfOrderPartError struct {
	Prev, Next Kind
}

func (e OutOfOrderPartError) Error() string {
	return fmt.Sprintf("%s part may not follow %s part: %v", e.Next, e.Prev, ErrOutOfOrder)
}

func (e OutOfOrderPartError) Unwrap() error {
	return ErrOutOfOrder
}
