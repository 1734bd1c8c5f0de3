package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrNoPieceToMove = errors.New("no piece to move")
)

// MoveError reports a rejected relocation. Kind is one of the sentinels above.
type MoveError struct {
	Kind     error
	From, To fmt.Stringer
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %v -> %v", e.Kind, e.From, e.To)
}

func (e *MoveError) Unwrap() error {
	return e.Kind
}
