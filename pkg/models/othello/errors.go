package othello

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidBoard      = errors.New("invalid board")
)
