package model

import (
	"fmt"
	"strconv"
)

const (
	maxWidth  = 26
	maxHeight = 99
	minHeight = 4
)

// Square is a zero-based (file, rank) coordinate. Rank 0 is the top row of the
// grid, which is the highest rank in algebraic notation.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (s Square) Add(d Direction) Square {
	return Square{File: s.File + d.File, Rank: s.Rank + d.Rank}
}

func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.File, s.Rank)
}

// Notation renders s as algebraic notation for a board of the given height,
// e.g. Square{4, 4}.Notation(8) == "e4".
func (s Square) Notation(height int) string {
	return fmt.Sprintf("%c%d", rune('a'+s.File), height-s.Rank)
}

// ParseSquare converts algebraic notation back to grid coordinates for a board
// of the given height. Ranks with more than one digit are accepted, but not
// with a leading zero.
func ParseSquare(notation string, height int) (Square, error) {
	if len(notation) < 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, notation)
	}
	file := notation[0]
	if file < 'a' || file > 'z' {
		return Square{}, fmt.Errorf("%w: bad file in %q", ErrInvalidSquare, notation)
	}
	rank, err := strconv.Atoi(notation[1:])
	if err != nil || rank < 1 || notation[1] == '+' || notation[1] == '0' {
		return Square{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidSquare, notation)
	}
	return Square{File: int(file - 'a'), Rank: height - rank}, nil
}

// Direction is a step applied to a Square.
type Direction struct {
	File int
	Rank int
}

var (
	orthogonalDirs = []Direction{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonalDirs   = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs        = append(append([]Direction{}, orthogonalDirs...), diagonalDirs...)
	knightOffsets  = []Direction{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets    = []Direction{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)
