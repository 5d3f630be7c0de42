package model

import "fmt"

// MoveResult describes a successful Board.ApplyMove. Captured, when set, has
// already been removed from the board.
type MoveResult struct {
	Piece     *Piece `json:"piece"`
	From      Square `json:"from"`
	To        Square `json:"to"`
	Captured  *Piece `json:"captured"`
	EnPassant bool   `json:"enPassant"`
}

// Notation formats the move as short text for a board of the given height,
// e.g. "Ng1-f3" or "e4xd5".
func (r MoveResult) Notation(height int) string {
	prefix := ""
	if r.Piece != nil {
		prefix = r.Piece.Type.Notation()
	}
	sep := "-"
	if r.Captured != nil {
		sep = "x"
	}
	text := fmt.Sprintf("%s%s%s%s", prefix, r.From.Notation(height), sep, r.To.Notation(height))
	if r.EnPassant {
		text += " e.p."
	}
	return text
}
