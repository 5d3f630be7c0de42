package model

// place puts a piece on an empty square for test setups.
func (b *Board) place(kind PieceType, color Color, sq Square) *Piece {
	if !b.IsWithinBounds(sq) || b.PieceAt(sq) != nil {
		panic("place: bad square " + sq.String())
	}
	p := &Piece{Type: kind, Color: color, Square: sq}
	b.pieces = append(b.pieces, p)
	return p
}

func emptyBoard() *Board {
	return &Board{width: 8, height: 8}
}
