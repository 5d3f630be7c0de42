package model

import "fmt"

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is the authoritative store of piece positions. It is not safe for
// concurrent use; callers serialize access.
type Board struct {
	width  int
	height int
	pieces []*Piece
}

// NewBoard returns a width x height board set up in the starting position.
func NewBoard(width, height int) (*Board, error) {
	if width < 1 || width > maxWidth || height < minHeight || height > maxHeight {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b := &Board{width: width, height: height}
	b.Initialize()
	return b, nil
}

// NewStandardBoard returns an 8x8 board in the starting position.
func NewStandardBoard() *Board {
	b := &Board{width: 8, height: 8}
	b.Initialize()
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) IsWithinBounds(sq Square) bool {
	return sq.File >= 0 && sq.File < b.width && sq.Rank >= 0 && sq.Rank < b.height
}

// PieceAt returns the piece on sq, or nil.
func (b *Board) PieceAt(sq Square) *Piece {
	for _, p := range b.pieces {
		if p.Square == sq {
			return p
		}
	}
	return nil
}

// Pieces returns a copy of every piece on the board.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		out = append(out, *p)
	}
	return out
}

// Initialize resets the board to the standard starting layout. Black occupies
// ranks 0 and 1, white the last two ranks. Files beyond the board width are
// skipped.
func (b *Board) Initialize() {
	b.pieces = make([]*Piece, 0, 32)
	for file, kind := range backRank {
		b.addPiece(kind, Black, Square{File: file, Rank: 0})
	}
	for file := 0; file < len(backRank); file++ {
		b.addPiece(Pawn, Black, Square{File: file, Rank: 1})
	}
	for file := 0; file < len(backRank); file++ {
		b.addPiece(Pawn, White, Square{File: file, Rank: b.height - 2})
	}
	for file, kind := range backRank {
		b.addPiece(kind, White, Square{File: file, Rank: b.height - 1})
	}
}

func (b *Board) addPiece(kind PieceType, color Color, sq Square) {
	if !b.IsWithinBounds(sq) {
		return
	}
	b.pieces = append(b.pieces, &Piece{Type: kind, Color: color, Square: sq})
}

func (b *Board) owns(piece *Piece) bool {
	return piece != nil && b.PieceAt(piece.Square) == piece
}

func (b *Board) remove(piece *Piece) {
	for i, p := range b.pieces {
		if p == piece {
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
			return
		}
	}
}

func (b *Board) Notation(sq Square) string {
	return sq.Notation(b.height)
}

func (b *Board) ParseSquare(notation string) (Square, error) {
	sq, err := ParseSquare(notation, b.height)
	if err != nil {
		return Square{}, err
	}
	if !b.IsWithinBounds(sq) {
		return Square{}, fmt.Errorf("%w: %q is off the board", ErrInvalidSquare, notation)
	}
	return sq, nil
}

// ApplyMove moves piece to dest if dest is one of its valid moves, removing
// any captured piece. The en-passant diagonal is also accepted even though the
// generator never lists it. ok is false when the move is rejected; the board is
// left untouched in that case.
func (b *Board) ApplyMove(piece *Piece, dest Square) (result MoveResult, ok bool) {
	if !b.owns(piece) {
		return MoveResult{}, false
	}
	enPassant := b.enPassantVictim(piece, dest)
	if enPassant == nil && !containsSquare(b.ValidMoves(piece), dest) {
		return MoveResult{}, false
	}

	result = MoveResult{Piece: piece, From: piece.Square, To: dest}
	if target := b.PieceAt(dest); target != nil {
		b.remove(target)
		result.Captured = target
	} else if enPassant != nil {
		b.remove(enPassant)
		result.Captured = enPassant
		result.EnPassant = true
	}

	piece.Square = dest
	piece.HasMoved = true
	return result, true
}

// enPassantVictim returns the enemy pawn taken by a one-step forward diagonal
// pawn move onto an empty square, or nil. Whether that pawn just made a double
// step is not checked.
func (b *Board) enPassantVictim(piece *Piece, dest Square) *Piece {
	if piece.Type != Pawn || !b.IsWithinBounds(dest) || b.PieceAt(dest) != nil {
		return nil
	}
	df := dest.File - piece.Square.File
	if (df != 1 && df != -1) || dest.Rank-piece.Square.Rank != pawnDirection(piece.Color) {
		return nil
	}
	victim := b.PieceAt(Square{File: dest.File, Rank: piece.Square.Rank})
	if victim == nil || victim.Type != Pawn || !piece.isEnemyOf(victim) {
		return nil
	}
	return victim
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
