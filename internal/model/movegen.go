package model

type moveGenerator func(b *Board, p *Piece) []Square

var generators = [pieceTypeCount]moveGenerator{
	Pawn:   pawnMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Rook:   rookMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}

// ValidMoves returns the destination squares available to piece. No king
// safety filtering is applied.
//
// Order is deterministic. Sliders walk their direction list (up, down, left,
// right, then the four diagonals) nearest square first. Knights and kings
// follow their offset tables. Pawns list the single step, the double step,
// then the left and right captures.
//
// En passant captures are never listed, yet ApplyMove accepts them, so a
// move can succeed without appearing here.
func (b *Board) ValidMoves(piece *Piece) []Square {
	if piece == nil || piece.Type >= pieceTypeCount {
		return nil
	}
	return generators[piece.Type](b, piece)
}

// pawnDirection is the rank delta of a forward pawn step.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func (b *Board) pawnStartRank(c Color) int {
	if c == White {
		return b.height - 2
	}
	return 1
}

func pawnMoves(b *Board, p *Piece) []Square {
	var moves []Square
	dir := pawnDirection(p.Color)

	oneForward := p.Square.Add(Direction{Rank: dir})
	if b.IsWithinBounds(oneForward) && b.PieceAt(oneForward) == nil {
		moves = append(moves, oneForward)

		if p.Square.Rank == b.pawnStartRank(p.Color) {
			twoForward := p.Square.Add(Direction{Rank: 2 * dir})
			if b.IsWithinBounds(twoForward) && b.PieceAt(twoForward) == nil {
				moves = append(moves, twoForward)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target := p.Square.Add(Direction{File: df, Rank: dir})
		if b.IsWithinBounds(target) && p.isEnemyOf(b.PieceAt(target)) {
			moves = append(moves, target)
		}
	}
	return moves
}

func rookMoves(b *Board, p *Piece) []Square {
	return b.lineMoves(p, orthogonalDirs)
}

func bishopMoves(b *Board, p *Piece) []Square {
	return b.lineMoves(p, diagonalDirs)
}

func queenMoves(b *Board, p *Piece) []Square {
	return b.lineMoves(p, allDirs)
}

func knightMoves(b *Board, p *Piece) []Square {
	return b.offsetMoves(p, knightOffsets)
}

func kingMoves(b *Board, p *Piece) []Square {
	return b.offsetMoves(p, kingOffsets)
}

// lineMoves walks each direction until the edge or the first occupied square,
// which is included only when it holds an enemy piece.
func (b *Board) lineMoves(p *Piece, dirs []Direction) []Square {
	var moves []Square
	for _, dir := range dirs {
		for target := p.Square.Add(dir); b.IsWithinBounds(target); target = target.Add(dir) {
			occupant := b.PieceAt(target)
			if occupant == nil {
				moves = append(moves, target)
				continue
			}
			if p.isEnemyOf(occupant) {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

func (b *Board) offsetMoves(p *Piece, offsets []Direction) []Square {
	var moves []Square
	for _, off := range offsets {
		target := p.Square.Add(off)
		if !b.IsWithinBounds(target) {
			continue
		}
		if occupant := b.PieceAt(target); occupant == nil || p.isEnemyOf(occupant) {
			moves = append(moves, target)
		}
	}
	return moves
}
