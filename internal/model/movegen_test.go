package model

import (
	"testing"

	"github.com/AndrewSs45/Projecto-Algebra/internal/testutil"
)

func squares(t *testing.T, b *Board, notations ...string) []Square {
	t.Helper()
	out := make([]Square, 0, len(notations))
	for _, n := range notations {
		out = append(out, mustSquare(t, b, n))
	}
	return out
}

func TestStartingPositionMoves(t *testing.T) {
	b := NewStandardBoard()
	tests := []struct {
		from string
		want []string
	}{
		{"b1", []string{"c3", "a3"}},
		{"g8", []string{"h6", "f6"}},
		{"e7", []string{"e6", "e5"}},
		{"a2", []string{"a3", "a4"}},
		{"a1", nil},
		{"c1", nil},
		{"d1", nil},
		{"e1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got := b.ValidMoves(b.PieceAt(mustSquare(t, b, tt.from)))
			if tt.want == nil {
				testutil.AssertEqual(t, len(got), 0)
				return
			}
			testutil.AssertEqual(t, got, squares(t, b, tt.want...))
		})
	}
}

func TestNoMoveOntoOwnPiece(t *testing.T) {
	b := NewStandardBoard()
	play := [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"d1", "h5"}, {"g8", "f6"}, {"f1", "c4"}, {"c8", "g4"}, {"b1", "c3"}}
	for _, mv := range play {
		_, ok := b.ApplyMove(b.PieceAt(mustSquare(t, b, mv[0])), mustSquare(t, b, mv[1]))
		testutil.AssertTrue(t, ok, "%s-%s", mv[0], mv[1])
	}
	for _, p := range b.pieces {
		for _, dest := range b.ValidMoves(p) {
			testutil.AssertTrue(t, b.IsWithinBounds(dest), "%v lists %v", p, dest)
			if occ := b.PieceAt(dest); occ != nil && occ.Color == p.Color {
				t.Errorf("%v at %s lists own-occupied %s", p, b.Notation(p.Square), b.Notation(dest))
			}
		}
	}
}

func TestRookMoves(t *testing.T) {
	b := emptyBoard()
	rook := b.place(Rook, White, mustSquare(t, b, "d4"))
	b.place(Pawn, White, mustSquare(t, b, "d6"))
	b.place(Knight, Black, mustSquare(t, b, "f4"))

	want := squares(t, b,
		"d5",
		"d3", "d2", "d1",
		"c4", "b4", "a4",
		"e4", "f4",
	)
	testutil.AssertEqual(t, b.ValidMoves(rook), want)
}

func TestBishopMoves(t *testing.T) {
	b := emptyBoard()
	bishop := b.place(Bishop, Black, mustSquare(t, b, "c1"))
	b.place(Pawn, Black, mustSquare(t, b, "b2"))
	b.place(Queen, White, mustSquare(t, b, "e3"))

	testutil.AssertEqual(t, b.ValidMoves(bishop), squares(t, b, "d2", "e3"))
}

func TestQueenMovesEmptyBoard(t *testing.T) {
	b := emptyBoard()
	queen := b.place(Queen, White, mustSquare(t, b, "d4"))
	got := b.ValidMoves(queen)
	testutil.AssertEqual(t, len(got), 27)

	corner := emptyBoard()
	q := corner.place(Queen, Black, Square{0, 0})
	testutil.AssertEqual(t, len(corner.ValidMoves(q)), 21)
}

func TestSlidersStopAtFirstOccupied(t *testing.T) {
	b := emptyBoard()
	queen := b.place(Queen, White, mustSquare(t, b, "d4"))
	b.place(Pawn, Black, mustSquare(t, b, "d7"))
	b.place(Pawn, White, mustSquare(t, b, "g7"))
	b.place(Rook, Black, mustSquare(t, b, "b4"))

	got := b.ValidMoves(queen)
	for _, dir := range allDirs {
		var ray []Square
		for sq := queen.Square.Add(dir); b.IsWithinBounds(sq); sq = sq.Add(dir) {
			ray = append(ray, sq)
		}
		blocked := false
		for _, sq := range ray {
			listed := containsSquare(got, sq)
			occ := b.PieceAt(sq)
			switch {
			case blocked:
				testutil.AssertFalse(t, listed, "%s beyond a blocker", b.Notation(sq))
			case occ == nil:
				testutil.AssertTrue(t, listed, "%s is empty and reachable", b.Notation(sq))
			default:
				testutil.AssertEqual(t, listed, occ.Color != queen.Color, "blocker on %s", b.Notation(sq))
				blocked = true
			}
		}
	}
}

func TestKnightMoves(t *testing.T) {
	b := emptyBoard()
	center := b.place(Knight, White, mustSquare(t, b, "d4"))
	testutil.AssertEqual(t, b.ValidMoves(center), squares(t, b, "e2", "e6", "c2", "c6", "f3", "f5", "b3", "b5"))

	corner := emptyBoard()
	n := corner.place(Knight, Black, mustSquare(t, corner, "h8"))
	corner.place(Pawn, Black, mustSquare(t, corner, "g6"))
	corner.place(Pawn, White, mustSquare(t, corner, "f7"))
	testutil.AssertEqual(t, corner.ValidMoves(n), squares(t, corner, "f7"))
}

func TestKingMoves(t *testing.T) {
	b := emptyBoard()
	king := b.place(King, White, mustSquare(t, b, "e1"))
	b.place(Pawn, White, mustSquare(t, b, "e2"))
	b.place(Pawn, Black, mustSquare(t, b, "f2"))

	testutil.AssertEqual(t, b.ValidMoves(king), squares(t, b, "d2", "f2", "d1", "f1"))

	open := emptyBoard()
	k := open.place(King, Black, mustSquare(t, open, "d5"))
	testutil.AssertEqual(t, len(open.ValidMoves(k)), 8)
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		pawn  Color
		at    string
		setup map[string]Piece
		want  []string
	}{
		{"white start", White, "e2", nil, []string{"e3", "e4"}},
		{"black start", Black, "c7", nil, []string{"c6", "c5"}},
		{"blocked", White, "e2", map[string]Piece{"e3": {Type: Knight, Color: Black}}, nil},
		{"double step target occupied", White, "e2", map[string]Piece{"e4": {Type: Pawn, Color: Black}}, []string{"e3"}},
		{"off start rank", White, "e3", nil, []string{"e4"}},
		{"captures", White, "e4", map[string]Piece{
			"d5": {Type: Pawn, Color: Black},
			"f5": {Type: Bishop, Color: Black},
		}, []string{"e5", "d5", "f5"}},
		{"no capture of own", Black, "e5", map[string]Piece{
			"d4": {Type: Pawn, Color: Black},
			"f4": {Type: Rook, Color: White},
		}, []string{"e4", "f4"}},
		{"edge file", White, "a5", map[string]Piece{"b6": {Type: Queen, Color: Black}}, []string{"a6", "b6"}},
		{"last rank", White, "d8", nil, nil},
		{"black last rank", Black, "d1", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := emptyBoard()
			pawn := b.place(Pawn, tt.pawn, mustSquare(t, b, tt.at))
			for at, p := range tt.setup {
				b.place(p.Type, p.Color, mustSquare(t, b, at))
			}
			got := b.ValidMoves(pawn)
			if tt.want == nil {
				testutil.AssertEqual(t, len(got), 0)
				return
			}
			testutil.AssertEqual(t, got, squares(t, b, tt.want...))
		})
	}
}

func TestPawnMovesAlwaysForward(t *testing.T) {
	b := NewStandardBoard()
	play := [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}, {"c7", "c6"}, {"d5", "c6"}}
	for _, mv := range play {
		_, ok := b.ApplyMove(b.PieceAt(mustSquare(t, b, mv[0])), mustSquare(t, b, mv[1]))
		testutil.AssertTrue(t, ok, "%s-%s", mv[0], mv[1])
	}
	for _, p := range b.pieces {
		if p.Type != Pawn {
			continue
		}
		for _, dest := range b.ValidMoves(p) {
			delta := dest.Rank - p.Square.Rank
			if delta*pawnDirection(p.Color) <= 0 {
				t.Errorf("%v on %s lists non-forward %s", p, b.Notation(p.Square), b.Notation(dest))
			}
		}
	}
}

func TestPawnDoubleStepOnTallBoard(t *testing.T) {
	b, err := NewBoard(8, 10)
	testutil.AssertNoError(t, err)
	pawn := b.PieceAt(Square{File: 4, Rank: 8})
	testutil.AssertEqual(t, pawn.Type, Pawn)
	testutil.AssertEqual(t, b.ValidMoves(pawn), []Square{{4, 7}, {4, 6}})
}

func TestValidMovesNil(t *testing.T) {
	b := NewStandardBoard()
	testutil.AssertEqual(t, len(b.ValidMoves(nil)), 0)
	testutil.AssertEqual(t, len(b.ValidMoves(&Piece{Type: PieceType(42)})), 0)
}
