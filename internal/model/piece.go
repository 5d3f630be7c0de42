package model

import "fmt"

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	pieceTypeCount
)

var pieceTypeNames = [pieceTypeCount]string{
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

func (p PieceType) String() string {
	if p >= pieceTypeCount {
		return fmt.Sprintf("PieceType(%d)", uint8(p))
	}
	return pieceTypeNames[p]
}

// Notation returns the SAN letter for the piece type. Pawns have none.
func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

func (p PieceType) MarshalText() ([]byte, error) {
	if p >= pieceTypeCount {
		return nil, fmt.Errorf("unknown piece type %d", uint8(p))
	}
	return []byte(pieceTypeNames[p]), nil
}

func (p *PieceType) UnmarshalText(text []byte) error {
	for i, name := range pieceTypeNames {
		if name == string(text) {
			*p = PieceType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece type %q", text)
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece is owned by a Board. Its Square and HasMoved fields change only
// through Board.ApplyMove.
type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Square   Square    `json:"square"`
	HasMoved bool      `json:"hasMoved"`
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Type)
}

func (p *Piece) isEnemyOf(other *Piece) bool {
	return other != nil && other.Color != p.Color
}
