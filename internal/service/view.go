package service

import (
	"github.com/AndrewSs45/Projecto-Algebra/internal/model"
	"github.com/AndrewSs45/Projecto-Algebra/internal/physics"
)

// PieceView is a piece as the board view sees it, with its square in
// algebraic notation.
type PieceView struct {
	Type     model.PieceType `json:"type"`
	Color    model.Color     `json:"color"`
	Square   string          `json:"square"`
	HasMoved bool            `json:"hasMoved"`
	Name     string          `json:"name"`
}

type SelectionView struct {
	Piece PieceView `json:"piece"`
	Moves []string  `json:"moves"`
}

// MoveReport is a completed move together with its decorative motion figures.
type MoveReport struct {
	Piece     PieceView      `json:"piece"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Captured  *PieceView     `json:"captured"`
	EnPassant bool           `json:"enPassant"`
	Notation  string         `json:"notation"`
	Motion    physics.Motion `json:"motion"`
}

type BoardView struct {
	SessionID string         `json:"sessionId"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Pieces    []PieceView    `json:"pieces"`
	Selection *SelectionView `json:"selection"`
	LastMove  *MoveReport    `json:"lastMove"`
}

// ClickOutcome is the result of a click on the board: the new board state
// and, when the click completed a move, its report.
type ClickOutcome struct {
	Board BoardView   `json:"board"`
	Move  *MoveReport `json:"move"`
}

func newPieceView(p model.Piece, height int) PieceView {
	return PieceView{
		Type:     p.Type,
		Color:    p.Color,
		Square:   p.Square.Notation(height),
		HasMoved: p.HasMoved,
		Name:     p.String(),
	}
}

func notations(squares []model.Square, height int) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.Notation(height))
	}
	return out
}

func newMoveReport(r model.MoveResult, motion physics.Motion, height int) MoveReport {
	report := MoveReport{
		Piece:     newPieceView(*r.Piece, height),
		From:      r.From.Notation(height),
		To:        r.To.Notation(height),
		EnPassant: r.EnPassant,
		Notation:  r.Notation(height),
		Motion:    motion,
	}
	if r.Captured != nil {
		captured := newPieceView(*r.Captured, height)
		report.Captured = &captured
	}
	return report
}
