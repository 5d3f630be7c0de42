package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/AndrewSs45/Projecto-Algebra/internal/model"
	"github.com/AndrewSs45/Projecto-Algebra/internal/physics"
	"github.com/AndrewSs45/Projecto-Algebra/internal/ws"
)

// Subscriber receives board updates. *websocket.Conn satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
}

// subscribers are the live connections watching one session
type subscribers struct {
	conns map[string]Subscriber // connection id -> connection
	mu    sync.Mutex
}

// Session is one board being explored through the view. All board access
// goes through the session mutex, so the board itself only ever sees one
// caller at a time.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	board       *model.Board
	selected    *model.Piece
	highlighted []model.Square
	stopwatch   *Stopwatch
	lastMove    *MoveReport
	touchedAt   time.Time
	now         func() time.Time

	subs *subscribers
}

func newSession(id string, board *model.Board, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	created := now()
	return &Session{
		ID:        id,
		CreatedAt: created,
		board:     board,
		stopwatch: NewStopwatch(now),
		touchedAt: created,
		now:       now,
		subs:      &subscribers{conns: make(map[string]Subscriber)},
	}
}

// Snapshot returns the current board state.
func (s *Session) Snapshot() BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() BoardView {
	h := s.board.Height()
	pieces := s.board.Pieces()
	view := BoardView{
		SessionID: s.ID,
		Width:     s.board.Width(),
		Height:    h,
		Pieces:    make([]PieceView, 0, len(pieces)),
		LastMove:  s.lastMove,
	}
	for _, p := range pieces {
		view.Pieces = append(view.Pieces, newPieceView(p, h))
	}
	if s.selected != nil {
		view.Selection = &SelectionView{
			Piece: newPieceView(*s.selected, h),
			Moves: notations(s.highlighted, h),
		}
	}
	return view
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

func (s *Session) touch() {
	s.touchedAt = s.now()
}

func (s *Session) pieceOn(notation string) (*model.Piece, model.Square, error) {
	sq, err := s.board.ParseSquare(notation)
	if err != nil {
		return nil, model.Square{}, err
	}
	p := s.board.PieceAt(sq)
	if p == nil {
		return nil, sq, fmt.Errorf("%w: %s", ErrNoPiece, notation)
	}
	return p, sq, nil
}

// ValidMoves lists the destinations of the piece on square without changing
// the selection.
func (s *Session) ValidMoves(square string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, _, err := s.pieceOn(square)
	if err != nil {
		return nil, err
	}
	return notations(s.board.ValidMoves(p), s.board.Height()), nil
}

// Select makes the piece on square the current selection and starts timing
// it. Selecting an empty square clears the selection.
func (s *Session) Select(square string) (BoardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sq, err := s.board.ParseSquare(square)
	if err != nil {
		return BoardView{}, err
	}
	s.touch()
	if p := s.board.PieceAt(sq); p != nil {
		s.selectPiece(p)
	} else {
		s.clearSelection()
	}
	view := s.snapshot()
	s.broadcast(ws.MessageTypeBoardState, view)
	return view, nil
}

func (s *Session) selectPiece(p *model.Piece) {
	s.selected = p
	s.highlighted = s.board.ValidMoves(p)
	s.stopwatch.Start()
	log.Printf("session %s: selected %s on %s, %d moves", s.ID, p, s.board.Notation(p.Square), len(s.highlighted))
}

func (s *Session) clearSelection() {
	s.selected = nil
	s.highlighted = nil
	s.stopwatch.Stop()
}

// Move applies a move between two squares. Rejected moves return
// ErrIllegalMove and leave the board unchanged.
func (s *Session) Move(from, to string) (MoveReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, _, err := s.pieceOn(from)
	if err != nil {
		return MoveReport{}, err
	}
	dest, err := s.board.ParseSquare(to)
	if err != nil {
		return MoveReport{}, err
	}
	s.touch()
	report, ok := s.applyMove(p, dest)
	if !ok {
		return MoveReport{}, fmt.Errorf("%w: %s to %s", ErrIllegalMove, from, to)
	}
	s.broadcast(ws.MessageTypeMoveResult, report)
	s.broadcast(ws.MessageTypeBoardState, s.snapshot())
	return report, nil
}

// applyMove moves p and records the report. If p is the timed selection its
// selection time and move count feed the motion figures; otherwise the
// defaults apply.
func (s *Session) applyMove(p *model.Piece, dest model.Square) (MoveReport, bool) {
	elapsed := physics.Untimed
	var mass int
	if p == s.selected {
		if d, running := s.stopwatch.Elapsed(); running {
			elapsed = d
		}
		mass = len(s.highlighted)
	} else {
		mass = len(s.board.ValidMoves(p))
	}

	result, ok := s.board.ApplyMove(p, dest)
	if !ok {
		log.Printf("session %s: rejected %s to %s", s.ID, s.board.Notation(p.Square), s.board.Notation(dest))
		return MoveReport{}, false
	}

	report := newMoveReport(result, physics.FromResult(result, elapsed, mass), s.board.Height())
	s.lastMove = &report
	s.clearSelection()
	if result.Captured != nil {
		kind := "capture"
		if result.EnPassant {
			kind = "en passant"
		}
		log.Printf("session %s: %s, %s took %s", s.ID, report.Notation, kind, result.Captured)
	} else {
		log.Printf("session %s: %s", s.ID, report.Notation)
	}
	return report, true
}

// Click drives the board the way a pointer does. With nothing selected it
// selects. Clicking the selected piece again deselects it. Any other click
// tries to move the selection there, and if that fails selects whatever was
// clicked.
func (s *Session) Click(square string) (ClickOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sq, err := s.board.ParseSquare(square)
	if err != nil {
		return ClickOutcome{}, err
	}
	s.touch()

	var outcome ClickOutcome
	clicked := s.board.PieceAt(sq)
	switch {
	case s.selected == nil:
		if clicked != nil {
			s.selectPiece(clicked)
		}
	case clicked == s.selected:
		s.clearSelection()
	default:
		if report, ok := s.applyMove(s.selected, sq); ok {
			outcome.Move = &report
		} else if clicked != nil {
			s.selectPiece(clicked)
		} else {
			s.clearSelection()
		}
	}
	outcome.Board = s.snapshot()
	if outcome.Move != nil {
		s.broadcast(ws.MessageTypeMoveResult, *outcome.Move)
	}
	s.broadcast(ws.MessageTypeBoardState, outcome.Board)
	return outcome, nil
}

// Reset puts the board back in the starting position.
func (s *Session) Reset() BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.Initialize()
	s.clearSelection()
	s.lastMove = nil
	s.touch()
	view := s.snapshot()

	log.Printf("session %s: reset", s.ID)
	s.broadcast(ws.MessageTypeBoardState, view)
	return view
}

// Subscribe registers a connection for updates and sends it the current
// board.
func (s *Session) Subscribe(connID string, sub Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeBoardState, s.snapshot())
	if err != nil {
		return err
	}

	s.subs.mu.Lock()
	defer s.subs.mu.Unlock()
	if _, exists := s.subs.conns[connID]; exists {
		return fmt.Errorf("connection %s already subscribed", connID)
	}
	if err := sub.WriteJSON(msg); err != nil {
		return err
	}
	s.subs.conns[connID] = sub
	return nil
}

func (s *Session) Unsubscribe(connID string) {
	s.subs.mu.Lock()
	defer s.subs.mu.Unlock()
	delete(s.subs.conns, connID)
}

func (s *Session) SubscriberCount() int {
	s.subs.mu.Lock()
	defer s.subs.mu.Unlock()
	return len(s.subs.conns)
}

// Send writes a single message to one subscriber. Writes share the
// subscriber lock with broadcasts so a connection never has two writers.
func (s *Session) Send(connID string, t ws.MessageType, payload interface{}) error {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		return err
	}

	s.subs.mu.Lock()
	defer s.subs.mu.Unlock()
	conn, ok := s.subs.conns[connID]
	if !ok {
		return fmt.Errorf("connection %s not subscribed", connID)
	}
	return conn.WriteJSON(msg)
}

// broadcast sends payload to every subscriber. Connections that fail to
// write are dropped. Callers hold s.mu so updates reach subscribers in the
// order they were applied.
func (s *Session) broadcast(t ws.MessageType, payload interface{}) {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		log.Printf("session %s: marshal %s: %v", s.ID, t, err)
		return
	}

	s.subs.mu.Lock()
	defer s.subs.mu.Unlock()
	for id, conn := range s.subs.conns {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("session %s: dropping subscriber %s: %v", s.ID, id, err)
			delete(s.subs.conns, id)
		}
	}
}
