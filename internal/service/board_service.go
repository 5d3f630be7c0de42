package service

import (
	"log"

	"github.com/AndrewSs45/Projecto-Algebra/internal/model"
)

// BoardService is what the controllers talk to.
type BoardService struct {
	sessionManager *SessionManager
}

func NewBoardService(sessionManager *SessionManager) *BoardService {
	return &BoardService{
		sessionManager: sessionManager,
	}
}

func (bs *BoardService) CreateSession() (*Session, error) {
	return bs.sessionManager.CreateSession()
}

func (bs *BoardService) Session(sessionID string) (*Session, error) {
	return bs.sessionManager.GetSession(sessionID)
}

func (bs *BoardService) DeleteSession(sessionID string) error {
	return bs.sessionManager.DeleteSession(sessionID)
}

// LocateSquare converts algebraic notation to grid coordinates on a standard
// board, independent of any session.
func (bs *BoardService) LocateSquare(notation string) (model.Square, error) {
	sq, err := model.NewStandardBoard().ParseSquare(notation)
	if err != nil {
		log.Printf("locate %q: %v", notation, err)
		return model.Square{}, err
	}
	return sq, nil
}
