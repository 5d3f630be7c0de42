package service

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoPiece         = errors.New("no piece on square")
	ErrIllegalMove     = errors.New("illegal move")
)
