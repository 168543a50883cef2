package janggi

import "errors"

var (
	ErrGameAlreadyOver        = errors.New("game already over")
	ErrEmptySource            = errors.New("no piece on source square")
	ErrWrongSideToMove        = errors.New("piece belongs to the side not on move")
	ErrFriendlyFireTarget     = errors.New("target holds a piece of the moving side")
	ErrIllegalForRank         = errors.New("move is illegal for the piece's rank")
	ErrCannotPassWhileInCheck = errors.New("cannot pass while in check")
)
