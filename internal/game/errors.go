package game

import "errors"

var (
	ErrBoardTooSmall       = errors.New("game board not big enough to fit population for both players")
	ErrUnresolvedCollision = errors.New("unresolved piece collision")
)
