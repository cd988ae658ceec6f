package controller

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"quantum_checkers/internal/game"
)

var errNotQuantum = errors.New("only available in quantum mode")

// table adapts a classical or a quantum board to the session loop.
type table interface {
	String() string
	Finished() bool
	CaptureOptions() []game.CaptureOption
	move(x, y, dx, dy int, user game.Player) game.Results
	split(x, y int, user game.Player) (game.Results, error)
	odds() (*mat.Dense, error)
	mode() string
}

type classicalTable struct{ *game.Board }

func (t classicalTable) move(x, y, dx, dy int, user game.Player) game.Results {
	return game.Results{t.Board.Move(x, y, dx, dy, user)}
}

func (classicalTable) split(int, int, game.Player) (game.Results, error) {
	return nil, errNotQuantum
}

func (classicalTable) odds() (*mat.Dense, error) { return nil, errNotQuantum }

func (classicalTable) mode() string { return "classical" }

type quantumTable struct{ *game.QuantumBoard }

func (t quantumTable) move(x, y, dx, dy int, user game.Player) game.Results {
	return t.QuantumBoard.Move(x, y, dx, dy, user)
}

func (t quantumTable) split(x, y int, user game.Player) (game.Results, error) {
	return t.QuantumSplit(x, y, user), nil
}

func (t quantumTable) odds() (*mat.Dense, error) { return t.Probabilities(), nil }

func (quantumTable) mode() string { return "quantum" }
