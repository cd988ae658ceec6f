package game

import (
	"fmt"

	"quantum_checkers/internal/shared"
)

type (
	Player = shared.Player
	Cell   = shared.Cell
	Offset = shared.Offset
	Coord  = shared.Coord
)

const (
	NoPlayer  = shared.NoPlayer
	PlayerOne = shared.PlayerOne
	PlayerTwo = shared.PlayerTwo
	Empty     = shared.Empty
)

// MoveResult explains whether a move was applied and, if not, why.
type MoveResult uint8

const (
	SuccessOpponentsTurn MoveResult = iota + 1
	SuccessSameTurn
	Finish

	NoPieceFound
	NoVictimFound
	PathBlocked
	OutOfBounds
	InvalidDestination

	CaptureIgnored

	QuantumNotReady
)

var moveResultNames = map[MoveResult]string{
	SuccessOpponentsTurn: "success_opponents_turn",
	SuccessSameTurn:      "success_same_turn",
	Finish:               "finish",
	NoPieceFound:         "no_piece_found",
	NoVictimFound:        "no_victim_found",
	PathBlocked:          "path_blocked",
	OutOfBounds:          "out_of_bounds",
	InvalidDestination:   "invalid_destination",
	CaptureIgnored:       "capture_ignored",
	QuantumNotReady:      "quantum_not_ready",
}

func (r MoveResult) String() string {
	if name, ok := moveResultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("move_result(%d)", uint8(r))
}

// Applied reports whether the move changed the board.
func (r MoveResult) Applied() bool {
	return r == SuccessOpponentsTurn || r == SuccessSameTurn
}

func ParseMoveResult(s string) (MoveResult, bool) {
	for r, name := range moveResultNames {
		if name == s {
			return r, true
		}
	}
	return 0, false
}

// Results is the per-branch outcome vector of a quantum operation.
type Results []MoveResult

func (rs Results) Contains(target MoveResult) bool {
	for _, r := range rs {
		if r == target {
			return true
		}
	}
	return false
}

func (rs Results) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}

func repeatResult(r MoveResult, n int) Results {
	out := make(Results, n)
	for i := range out {
		out[i] = r
	}
	return out
}
