package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveResultNamesRoundTrip(t *testing.T) {
	for r := SuccessOpponentsTurn; r <= QuantumNotReady; r++ {
		got, ok := ParseMoveResult(r.String())
		assert.True(t, ok, r.String())
		assert.Equal(t, r, got)
	}
	_, ok := ParseMoveResult("friendly_piece")
	assert.False(t, ok)
	assert.Equal(t, "move_result(0)", MoveResult(0).String())
}

func TestMoveResultApplied(t *testing.T) {
	assert.True(t, SuccessOpponentsTurn.Applied())
	assert.True(t, SuccessSameTurn.Applied())
	assert.False(t, Finish.Applied())
	assert.False(t, CaptureIgnored.Applied())
}

func TestResults(t *testing.T) {
	rs := Results{NoPieceFound, SuccessOpponentsTurn}
	assert.True(t, rs.Contains(SuccessOpponentsTurn))
	assert.False(t, rs.Contains(Finish))
	assert.Equal(t, []string{"no_piece_found", "success_opponents_turn"}, rs.Strings())
	assert.Equal(t, Results{OutOfBounds, OutOfBounds, OutOfBounds}, repeatResult(OutOfBounds, 3))
}
