package controller

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum_checkers/internal/game"
)

func input(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestClassicalGameToVictory(t *testing.T) {
	b, err := game.NewBoard(7, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewClassical(b, input(
		"0 0 1 1",
		"1 1 1 1", // player two has no piece there and keeps the turn
		"hello",
		"help",
		"0 6 1 -1",
		"6 0 -1 1",
		"2 6 1 -1",
		"5 1 1 1",
		"4 6 1 -1",
		"1 1 -1 1",
		"1 5 1 -1",
		"6 2 -1 1",
		"2 4 -1 -1",
		"0 2 2 2", // double jump keeps the turn
		"2 4 2 2",
	), &out)

	winner, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.PlayerOne, winner)
	assert.True(t, b.Finished())
	assert.Contains(t, out.String(), "Sorry, but that isn't a valid input!")
	assert.Contains(t, out.String(), "Commands:")
	assert.True(t, strings.HasSuffix(out.String(), "=============\nPlayer 1 has won!\n"))
}

func TestClassicalDebugOutput(t *testing.T) {
	b, err := game.NewBoard(3, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewClassical(b, input("0 0 1 1", "2 2 -2 -2"), &out, WithDebug(true))

	winner, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.PlayerTwo, winner)
	assert.Contains(t, out.String(), "[<(2,2) -> (0,0)>]")
	assert.Contains(t, out.String(), "[success_opponents_turn]")
	assert.Contains(t, out.String(), "[finish]")
	assert.Contains(t, out.String(), "Player 2 has won!")
}

func TestClassicalRejectsQuantumCommands(t *testing.T) {
	b, err := game.NewBoard(5, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewClassical(b, input("Q 2 0", "odds"), &out)

	_, err = c.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, game.PlayerOne, c.Player())
	assert.Contains(t, out.String(), "split: only available in quantum mode")
	assert.Contains(t, out.String(), "odds: only available in quantum mode")
}

func TestQuantumSplitPassesTurn(t *testing.T) {
	q, err := game.NewQuantumBoard(5, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewQuantum(q, input("Q 1 1", "Q 2 0", "odds"), &out, WithDebug(true))

	_, err = c.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, game.PlayerTwo, c.Player())
	assert.Equal(t, 2, q.BranchCount())
	assert.Contains(t, out.String(), "[quantum_not_ready]")
	assert.Contains(t, out.String(), "0.50")
	assert.Contains(t, out.String(), "\n100\t-\t0\t-\t100\t\n")
}

func TestQuantumMoveSwitchesOnAnySuccess(t *testing.T) {
	q, err := game.NewQuantumBoard(5, 1)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewQuantum(q, input("Q 2 0", "0 4 1 -1", "1 1 1 1"), &out)

	_, err = c.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	// Player one's move succeeds in one branch only and still ends the turn.
	assert.Equal(t, game.PlayerTwo, c.Player())
}

func TestQuitEndsSession(t *testing.T) {
	b, err := game.NewBoard(5, 1)
	require.NoError(t, err)

	var logs bytes.Buffer
	c := NewClassical(b, input("quit"), io.Discard, WithLogger(zerolog.New(&logs)))

	winner, err := c.Run(context.Background())
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, game.NoPlayer, winner)
	assert.Contains(t, logs.String(), c.SessionID())
	assert.Contains(t, logs.String(), "session abandoned")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	b, err := game.NewBoard(5, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClassical(b, input("0 0 1 1"), io.Discard)

	_, err = c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunStopsWhileWaitingForInput(t *testing.T) {
	b, err := game.NewBoard(5, 1)
	require.NoError(t, err)

	in, w := io.Pipe()
	t.Cleanup(func() { w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	prompted := make(chan struct{})
	out := &promptWatcher{prompted: prompted}
	c := NewClassical(b, in, out)

	done := make(chan error, 1)
	go func() {
		_, err := c.Run(ctx)
		done <- err
	}()

	<-prompted
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after cancellation")
	}
}

// promptWatcher closes prompted the first time the input prompt is written.
type promptWatcher struct {
	prompted chan struct{}
	once     sync.Once
}

func (p *promptWatcher) Write(b []byte) (int, error) {
	if strings.Contains(string(b), "What to do next?") {
		p.once.Do(func() { close(p.prompted) })
	}
	return len(b), nil
}

func TestSessionIDsAreUnique(t *testing.T) {
	b, err := game.NewBoard(5, 1)
	require.NoError(t, err)

	a := NewClassical(b, strings.NewReader(""), io.Discard)
	c := NewClassical(b.Clone(), strings.NewReader(""), io.Discard)
	assert.NotEqual(t, a.SessionID(), c.SessionID())
	assert.Len(t, a.SessionID(), 36)
}
