// Package controller runs a two-player game of checkers over a line-based
// text interface. Both players share the same input; the session tracks
// whose turn it is.
package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"quantum_checkers/internal/game"
)

// ErrQuit is returned by Run when a player quits before the game ends.
var ErrQuit = errors.New("player quit")

const helpText = `Commands:
  x y dx dy   move the piece at (x, y) by (dx, dy); jumps use a distance of 2
  Q x y       split the piece at (x, y) onto both forward diagonals (quantum only)
  odds        show the chance of a piece on every square (quantum only)
  help        show this text
  quit        leave the game`

// Option configures a Controller.
type Option func(*Controller)

// WithLogger attaches a logger; the session ID is added to its context.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithDebug prints capture options before every prompt and raw results after
// every move.
func WithDebug(debug bool) Option {
	return func(c *Controller) { c.debug = debug }
}

// Controller alternates turns between two players reading from one input.
type Controller struct {
	table  table
	in     *bufio.Scanner
	lines  chan inputLine
	start  sync.Once
	out    io.Writer
	player game.Player
	debug  bool
	id     string
	log    zerolog.Logger
}

// NewClassical drives a single classical board.
func NewClassical(b *game.Board, in io.Reader, out io.Writer, opts ...Option) *Controller {
	return newController(classicalTable{b}, in, out, opts)
}

// NewQuantum drives a superposed board.
func NewQuantum(q *game.QuantumBoard, in io.Reader, out io.Writer, opts ...Option) *Controller {
	return newController(quantumTable{q}, in, out, opts)
}

func newController(t table, in io.Reader, out io.Writer, opts []Option) *Controller {
	c := &Controller{
		table:  t,
		in:     bufio.NewScanner(in),
		out:    out,
		player: game.PlayerOne,
		id:     uuid.NewString(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("session", c.id).Str("mode", t.mode()).Logger()
	return c
}

// SessionID identifies this game in the logs.
func (c *Controller) SessionID() string { return c.id }

// Player returns whose turn it is.
func (c *Controller) Player() game.Player { return c.player }

// Run plays until the game finishes, returning the winner. It returns io.EOF
// when input runs out first and ErrQuit when a player leaves.
func (c *Controller) Run(ctx context.Context) (game.Player, error) {
	c.log.Info().Msg("session started")

	for !c.table.Finished() {
		if err := ctx.Err(); err != nil {
			return game.NoPlayer, err
		}
		if err := c.turn(ctx); err != nil {
			if errors.Is(err, ErrQuit) {
				c.log.Info().Stringer("player", c.player).Msg("session abandoned")
			}
			return game.NoPlayer, err
		}
	}

	fmt.Fprintln(c.out, "=============")
	fmt.Fprintf(c.out, "Player %d has won!\n", c.player.Index()+1)
	c.log.Info().Stringer("winner", c.player).Msg("game finished")
	return c.player, nil
}

func (c *Controller) turn(ctx context.Context) error {
	fmt.Fprintln(c.out, c.table.String())
	if c.debug {
		fmt.Fprintln(c.out, formatCaptures(c.table.CaptureOptions()))
	}
	fmt.Fprint(c.out, "What to do next? ")

	line, err := c.readLine(ctx)
	if err != nil {
		return err
	}
	cmd, err := ParseCommand(line)
	if err != nil {
		c.log.Debug().Err(err).Msg("rejected input")
		fmt.Fprintln(c.out, "Sorry, but that isn't a valid input!")
		return nil
	}

	var results game.Results
	switch cmd.Kind {
	case CmdQuit:
		return ErrQuit
	case CmdHelp:
		fmt.Fprintln(c.out, helpText)
		return nil
	case CmdOdds:
		p, err := c.table.odds()
		if err != nil {
			fmt.Fprintf(c.out, "odds: %v\n", err)
			return nil
		}
		fmt.Fprintf(c.out, "%.2f\n", mat.Formatted(p, mat.Squeeze()))
		return nil
	case CmdSplit:
		results, err = c.table.split(cmd.X, cmd.Y, c.player)
		if err != nil {
			fmt.Fprintf(c.out, "split: %v\n", err)
			return nil
		}
	case CmdMove:
		results = c.table.move(cmd.X, cmd.Y, cmd.DX, cmd.DY, c.player)
	}

	c.log.Debug().
		Stringer("player", c.player).
		Stringer("command", cmd).
		Strs("results", results.Strings()).
		Msg("move played")
	if c.debug {
		fmt.Fprintln(c.out, results.Strings())
	}

	if results.Contains(game.SuccessOpponentsTurn) && !c.table.Finished() {
		c.player = c.player.Opponent()
	}
	return nil
}

type inputLine struct {
	text string
	err  error
}

// readLine waits for the next line of input or for ctx to end. Input is
// scanned on its own goroutine, which is left blocked on the reader when ctx
// ends first.
func (c *Controller) readLine(ctx context.Context) (string, error) {
	c.start.Do(func() {
		c.lines = make(chan inputLine)
		go c.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (c *Controller) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- inputLine{text: c.in.Text()}
	}
	err := c.in.Err()
	if err == nil {
		err = io.EOF
	}
	c.lines <- inputLine{err: err}
}

func formatCaptures(opts []game.CaptureOption) string {
	s := "["
	for i, o := range opts {
		if i > 0 {
			s += ", "
		}
		s += o.String()
	}
	return s + "]"
}
