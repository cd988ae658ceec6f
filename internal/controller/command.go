package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCommand is returned for input that does not parse as a command.
var ErrBadCommand = errors.New("bad command")

type CommandKind uint8

const (
	CmdMove CommandKind = iota + 1
	CmdSplit
	CmdOdds
	CmdHelp
	CmdQuit
)

// Command is one parsed line of player input.
type Command struct {
	Kind   CommandKind
	X, Y   int
	DX, DY int
}

func (c Command) String() string {
	switch c.Kind {
	case CmdMove:
		return fmt.Sprintf("%d %d %d %d", c.X, c.Y, c.DX, c.DY)
	case CmdSplit:
		return fmt.Sprintf("Q %d %d", c.X, c.Y)
	case CmdOdds:
		return "odds"
	case CmdHelp:
		return "help"
	case CmdQuit:
		return "quit"
	}
	return "?"
}

// ParseCommand accepts "x y dx dy", "Q x y", "odds", "help" and "quit".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrBadCommand)
	}

	switch strings.ToLower(fields[0]) {
	case "q":
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("%w: split takes two coordinates", ErrBadCommand)
		}
		n, err := parseInts(fields[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdSplit, X: n[0], Y: n[1]}, nil
	case "odds":
		return Command{Kind: CmdOdds}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	}

	if len(fields) != 4 {
		return Command{}, fmt.Errorf("%w: move takes four numbers, got %d", ErrBadCommand, len(fields))
	}
	n, err := parseInts(fields)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdMove, X: n[0], Y: n[1], DX: n[2], DY: n[3]}, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrBadCommand, f)
		}
		out[i] = v
	}
	return out, nil
}
