// Package game implements the quantum checkers rules: a classical Board with
// forced-capture tracking and a QuantumBoard holding parallel branches.
package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"quantum_checkers/internal/shared"
)

// Board is one classical checkers position. Move is its only mutator.
type Board struct {
	size     int
	cells    []Cell
	pieces   [2]int
	captures captureIndex
	finished bool
	winner   Player
	delta    *boardDelta
	log      zerolog.Logger
}

// NewBoard sets up a size x size board with population rows of pieces per
// side on the playable squares.
func NewBoard(size, population int, opts ...Option) (*Board, error) {
	if size < 1 || population < 0 || size < 2*population {
		return nil, fmt.Errorf("%w: size %d, population %d", ErrBoardTooSmall, size, population)
	}
	o := buildOptions(opts)

	b := &Board{
		size:     size,
		cells:    make([]Cell, size*size),
		captures: newCaptureIndex(),
		log:      o.log,
	}
	for y := 0; y < size; y++ {
		var owner Player
		switch {
		case y < population:
			owner = PlayerOne
		case y > size-population-1:
			owner = PlayerTwo
		default:
			continue
		}
		for x := 0; x < size; x++ {
			if (Coord{X: x, Y: y}).Playable() {
				b.put(b.index(Coord{X: x, Y: y}), shared.PieceOf(owner))
			}
		}
	}
	return b, nil
}

// Size is the length of one side of the grid.
func (b *Board) Size() int { return b.size }

// At returns the cell at (x, y); squares off the grid read as empty.
func (b *Board) At(x, y int) Cell {
	if !shared.OnBoard(x, y, b.size) {
		return Empty
	}
	return b.cells[y*b.size+x]
}

// Grid returns a copy of the board indexed [y][x].
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, b.size)
	for y := range out {
		row := make([]Cell, b.size)
		copy(row, b.cells[y*b.size:(y+1)*b.size])
		out[y] = row
	}
	return out
}

// CaptureOptions lists the forced captures currently standing, in the order
// they appeared.
func (b *Board) CaptureOptions() []CaptureOption { return b.captures.list() }

// HasCapture reports whether user must capture this turn.
func (b *Board) HasCapture(user Player) bool { return b.captures.has(user) }

func (b *Board) Finished() bool { return b.finished }

// Winner is the side that made the finishing move, or NoPlayer.
func (b *Board) Winner() Player { return b.winner }

// Pieces counts the pieces p still has on the board.
func (b *Board) Pieces(p Player) int {
	if !p.Valid() {
		return 0
	}
	return b.pieces[p.Index()]
}

// Clone returns an independent copy sharing no storage with b.
func (b *Board) Clone() *Board {
	out := &Board{
		size:     b.size,
		cells:    make([]Cell, len(b.cells)),
		pieces:   b.pieces,
		captures: b.captures.clone(),
		finished: b.finished,
		winner:   b.winner,
		log:      b.log,
	}
	copy(out.cells, b.cells)
	return out
}

func (b *Board) index(c Coord) int { return c.Y*b.size + c.X }

func (b *Board) at(c Coord) Cell { return b.cells[b.index(c)] }

// put writes a cell and keeps the piece counters in step.
func (b *Board) put(idx int, v Cell) {
	if old := b.cells[idx]; !old.Empty() {
		b.pieces[old.Owner().Index()]--
	}
	if !v.Empty() {
		b.pieces[v.Owner().Index()]++
	}
	b.cells[idx] = v
}

func (b *Board) setCell(c Coord, v Cell) {
	idx := b.index(c)
	if b.delta != nil {
		b.delta.recordSquare(b, idx)
	}
	b.put(idx, v)
}

func (b *Board) addCapture(opt CaptureOption) bool {
	e, ok := b.captures.add(opt)
	if ok && b.delta != nil {
		b.delta.recordCapture(e, true)
	}
	return ok
}

func (b *Board) dropCapture(opt CaptureOption) bool {
	e, ok := b.captures.remove(opt)
	if ok && b.delta != nil {
		b.delta.recordCapture(e, false)
	}
	return ok
}

func (b *Board) finish(user Player) {
	b.finished = true
	b.winner = user
}
