package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"quantum_checkers/internal/shared"
)

// QuantumBoard holds every branch of a superposed game. All branches share
// dimensions and are equally likely.
type QuantumBoard struct {
	size      int
	branches  []*Board
	aggregate [][]int
	captures  []CaptureOption
	finished  bool
	rand      Rand
	log       zerolog.Logger
}

// NewQuantumBoard starts a game with a single classical branch.
func NewQuantumBoard(size, population int, opts ...Option) (*QuantumBoard, error) {
	root, err := NewBoard(size, population, opts...)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	q := &QuantumBoard{
		size:     size,
		branches: []*Board{root},
		rand:     o.rand,
		log:      o.log,
	}
	q.refresh()
	return q, nil
}

func (q *QuantumBoard) Size() int { return q.size }

// Finished is true once every branch has finished.
func (q *QuantumBoard) Finished() bool { return q.finished }

// CaptureOptions is the union of the forced captures of all branches.
func (q *QuantumBoard) CaptureOptions() []CaptureOption {
	return append([]CaptureOption(nil), q.captures...)
}

// Aggregate returns a copy of the averaged display grid.
func (q *QuantumBoard) Aggregate() [][]int {
	out := make([][]int, len(q.aggregate))
	for y, row := range q.aggregate {
		out[y] = append([]int(nil), row...)
	}
	return out
}

func (q *QuantumBoard) BranchCount() int { return len(q.branches) }

// BranchGrid returns a copy of branch i's grid.
func (q *QuantumBoard) BranchGrid(i int) [][]Cell { return q.branches[i].Grid() }

// QuantumSplit moves the piece at (x, y) onto both forward diagonals at once,
// doubling the branches.
func (q *QuantumBoard) QuantumSplit(x, y int, user Player) Results {
	if q.finished {
		return repeatResult(Finish, len(q.branches))
	}
	if len(q.captures) > 0 {
		return repeatResult(CaptureIgnored, len(q.branches))
	}

	ready := false
	for _, b := range q.branches {
		if b.QuantumMove(x, y, user) {
			ready = true
			break
		}
	}
	if !ready {
		return Results{QuantumNotReady}
	}

	// The left half is played in place and rolled back if the split is
	// abandoned; the right half works on clones.
	fwd := user.Forward()
	n := len(q.branches)
	right := make([]*Board, n)
	deltas := make([]*boardDelta, n)
	outcomes := make(Results, 0, 2*n)
	for i, b := range q.branches {
		right[i] = b.Clone()
		deltas[i] = b.begin()
		outcomes = append(outcomes, b.Move(x, y, -1, fwd, user))
	}
	for _, b := range right {
		outcomes = append(outcomes, b.Move(x, y, 1, fwd, user))
	}

	if !outcomes.Contains(SuccessOpponentsTurn) {
		for i, b := range q.branches {
			b.rollback(deltas[i])
		}
		q.log.Debug().
			Int("x", x).Int("y", y).
			Strs("outcomes", outcomes.Strings()).
			Msg("quantum split abandoned")
		q.refresh()
		return outcomes
	}

	for i, b := range q.branches {
		b.commit(deltas[i])
	}
	q.branches = append(q.branches, right...)
	q.log.Debug().
		Int("x", x).Int("y", y).
		Int("branches", len(q.branches)).
		Msg("quantum split accepted")

	q.resolveCollision(x-1, y+fwd)
	q.resolveCollision(x+1, y+fwd)
	q.refresh()
	return Results{SuccessOpponentsTurn}
}

// Move plays the same move in every branch and returns each branch's outcome.
func (q *QuantumBoard) Move(x, y, dx, dy int, user Player) Results {
	n := len(q.branches)
	if !shared.OnBoard(x+dx, y+dy, q.size) {
		return repeatResult(OutOfBounds, n)
	}
	if q.owesCapture(user) && !q.isCapture(CaptureOption{User: user, X: x, Y: y, DX: dx, DY: dy}) {
		return repeatResult(CaptureIgnored, n)
	}

	out := make(Results, n)
	for i, b := range q.branches {
		out[i] = b.Move(x, y, dx, dy, user)
	}

	q.resolveCollision(x+dx, y+dy)
	q.refresh()
	return out
}

func (q *QuantumBoard) owesCapture(user Player) bool {
	for _, opt := range q.captures {
		if opt.User == user {
			return true
		}
	}
	return false
}

func (q *QuantumBoard) isCapture(opt CaptureOption) bool {
	for _, c := range q.captures {
		if c == opt {
			return true
		}
	}
	return false
}

// refresh recomputes the aggregate grid, the finished flag and the capture
// union from the current branches.
func (q *QuantumBoard) refresh() {
	q.aggregate = q.buildAggregate()
	q.finished = true
	for _, b := range q.branches {
		if !b.Finished() {
			q.finished = false
			break
		}
	}
	q.captures = q.captures[:0]
	for _, b := range q.branches {
		for _, opt := range b.CaptureOptions() {
			if !q.isCapture(opt) {
				q.captures = append(q.captures, opt)
			}
		}
	}
}

func (q *QuantumBoard) buildAggregate() [][]int {
	n := len(q.branches)
	grid := make([][]int, q.size)
	for y := range grid {
		grid[y] = make([]int, q.size)
		for x := range grid[y] {
			sum := 0
			for _, b := range q.branches {
				v := int(b.At(x, y))
				if sum*v < 0 {
					panic(fmt.Errorf("%w at (%d,%d)", ErrUnresolvedCollision, x, y))
				}
				sum += 100 * v
			}
			grid[y][x] = sum / n
		}
	}
	return grid
}
