package game

import (
	"fmt"
	"slices"

	"quantum_checkers/internal/shared"
)

// CellReader is the read-only view a CaptureOption validates against.
type CellReader interface {
	Size() int
	At(x, y int) Cell
}

// CaptureOption describes one forced jump: the piece of User at (X, Y)
// jumping by (DX, DY) over the square in between.
type CaptureOption struct {
	User   Player
	X, Y   int
	DX, DY int
}

func (c CaptureOption) Origin() Coord    { return Coord{X: c.X, Y: c.Y} }
func (c CaptureOption) Direction() Offset { return Offset{DX: c.DX, DY: c.DY} }
func (c CaptureOption) Victim() Coord    { return c.Origin().Add(c.Direction().Half()) }
func (c CaptureOption) Landing() Coord   { return c.Origin().Add(c.Direction()) }

// StillValid reports whether the jump can be played on grid right now.
func (c CaptureOption) StillValid(grid CellReader) bool {
	if c.Direction().Length() != 2 {
		return false
	}
	size := grid.Size()
	origin, victim, landing := c.Origin(), c.Victim(), c.Landing()
	if !origin.In(size) || !landing.In(size) {
		return false
	}
	if !grid.At(landing.X, landing.Y).Empty() {
		return false
	}
	killer := grid.At(origin.X, origin.Y)
	if !killer.OwnedBy(c.User) {
		return false
	}
	return grid.At(victim.X, victim.Y).Opposes(killer)
}

func (c CaptureOption) String() string {
	to := c.Landing()
	return fmt.Sprintf("<(%d,%d) -> (%d,%d)>", c.X, c.Y, to.X, to.Y)
}

func (c CaptureOption) key() captureKey {
	return captureKey{user: c.User, x: c.X, y: c.Y}
}

type captureKey struct {
	user Player
	x, y int
}

type captureEntry struct {
	opt CaptureOption
	seq uint64
}

// captureIndex holds the forced captures of one board keyed by owner and
// origin. seq preserves discovery order for listing.
type captureIndex struct {
	byOrigin map[captureKey][]captureEntry
	owned    [2]int
	nextSeq  uint64
}

func newCaptureIndex() captureIndex {
	return captureIndex{byOrigin: make(map[captureKey][]captureEntry)}
}

func (ix *captureIndex) len() int { return ix.owned[0] + ix.owned[1] }

// has reports whether user currently owes a capture.
func (ix *captureIndex) has(user Player) bool {
	if !user.Valid() {
		return false
	}
	return ix.owned[user.Index()] > 0
}

func (ix *captureIndex) contains(opt CaptureOption) bool {
	for _, e := range ix.byOrigin[opt.key()] {
		if e.opt == opt {
			return true
		}
	}
	return false
}

func (ix *captureIndex) insert(e captureEntry) {
	key := e.opt.key()
	ix.byOrigin[key] = append(ix.byOrigin[key], e)
	ix.owned[e.opt.User.Index()]++
}

func (ix *captureIndex) add(opt CaptureOption) (captureEntry, bool) {
	if !opt.User.Valid() || ix.contains(opt) {
		return captureEntry{}, false
	}
	e := captureEntry{opt: opt, seq: ix.nextSeq}
	ix.nextSeq++
	ix.insert(e)
	return e, true
}

func (ix *captureIndex) remove(opt CaptureOption) (captureEntry, bool) {
	key := opt.key()
	entries := ix.byOrigin[key]
	for i, e := range entries {
		if e.opt != opt {
			continue
		}
		entries = slices.Delete(entries, i, i+1)
		if len(entries) == 0 {
			delete(ix.byOrigin, key)
		} else {
			ix.byOrigin[key] = entries
		}
		ix.owned[opt.User.Index()]--
		return e, true
	}
	return captureEntry{}, false
}

// at returns the options of both players leaving from c.
func (ix *captureIndex) at(c Coord) []CaptureOption {
	var out []CaptureOption
	for _, p := range shared.Players {
		for _, e := range ix.byOrigin[captureKey{user: p, x: c.X, y: c.Y}] {
			out = append(out, e.opt)
		}
	}
	return out
}

// touching returns every tracked option whose origin, victim or landing
// square is c.
func (ix *captureIndex) touching(c Coord) []CaptureOption {
	out := ix.at(c)
	for _, s := range shared.Steps {
		for _, opt := range ix.at(c.Sub(s)) {
			if opt.Direction() == s.Scale(2) {
				out = append(out, opt)
			}
		}
	}
	for _, j := range shared.Jumps {
		for _, opt := range ix.at(c.Sub(j)) {
			if opt.Direction() == j {
				out = append(out, opt)
			}
		}
	}
	return out
}

func (ix *captureIndex) list() []CaptureOption {
	entries := make([]captureEntry, 0, ix.len())
	for _, es := range ix.byOrigin {
		entries = append(entries, es...)
	}
	slices.SortFunc(entries, func(a, b captureEntry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	out := make([]CaptureOption, len(entries))
	for i, e := range entries {
		out[i] = e.opt
	}
	return out
}

func (ix *captureIndex) clone() captureIndex {
	out := captureIndex{
		byOrigin: make(map[captureKey][]captureEntry, len(ix.byOrigin)),
		owned:    ix.owned,
		nextSeq:  ix.nextSeq,
	}
	for k, es := range ix.byOrigin {
		out.byOrigin[k] = slices.Clone(es)
	}
	return out
}
