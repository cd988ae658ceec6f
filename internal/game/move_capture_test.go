package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// gridStub is a square grid indexed [y][x].
type gridStub [][]Cell

func (g gridStub) Size() int { return len(g) }

func (g gridStub) At(x, y int) Cell { return g[y][x] }

func TestCaptureOptionStillValid(t *testing.T) {
	grid := gridStub{
		{1, 0, 0, 0, 0},
		{0, -1, 0, 1, 0},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 1, 0},
		{0, 0, 0, 0, -1},
	}
	testCases := []struct {
		name string
		opt  CaptureOption
		want bool
	}{
		{"valid jump", CaptureOption{User: PlayerOne, X: 0, Y: 0, DX: 2, DY: 2}, true},
		{"wrong owner", CaptureOption{User: PlayerTwo, X: 0, Y: 0, DX: 2, DY: 2}, false},
		{"player two jumps", CaptureOption{User: PlayerTwo, X: 4, Y: 4, DX: -2, DY: -2}, true},
		{"empty square in between", CaptureOption{User: PlayerTwo, X: 1, Y: 1, DX: 2, DY: 2}, false},
		{"own piece in between", CaptureOption{User: PlayerOne, X: 4, Y: 2, DX: -2, DY: -2}, false},
		{"landing off board", CaptureOption{User: PlayerOne, X: 3, Y: 1, DX: 2, DY: -2}, false},
		{"origin off board", CaptureOption{User: PlayerOne, X: -1, Y: -1, DX: 2, DY: 2}, false},
		{"not a jump", CaptureOption{User: PlayerOne, X: 0, Y: 0, DX: 1, DY: 1}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.opt.StillValid(grid))
		})
	}

	grid[2][2] = 1
	assert.False(t, CaptureOption{User: PlayerOne, X: 0, Y: 0, DX: 2, DY: 2}.StillValid(grid), "landing occupied")
}

func TestCaptureOptionGeometry(t *testing.T) {
	opt := CaptureOption{User: PlayerTwo, X: 4, Y: 6, DX: -2, DY: -2}
	assert.Equal(t, Coord{X: 3, Y: 5}, opt.Victim())
	assert.Equal(t, Coord{X: 2, Y: 4}, opt.Landing())
	assert.Equal(t, "<(4,6) -> (2,4)>", opt.String())
}

func TestCaptureIndexOrderAndRemoval(t *testing.T) {
	ix := newCaptureIndex()
	a := CaptureOption{User: PlayerOne, X: 2, Y: 2, DX: 2, DY: 2}
	b := CaptureOption{User: PlayerTwo, X: 4, Y: 4, DX: -2, DY: -2}
	c := CaptureOption{User: PlayerOne, X: 2, Y: 2, DX: -2, DY: 2}

	for _, opt := range []CaptureOption{a, b, c} {
		_, ok := ix.add(opt)
		assert.True(t, ok)
	}
	_, dup := ix.add(a)
	assert.False(t, dup)
	_, bad := ix.add(CaptureOption{X: 1, Y: 1, DX: 2, DY: 2})
	assert.False(t, bad)

	assert.Equal(t, []CaptureOption{a, b, c}, ix.list())
	assert.True(t, ix.has(PlayerOne))
	assert.True(t, ix.has(PlayerTwo))

	_, ok := ix.remove(b)
	assert.True(t, ok)
	assert.False(t, ix.has(PlayerTwo))
	assert.Equal(t, []CaptureOption{a, c}, ix.list())

	// With b gone only a still crosses (3,3).
	assert.ElementsMatch(t, []CaptureOption{a}, ix.touching(Coord{X: 3, Y: 3}))
	assert.ElementsMatch(t, []CaptureOption{a, c}, ix.touching(Coord{X: 2, Y: 2}))
	assert.ElementsMatch(t, []CaptureOption{c}, ix.touching(Coord{X: 0, Y: 4}))

	cp := ix.clone()
	cp.remove(a)
	assert.Equal(t, []CaptureOption{a, c}, ix.list())
	assert.Equal(t, []CaptureOption{c}, cp.list())
}
