package shared

// Offset is a diagonal displacement on the board.
type Offset struct {
	DX, DY int
}

var (
	// Steps are the four single diagonal steps.
	Steps = [4]Offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	// Jumps are the four capture displacements.
	Jumps = [4]Offset{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}
)

func (o Offset) Scale(k int) Offset { return Offset{o.DX * k, o.DY * k} }

// Half returns the step towards the jumped square of a capture offset.
func (o Offset) Half() Offset { return Offset{o.DX / 2, o.DY / 2} }

func (o Offset) Neg() Offset { return Offset{-o.DX, -o.DY} }

// Length is the number of squares travelled, zero when the offset is not a
// diagonal.
func (o Offset) Length() int {
	if abs(o.DX) != abs(o.DY) {
		return 0
	}
	return abs(o.DX)
}

// Coord addresses a square by column (X) and row (Y).
type Coord struct {
	X, Y int
}

func (c Coord) Add(o Offset) Coord { return Coord{c.X + o.DX, c.Y + o.DY} }

func (c Coord) Sub(o Offset) Coord { return Coord{c.X - o.DX, c.Y - o.DY} }

// Playable reports whether the square is one of the dark squares pieces use.
func (c Coord) Playable() bool { return (c.X+c.Y)%2 == 0 }

// OnBoard reports whether (x, y) lies inside a size x size grid.
func OnBoard(x, y, size int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

func (c Coord) In(size int) bool { return OnBoard(c.X, c.Y, size) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
