package game

import (
	"strconv"
	"strings"
)

// String lays the board out row by row; unplayable squares show as "-".
func (b *Board) String() string {
	return renderGrid(b.size, func(x, y int) string {
		return strconv.Itoa(int(b.At(x, y)))
	})
}

// String lays out the aggregate grid the same way as Board.String.
func (q *QuantumBoard) String() string {
	return renderGrid(q.size, func(x, y int) string {
		return strconv.Itoa(q.aggregate[y][x])
	})
}

func renderGrid(size int, cell func(x, y int) string) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (Coord{X: x, Y: y}).Playable() {
				sb.WriteString(cell(x, y))
			} else {
				sb.WriteByte('-')
			}
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
