package game

// reachedBackRow reports whether a piece stands on its opponent's home row.
func (b *Board) reachedBackRow() bool {
	last := b.size - 1
	for x := 0; x < b.size; x++ {
		if b.at(Coord{X: x, Y: last}).OwnedBy(PlayerOne) {
			return true
		}
		if b.at(Coord{X: x, Y: 0}).OwnedBy(PlayerTwo) {
			return true
		}
	}
	return false
}

// victoryFound also ends the game once a side has no pieces left.
func (b *Board) victoryFound() bool {
	if b.reachedBackRow() {
		return true
	}
	return b.pieces[PlayerOne.Index()] == 0 || b.pieces[PlayerTwo.Index()] == 0
}
