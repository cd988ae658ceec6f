package game

import "quantum_checkers/internal/shared"

// Move tries to move the piece at (x, y) by (dx, dy) for user. Every rule
// violation is reported through the result; a rejected move leaves the board
// untouched.
func (b *Board) Move(x, y, dx, dy int, user Player) MoveResult {
	if b.finished {
		return Finish
	}

	from := Coord{X: x, Y: y}
	dir := Offset{DX: dx, DY: dy}
	to := from.Add(dir)
	if !to.In(b.size) || !from.In(b.size) {
		return OutOfBounds
	}

	piece := b.at(from)
	if !piece.OwnedBy(user) {
		return NoPieceFound
	}

	dist := dir.Length()
	if dist == 0 || dist > 2 {
		return InvalidDestination
	}
	if !b.at(to).Empty() {
		return PathBlocked
	}

	if b.captures.has(user) {
		forced := CaptureOption{User: user, X: x, Y: y, DX: dx, DY: dy}
		if !b.captures.contains(forced) {
			return CaptureIgnored
		}
	}

	if dist == 1 {
		return b.step(from, dir, user)
	}
	return b.jump(from, dir, user)
}

func (b *Board) step(from Coord, dir Offset, user Player) MoveResult {
	if walksBackwards(user, dir) {
		return InvalidDestination
	}

	to := from.Add(dir)
	b.setCell(to, b.at(from))
	b.setCell(from, Empty)

	b.revalidateCaptures(from, to)
	b.probeLandingsInto(from)
	b.probeJumpsOver(to)
	b.probeJumpsFrom(to)

	if b.reachedBackRow() {
		b.finish(user)
		return Finish
	}
	return SuccessOpponentsTurn
}

func (b *Board) jump(from Coord, dir Offset, user Player) MoveResult {
	piece := b.at(from)
	victimSq := from.Add(dir.Half())
	if b.at(victimSq).Empty() {
		return NoVictimFound
	}

	consumed := CaptureOption{User: user, X: from.X, Y: from.Y, DX: dir.DX, DY: dir.DY}
	if !b.dropCapture(consumed) {
		b.log.Warn().
			Stringer("capture", consumed).
			Msg("failed attempt to remove a capture option that wasn't present")
	}

	to := from.Add(dir)
	b.setCell(from, Empty)
	b.setCell(victimSq, Empty)
	b.setCell(to, piece)

	b.revalidateCaptures(from, victimSq, to)
	b.probeLandingsInto(from)
	b.probeLandingsInto(victimSq)
	b.probeJumpsOver(to)
	again := b.probeJumpsFrom(to)

	if b.victoryFound() {
		b.finish(user)
		return Finish
	}
	if again {
		return SuccessSameTurn
	}
	return SuccessOpponentsTurn
}

// QuantumMove reports whether the piece at (x, y) could step onto both
// forward diagonals, each tried on its own. The board is left unchanged.
func (b *Board) QuantumMove(x, y int, user Player) bool {
	if !shared.OnBoard(x, y, b.size) {
		return false
	}
	fwd := user.Forward()
	if b.trial(x, y, -1, fwd, user) != SuccessOpponentsTurn {
		return false
	}
	return b.trial(x, y, 1, fwd, user) == SuccessOpponentsTurn
}

// trial plays a move and rolls it back.
func (b *Board) trial(x, y, dx, dy int, user Player) MoveResult {
	d := b.begin()
	defer b.rollback(d)
	return b.Move(x, y, dx, dy, user)
}

func walksBackwards(user Player, dir Offset) bool {
	return user.Forward()*dir.DY < 0
}

// revalidateCaptures drops every tracked option that used one of the changed
// squares and no longer holds. Options away from them keep their validity.
func (b *Board) revalidateCaptures(changed ...Coord) {
	for _, c := range changed {
		for _, opt := range b.captures.touching(c) {
			if !opt.StillValid(b) {
				b.dropCapture(opt)
			}
		}
	}
}

// probeLandingsInto looks for jumps that land on the emptied square c.
func (b *Board) probeLandingsInto(c Coord) {
	for _, j := range shared.Jumps {
		if killer := c.Sub(j); killer.In(b.size) {
			b.track(killer, j)
		}
	}
}

// probeJumpsOver looks for pieces that can now jump the piece standing on c.
func (b *Board) probeJumpsOver(c Coord) {
	for _, s := range shared.Steps {
		if killer := c.Sub(s); killer.In(b.size) {
			b.track(killer, s.Scale(2))
		}
	}
}

// probeJumpsFrom looks for fresh jumps of the piece on c and reports whether
// any new one was found.
func (b *Board) probeJumpsFrom(c Coord) bool {
	found := false
	for _, j := range shared.Jumps {
		if b.track(c, j) {
			found = true
		}
	}
	return found
}

func (b *Board) track(origin Coord, dir Offset) bool {
	opt := CaptureOption{
		User: b.at(origin).Owner(),
		X:    origin.X,
		Y:    origin.Y,
		DX:   dir.DX,
		DY:   dir.DY,
	}
	if !opt.StillValid(b) {
		return false
	}
	return b.addCapture(opt)
}
