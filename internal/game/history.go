package game

// boardDelta captures the minimal state needed to roll back one trial move.
type boardDelta struct {
	squares  []squareDelta
	captures []captureDelta
	nextSeq  uint64
	finished bool
	winner   Player
}

type squareDelta struct {
	index int
	cell  Cell
}

type captureDelta struct {
	entry captureEntry
	added bool
}

const historySquareCap = 4

func newBoardDelta(b *Board) *boardDelta {
	return &boardDelta{
		squares:  make([]squareDelta, 0, historySquareCap),
		nextSeq:  b.captures.nextSeq,
		finished: b.finished,
		winner:   b.winner,
	}
}

func (d *boardDelta) recordSquare(b *Board, idx int) {
	for _, sq := range d.squares {
		if sq.index == idx {
			return
		}
	}
	d.squares = append(d.squares, squareDelta{index: idx, cell: b.cells[idx]})
}

func (d *boardDelta) recordCapture(e captureEntry, added bool) {
	d.captures = append(d.captures, captureDelta{entry: e, added: added})
}

// begin starts recording every change to b until rollback or commit.
func (b *Board) begin() *boardDelta {
	if b.delta != nil {
		panic("game: nested board delta")
	}
	b.delta = newBoardDelta(b)
	return b.delta
}

// commit keeps the changes made since begin.
func (b *Board) commit(d *boardDelta) {
	if b.delta == d {
		b.delta = nil
	}
}

// rollback restores b to the state it had when d was started.
func (b *Board) rollback(d *boardDelta) {
	if d == nil || b.delta != d {
		return
	}
	b.delta = nil
	for i := len(d.captures) - 1; i >= 0; i-- {
		c := d.captures[i]
		if c.added {
			b.captures.remove(c.entry.opt)
		} else {
			b.captures.insert(c.entry)
		}
	}
	b.captures.nextSeq = d.nextSeq
	for i := len(d.squares) - 1; i >= 0; i-- {
		sq := d.squares[i]
		b.put(sq.index, sq.cell)
	}
	b.finished = d.finished
	b.winner = d.winner
}
