package shared

import "fmt"

// Player is the sign of a side. PlayerOne starts on the low rows and walks
// towards increasing y, PlayerTwo starts on the high rows and walks back.
type Player int8

const (
	NoPlayer  Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = -1
)

// Players lists both sides in turn order.
var Players = [2]Player{PlayerOne, PlayerTwo}

func (p Player) Opponent() Player { return -p }

// Forward is the y direction this side is allowed to walk in.
func (p Player) Forward() int { return int(p) }

// Index maps PlayerOne to 0 and PlayerTwo to 1.
func (p Player) Index() int {
	if p == PlayerTwo {
		return 1
	}
	return 0
}

func (p Player) Valid() bool { return p == PlayerOne || p == PlayerTwo }

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player 1"
	case PlayerTwo:
		return "player 2"
	default:
		return fmt.Sprintf("player(%d)", int8(p))
	}
}

// Cell is the content of one square: 0 for empty, otherwise the owner's sign.
type Cell int8

const Empty Cell = 0

// PieceOf returns the cell value holding a piece of p.
func PieceOf(p Player) Cell { return Cell(p) }

func (c Cell) Empty() bool { return c == Empty }

// Owner returns the side holding this cell, NoPlayer when empty.
func (c Cell) Owner() Player { return Player(c) }

// OwnedBy reports whether the cell holds a piece of p.
func (c Cell) OwnedBy(p Player) bool { return int(c)*int(p) > 0 }

// Opposes reports whether c and other hold pieces of different sides.
func (c Cell) Opposes(other Cell) bool { return int(c)*int(other) < 0 }

func (c Cell) String() string { return fmt.Sprintf("%d", int8(c)) }
