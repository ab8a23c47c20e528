package board

import "github.com/daystram/chesscore/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// forward returns the cell offset of a single pawn step for the side.
func (s Side) forward() position.Pos {
	if s == SideWhite {
		return Width
	}
	return -Width
}
