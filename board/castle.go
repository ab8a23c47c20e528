package board

import "github.com/daystram/chesscore/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// castleGeometry holds the fixed squares involved in one castling direction.
type castleGeometry struct {
	kingFrom, kingTo position.Pos
	rookFrom, rookTo position.Pos
	// empty must be vacant, safe must not be attacked (king start, transit, destination).
	empty []position.Pos
	safe  []position.Pos
}

var castleGeometries = [4 + 1]castleGeometry{
	CastleDirectionWhiteRight: {
		kingFrom: position.E1, kingTo: position.G1,
		rookFrom: position.H1, rookTo: position.F1,
		empty: []position.Pos{position.F1, position.G1},
		safe:  []position.Pos{position.E1, position.F1, position.G1},
	},
	CastleDirectionWhiteLeft: {
		kingFrom: position.E1, kingTo: position.C1,
		rookFrom: position.A1, rookTo: position.D1,
		empty: []position.Pos{position.D1, position.C1, position.B1},
		safe:  []position.Pos{position.E1, position.D1, position.C1},
	},
	CastleDirectionBlackRight: {
		kingFrom: position.E8, kingTo: position.G8,
		rookFrom: position.H8, rookTo: position.F8,
		empty: []position.Pos{position.F8, position.G8},
		safe:  []position.Pos{position.E8, position.F8, position.G8},
	},
	CastleDirectionBlackLeft: {
		kingFrom: position.E8, kingTo: position.C8,
		rookFrom: position.A8, rookTo: position.D8,
		empty: []position.Pos{position.D8, position.C8, position.B8},
		safe:  []position.Pos{position.E8, position.D8, position.C8},
	},
}

// castleDirections lists the kingside then queenside direction per side.
var castleDirections = [2 + 1][2]CastleDirection{
	SideWhite: {CastleDirectionWhiteRight, CastleDirectionWhiteLeft},
	SideBlack: {CastleDirectionBlackRight, CastleDirectionBlackLeft},
}

type CastleRights uint8

var maskCastleRights = [4 + 1]CastleRights{
	CastleDirectionWhiteRight: 0b1000,
	CastleDirectionWhiteLeft:  0b0100,
	CastleDirectionBlackRight: 0b0010,
	CastleDirectionBlackLeft:  0b0001,
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	ds := castleDirections[s]
	return c&(maskCastleRights[ds[0]]|maskCastleRights[ds[1]]) != 0
}

func (c *CastleRights) revokeSide(s Side) {
	for _, d := range castleDirections[s] {
		c.Set(d, false)
	}
}

// revokeOnTouch clears the right tied to a rook home cell being moved from or
// captured on.
func (c *CastleRights) revokeOnTouch(pos position.Pos) {
	switch pos {
	case position.H1:
		c.Set(CastleDirectionWhiteRight, false)
	case position.A1:
		c.Set(CastleDirectionWhiteLeft, false)
	case position.H8:
		c.Set(CastleDirectionBlackRight, false)
	case position.A8:
		c.Set(CastleDirectionBlackLeft, false)
	}
}
