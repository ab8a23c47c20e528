package board

import (
	"github.com/daystram/chesscore/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	offsetsKnight   = []position.Pos{17, 15, 10, 6, -6, -10, -15, -17}
	offsetsKing     = []position.Pos{9, 8, 7, 1, -1, -7, -8, -9}
	offsetsDiagonal = []position.Pos{9, 7, -7, -9}
	offsetsLateral  = []position.Pos{8, 1, -1, -8}

	// startRank and promoteRank are indexed by the side owning the pawn.
	startRank   = [2 + 1]position.Pos{SideWhite: position.Rank2, SideBlack: position.Rank7}
	promoteRank = [2 + 1]position.Pos{SideWhite: position.Rank8, SideBlack: position.Rank1}

	centerCells = [4]position.Pos{position.D4, position.E4, position.D5, position.E5}
)

// IsCenter reports whether pos is one of the four central cells.
func IsCenter(pos position.Pos) bool {
	for _, c := range centerCells {
		if c == pos {
			return true
		}
	}
	return false
}

// step returns from+offset, or false when the step leaves the board or wraps
// around a file edge. Every offset used here moves at most two files, so a
// larger file distance can only come from wrapping.
func step(from, offset position.Pos, maxFileDelta position.Pos) (position.Pos, bool) {
	to := from + offset
	if !to.IsValid() {
		return position.NoPos, false
	}
	if abs(to.X()-from.X()) > maxFileDelta {
		return position.NoPos, false
	}
	return to, true
}

func abs(x position.Pos) position.Pos {
	if x < 0 {
		return -x
	}
	return x
}
