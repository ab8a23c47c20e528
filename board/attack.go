package board

import "github.com/daystram/chesscore/position"

// IsSquareAttacked reports whether any piece of side by attacks pos. It walks
// the attack geometry outward from pos instead of generating moves, so it never
// recurses into castling generation.
func (b *Board) IsSquareAttacked(pos position.Pos, by Side) bool {
	// a pawn of side by attacks pos from one rank behind, relative to by
	pawnOffsets := [2]position.Pos{-7, -9}
	if by == SideBlack {
		pawnOffsets = [2]position.Pos{7, 9}
	}
	for _, off := range pawnOffsets {
		if from, ok := step(pos, off, 1); ok && b.cells[from].Is(by, PiecePawn) {
			return true
		}
	}

	for _, off := range offsetsKnight {
		if from, ok := step(pos, off, 2); ok && b.cells[from].Is(by, PieceKnight) {
			return true
		}
	}

	for _, off := range offsetsKing {
		if from, ok := step(pos, off, 1); ok && b.cells[from].Is(by, PieceKing) {
			return true
		}
	}

	if b.isRayAttacked(pos, by, offsetsDiagonal, PieceBishop) {
		return true
	}
	return b.isRayAttacked(pos, by, offsetsLateral, PieceRook)
}

// isRayAttacked walks each ray until the first occupied cell and counts it
// only when it holds a slider of side by moving along that ray.
func (b *Board) isRayAttacked(pos position.Pos, by Side, offsets []position.Pos, slider Piece) bool {
	for _, off := range offsets {
		cur := pos
		for {
			next, ok := step(cur, off, 1)
			if !ok {
				break
			}
			cur = next
			c := b.cells[cur]
			if c.IsEmpty() {
				continue
			}
			if c.Side == by && (c.Piece == slider || c.Piece == PieceQueen) {
				return true
			}
			break
		}
	}
	return false
}

// IsKingChecked reports whether the side's King is attacked by the opponent.
func (b *Board) IsKingChecked(s Side) bool {
	return b.IsSquareAttacked(b.KingPos(s), s.Opposite())
}
