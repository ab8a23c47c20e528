package board

import "github.com/daystram/chesscore/position"

const zobristSeed = 1070372

var (
	zobristConstantPiece         [2 + 1][6 + 1][TotalCells]uint64
	zobristConstantSideBlack     uint64
	zobristConstantCastle        [4 + 1]uint64
	zobristConstantEnPassantFile [Width]uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	r := NewPseudoRand(zobristSeed)
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, p := range []Piece{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen, PieceKing} {
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				zobristConstantPiece[s][p][pos] = r.Uint64()
			}
		}
	}
	zobristConstantSideBlack = r.Uint64()
	for _, d := range []CastleDirection{
		CastleDirectionWhiteRight,
		CastleDirectionWhiteLeft,
		CastleDirectionBlackRight,
		CastleDirectionBlackLeft,
	} {
		zobristConstantCastle[d] = r.Uint64()
	}
	for x := position.Pos(0); x < Width; x++ {
		zobristConstantEnPassantFile[x] = r.Uint64()
	}
}

func hashCastleRights(c CastleRights) uint64 {
	var h uint64
	for d := CastleDirectionWhiteRight; d <= CastleDirectionBlackLeft; d++ {
		if c.IsAllowed(d) {
			h ^= zobristConstantCastle[d]
		}
	}
	return h
}

func hashEnPassant(pos position.Pos) uint64 {
	if pos == position.NoPos {
		return 0
	}
	return zobristConstantEnPassantFile[pos.X()]
}

// Hash returns the incrementally maintained Zobrist hash of the position.
func (b *Board) Hash() uint64 {
	return b.hash
}

// ComputeHash recomputes the Zobrist hash from scratch.
func (b *Board) ComputeHash() uint64 {
	var h uint64
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if c := b.cells[pos]; !c.IsEmpty() {
			h ^= zobristConstantPiece[c.Side][c.Piece][pos]
		}
	}
	if b.turn == SideBlack {
		h ^= zobristConstantSideBlack
	}
	h ^= hashCastleRights(b.castleRights)
	h ^= hashEnPassant(b.enPassant)
	return h
}
