package engine

import (
	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/position"
)

const (
	// ScoreCheckmate is the magnitude of a mate score, large enough to dominate
	// any material swing. Mates found deeper in the tree score closer to zero.
	ScoreCheckmate int32 = 100_000
	ScoreDraw      int32 = 0

	scoreCenterBonus      int32 = 10
	scorePawnAdvanceBonus int32 = 5

	endgameMaxOfficers         = 4
	endgameMaxOfficersNoQueens = 6
)

var (
	// PST table taken from https://www.chessprogramming.org/Simplified_Evaluation_Function
	// Rows are laid out from rank 8 down to rank 1, as seen by White.
	scorePiecePosition = [6 + 1][64]int32{
		board.PiecePawn: {
			0, 0, 0, 0, 0, 0, 0, 0,
			50, 50, 50, 50, 50, 50, 50, 50,
			10, 10, 20, 30, 30, 20, 10, 10,
			5, 5, 10, 25, 25, 10, 5, 5,
			0, 0, 0, 20, 20, 0, 0, 0,
			5, -5, -10, 0, 0, -10, -5, 5,
			5, 10, 10, -20, -20, 10, 10, 5,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.PieceKnight: {
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		board.PieceBishop: {
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
		board.PieceRook: {
			0, 0, 0, 0, 0, 0, 0, 0,
			5, 10, 10, 10, 10, 10, 10, 5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			0, 0, 0, 5, 5, 0, 0, 0,
		},
		board.PieceQueen: {
			-20, -10, -10, -5, -5, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 5, 5, 5, 0, -10,
			-5, 0, 5, 5, 5, 5, 0, -5,
			0, 0, 5, 5, 5, 5, 0, -5,
			-10, 5, 5, 5, 5, 5, 0, -10,
			-10, 0, 5, 0, 0, 0, 0, -10,
			-20, -10, -10, -5, -5, -10, -10, -20,
		},
		board.PieceKing: {
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-20, -30, -30, -40, -40, -30, -30, -20,
			-10, -20, -20, -20, -20, -20, -20, -10,
			20, 20, 0, 0, 0, 0, 20, 20,
			20, 30, 10, 0, 0, 10, 30, 20,
		},
	}
	scoreKingPositionEndgame = [64]int32{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	}
)

// pstIndex maps a cell to its index in the tables above for the given side.
func pstIndex(s board.Side, pos position.Pos) int {
	if s == board.SideWhite {
		return int((board.Height-1-pos.Y())*board.Width + pos.X())
	}
	return int(pos)
}

// IsEndgame reports whether few enough officers (non-King, non-Pawn pieces)
// remain: at most 4, or at most 6 with both Queens gone.
func IsEndgame(b *board.Board) bool {
	var officers, queens int
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		switch b.GetCell(pos).Piece {
		case board.PieceKnight, board.PieceBishop, board.PieceRook:
			officers++
		case board.PieceQueen:
			officers++
			queens++
		}
	}
	return officers <= endgameMaxOfficers || (queens == 0 && officers <= endgameMaxOfficersNoQueens)
}

// Evaluate returns the static score of the position. The score is positive
// when White is better, regardless of the side to move.
func Evaluate(b *board.Board) int32 {
	endgame := IsEndgame(b)

	var score int32
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		c := b.GetCell(pos)
		if c.IsEmpty() {
			continue
		}
		v := evaluatePiece(c, pos, endgame)
		if c.Side == board.SideWhite {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

func evaluatePiece(c board.Cell, pos position.Pos, endgame bool) int32 {
	idx := pstIndex(c.Side, pos)
	if c.Piece == board.PieceKing {
		if endgame {
			return scoreKingPositionEndgame[idx]
		}
		return scorePiecePosition[board.PieceKing][idx]
	}

	v := c.Piece.Value() + scorePiecePosition[c.Piece][idx]
	if board.IsCenter(pos) {
		v += scoreCenterBonus
	}
	if c.Piece == board.PiecePawn {
		advanced := pos.Y() - position.Rank2
		if c.Side == board.SideBlack {
			advanced = position.Rank7 - pos.Y()
		}
		v += int32(advanced) * scorePawnAdvanceBonus
	}
	return v
}

// EvaluateTerminal scores the position as a leaf of the search tree: mate and
// draw outcomes first, the static evaluation otherwise.
func EvaluateTerminal(b *board.Board) int32 {
	return evaluateTerminal(b, 0)
}

func evaluateTerminal(b *board.Board, ply int) int32 {
	if !b.HasLegalMoves() {
		return scoreNoMoves(b, ply)
	}
	if b.IsDraw() {
		return ScoreDraw
	}
	return Evaluate(b)
}

// scoreNoMoves scores a position without legal moves: the side to move is
// mated when in check, stalemated otherwise.
func scoreNoMoves(b *board.Board, ply int) int32 {
	if !b.IsKingChecked(b.Turn()) {
		return ScoreDraw
	}
	score := ScoreCheckmate - int32(ply)
	if b.Turn() == board.SideWhite {
		return -score
	}
	return score
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int32) bool {
	return abs(score) > ScoreCheckmate-int32(MaxDepth)-1
}
