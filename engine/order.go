package engine

import (
	"sort"

	"github.com/daystram/chesscore/board"
)

const (
	scoreOrderPromotionFactor int32 = 10
	scoreOrderCenter          int32 = 10
	scoreOrderCastle          int32 = 50
)

// scoreMove ranks a move for search ordering: captures by MVV-LVA, then
// promotions scaled by the promoted piece, central destinations and castling.
func scoreMove(mv board.Move) int32 {
	var score int32
	if mv.IsCapture() {
		score += mv.Captured.Value()*10 - mv.Piece.Value()
	}
	if mv.IsPromote != board.PieceUnknown {
		score += mv.IsPromote.Value() * scoreOrderPromotionFactor
	}
	if board.IsCenter(mv.To) {
		score += scoreOrderCenter
	}
	if mv.IsCastle != board.CastleDirectionUnknown {
		score += scoreOrderCastle
	}
	return score
}

type scoredMoves struct {
	mvs    []board.Move
	scores []int32
}

func (s scoredMoves) Len() int           { return len(s.mvs) }
func (s scoredMoves) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s scoredMoves) Swap(i, j int) {
	s.mvs[i], s.mvs[j] = s.mvs[j], s.mvs[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

// sortMoves orders mvs by descending score. Equal scores keep generation
// order, so Queen promotions stay ahead of under-promotions.
func sortMoves(mvs []board.Move) {
	scores := make([]int32, len(mvs))
	for i, mv := range mvs {
		scores[i] = scoreMove(mv)
	}
	sort.Stable(scoredMoves{mvs: mvs, scores: scores})
}
