package engine

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
)

const (
	ScoreInfinite int32 = math.MaxInt32

	DefaultDepth uint8 = 3
	MaxDepth     uint8 = 5
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// DiscardLogger drops every line.
func DiscardLogger(...any) {}

type EngineConfig struct {
	Logger func(...any)
	Debug  bool
}

type Engine struct {
	logger func(...any)
	debug  bool
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	return &Engine{
		logger: cfg.Logger,
		debug:  cfg.Debug,
	}
}

// Result is the outcome of a search together with its statistics.
type Result struct {
	Move    board.Move
	Score   int32
	Depth   uint8
	Nodes   uint64
	Cutoffs uint64
	Elapsed time.Duration
}

// searcher carries the state of a single FindBestMove call. It owns a private
// copy of the board so exploration never leaks into the caller's board.
type searcher struct {
	b       *board.Board
	nodes   uint64
	cutoffs uint64
}

// FindBestMove searches the position to the given depth with minimax and
// alpha-beta pruning, White maximizing. Depth is clamped to [1, MaxDepth].
// Root moves are tried in generation order and a later move only replaces the
// best one on a strict improvement. It returns false when the side to move
// has no legal moves.
func (e *Engine) FindBestMove(b *board.Board, depth uint8) (Result, bool) {
	depth = clamp(depth, 1, MaxDepth)
	start := time.Now()
	s := &searcher{b: b.Clone()}

	mvs := s.b.GenerateMoves()
	if len(mvs) == 0 {
		return Result{}, false
	}

	maximizing := s.b.Turn() == board.SideWhite
	alpha, beta := -ScoreInfinite, ScoreInfinite
	var bestMove board.Move
	var bestScore int32
	for i, mv := range mvs {
		s.b.Apply(mv)
		score := s.minimax(depth-1, 1, alpha, beta)
		s.b.Undo()

		if i == 0 || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestMove, bestScore = mv, score
		}
		if maximizing {
			alpha = max(alpha, bestScore)
		} else {
			beta = min(beta, bestScore)
		}
	}

	res := Result{
		Move:    bestMove,
		Score:   bestScore,
		Depth:   depth,
		Nodes:   s.nodes,
		Cutoffs: s.cutoffs,
		Elapsed: time.Since(start),
	}
	e.report(b, res)
	return res, true
}

func (s *searcher) minimax(depth uint8, ply int, alpha, beta int32) int32 {
	s.nodes++

	// check if leaf reached
	if depth == 0 {
		return evaluateTerminal(s.b, ply)
	}

	mvs := s.b.GenerateMoves()
	if len(mvs) == 0 {
		return scoreNoMoves(s.b, ply)
	}
	if s.b.IsDraw() {
		return ScoreDraw
	}

	sortMoves(mvs)

	if s.b.Turn() == board.SideWhite {
		best := -ScoreInfinite
		for _, mv := range mvs {
			s.b.Apply(mv)
			score := s.minimax(depth-1, ply+1, alpha, beta)
			s.b.Undo()

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				s.cutoffs++
				break
			}
		}
		return best
	}

	best := ScoreInfinite
	for _, mv := range mvs {
		s.b.Apply(mv)
		score := s.minimax(depth-1, ply+1, alpha, beta)
		s.b.Undo()

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			s.cutoffs++
			break
		}
	}
	return best
}

func (e *Engine) report(b *board.Board, res Result) {
	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d [%s] nodes:%d cutoffs:%d (%.0fn/s) t:%s\n    %s",
				res.Depth, FormatScore(res.Score), res.Nodes, res.Cutoffs,
				float64(res.Nodes)/((res.Elapsed + 1).Seconds()), res.Elapsed, DumpLine(b, []board.Move{res.Move})))
		return
	}
	e.logger(fmt.Sprintf("info depth %d score %s time %d nodes %d pv %s",
		res.Depth, formatScoreUCI(res.Score), res.Elapsed.Milliseconds(), res.Nodes, res.Move.UCI()))
}

// DumpLine renders mvs played from b in numbered move notation.
func DumpLine(b *board.Board, mvs []board.Move) string {
	if b == nil || len(mvs) == 0 {
		return ""
	}
	bb := b.Clone()
	fullMoveClock := bb.FullMoveClock()
	var out string
	if mvs[0].IsTurn == board.SideBlack {
		out += fmt.Sprintf("%d... ", fullMoveClock)
	}
	for i, mv := range mvs {
		bb.Apply(mv)
		if mv.IsTurn == board.SideWhite {
			out += fmt.Sprintf("%d. %s", fullMoveClock, mv)
		} else {
			out += mv.String()
			fullMoveClock++
		}
		switch st := bb.State(); {
		case st.IsCheckmate():
			out += "#"
		case st.IsCheck():
			out += "+"
		case st.IsDraw():
			out += "="
		}
		if i < len(mvs)-1 {
			out += " "
		}
	}
	return out
}

// FormatScore renders a White-relative score in pawns, or as a mate distance.
func FormatScore(s int32) string {
	if IsMateScore(s) {
		plies := ScoreCheckmate - abs(s)
		if s > 0 {
			return fmt.Sprintf("#+%d", (plies+1)/2)
		}
		return fmt.Sprintf("#-%d", (plies+1)/2)
	}
	if s > 0 {
		return fmt.Sprintf("+%.2f", float64(s)/100)
	}
	if s < 0 {
		return fmt.Sprintf("%.2f", float64(s)/100)
	}
	return "0"
}

func formatScoreUCI(s int32) string {
	if IsMateScore(s) {
		plies := ScoreCheckmate - abs(s)
		if s > 0 {
			return fmt.Sprintf("mate %d", (plies+1)/2)
		}
		return fmt.Sprintf("mate -%d", (plies+1)/2)
	}
	return fmt.Sprintf("cp %d", s)
}
