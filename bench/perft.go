package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
)

// Stats holds the leaf counters of a perft run.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) String() string {
	return message.NewPrinter(language.English).
		Sprintf("nodes=%d cap=%d enp=%d cas=%d pro=%d chk=%d",
			s.Nodes, s.Captures, s.EnPassants, s.Castles, s.Promotions, s.Checks)
}

// Perft walks the legal move tree of fen to depth and reports the counters to
// out. With verbose set, the leaf count under each root move is reported too.
// The parallel runner explores every root move on its own clone of the board.
func Perft(depth int, fen string, parallel, verbose bool, out chan<- string) (Stats, error) {
	var st Stats
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return st, err
	}

	var run perftFunc = runPerft
	if parallel {
		run = runPerftParallel
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &st)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d %s rate=%dn/s (%.3fs elapsed)",
				depth, st.String(), int(float64(st.Nodes)/(elapsed.Seconds()+1e-9)), elapsed.Seconds())
	}
	return st, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan<- string, st *Stats) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan<- string, st *Stats) uint64 {
	if d == 0 {
		st.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves() {
		var child uint64
		b.Apply(mv)
		if d != 1 {
			child = runPerft(b, d-1, false, verbose, out, st)
		} else {
			child = 1
			countLeaf(b, mv, st)
		}
		b.Undo()
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan<- string, st *Stats) uint64 {
	if d <= 1 {
		var local Stats
		sum := runPerft(b, d, root, verbose, out, &local)
		addStats(st, &local)
		return sum
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves() {
		mv := mv
		bb := b.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local Stats
			bb.Apply(mv)
			child := runPerft(bb, d-1, false, false, nil, &local)
			addStats(st, &local)
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// countLeaf classifies the move that reached a leaf. b is the position after mv.
func countLeaf(b *board.Board, mv board.Move, st *Stats) {
	st.Nodes++
	if mv.IsCapture() {
		st.Captures++
	}
	if mv.IsEnPassant {
		st.EnPassants++
	}
	if mv.IsCastle != board.CastleDirectionUnknown {
		st.Castles++
	}
	if mv.IsPromote != board.PieceUnknown {
		st.Promotions++
	}
	if b.IsKingChecked(b.Turn()) {
		st.Checks++
	}
}

func addStats(dst, src *Stats) {
	atomic.AddUint64(&dst.Nodes, src.Nodes)
	atomic.AddUint64(&dst.Captures, src.Captures)
	atomic.AddUint64(&dst.EnPassants, src.EnPassants)
	atomic.AddUint64(&dst.Castles, src.Castles)
	atomic.AddUint64(&dst.Promotions, src.Promotions)
	atomic.AddUint64(&dst.Checks, src.Checks)
}
