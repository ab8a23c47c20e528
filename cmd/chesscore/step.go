package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/chesscore/board"
)

// step plays random legal moves and checks the incremental hash against a full
// recomputation after every apply and undo.
func step(fen string, count int, seed int64) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
		timesState         []time.Duration
	)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))
stepLoop:
	for step := 0; step < count; step++ {
		t1 := time.Now()
		mvs := b.GenerateMoves()
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: state=%s", b.State())
		}
		mv := mvs[rng.Intn(len(mvs))]

		before := b.FEN()
		t1 = time.Now()
		b.Apply(mv)
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))
		if b.Hash() != b.ComputeHash() {
			return fmt.Errorf("hash mismatch after %s: fen=%s", mv.UCI(), b.FEN())
		}
		b.Undo()
		if b.FEN() != before || b.Hash() != b.ComputeHash() {
			return fmt.Errorf("undo mismatch after %s: got=%s want=%s", mv.UCI(), b.FEN(), before)
		}
		b.Apply(mv)

		t1 = time.Now()
		st := b.State()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", step/2+1, mv.IsTurn, mv)
		fmt.Println(b.FEN())
		if !st.IsRunning() {
			break stepLoop
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())
	fmt.Println(b.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}
