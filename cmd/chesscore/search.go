package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/engine"
)

// search plays the engine as the side to move against a random mover.
func search(fen string, steps, depth int) error {
	rng := rand.New(rand.NewSource(time.Now().Unix()))
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	e := engine.NewEngine(&engine.EngineConfig{
		Debug: true,
	})
	fmt.Println(b.Draw())
	fmt.Println(b.FEN())
	fmt.Println(b.DebugString())
	start := b.Clone()

	playingSide := b.Turn()
	getMove := func(b *board.Board) (board.Move, bool) {
		if b.Turn() == playingSide {
			res, ok := e.FindBestMove(b, uint8(depth))
			return res.Move, ok
		}
		mvs := b.GenerateMoves()
		if len(mvs) == 0 {
			return board.Move{}, false
		}
		return mvs[rng.Intn(len(mvs))], true
	}

	for step := 1; step <= steps*2; step++ {
		if step%2 == 1 {
			fmt.Printf("\n=============== Move %d\n", b.FullMoveClock())
		}
		mv, ok := getMove(b)
		if !ok {
			break
		}
		b.Apply(mv)

		fmt.Printf("\n>>> %s: %s\n", mv.IsTurn, mv)
		fmt.Println(b.FEN())
		fmt.Println(b.Draw())
		if !b.State().IsRunning() {
			break
		}
	}
	log.Println("=============== game ended:", b.State())
	fmt.Println(b.FEN())
	fmt.Println(engine.DumpLine(start, b.History()))

	return nil
}
