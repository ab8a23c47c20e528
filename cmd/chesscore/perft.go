package main

import (
	"log"
	"time"

	"github.com/daystram/chesscore/bench"
)

func perft(depth int, fen string, parallel bool) error {
	log.Printf("============ perft(%d): parallel=%v\n", depth, parallel)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	start := time.Now()
	st, err := bench.Perft(depth, fen, parallel, true, out)
	close(out)
	<-done
	if err != nil {
		return err
	}
	log.Printf("%s (%.3fs elapsed)\n", st.String(), time.Since(start).Seconds())
	return nil
}
