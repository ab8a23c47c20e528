package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"

	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/shell"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	color   = flag.Bool("color", true, "draw the board with colors in the shell")
	debug   = flag.Bool("debug", false, "print search diagnostics in the shell")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 5, "perft depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "split perft root moves across goroutines")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 5000, "maximum random plies in step mode")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")

	searchRun   = flag.Bool("search", false, "run search mode")
	searchDepth = flag.Int("search.depth", 3, "search depth in search mode")
	searchSteps = flag.Int("search.steps", 50, "maximum full moves in search mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw)
	}
	if *perftRun {
		return perft(*perftDepth, fen, *perftParallel)
	}
	if *stepRun {
		return step(fen, *stepCount, *stepSeed)
	}
	if *searchRun {
		return search(fen, *searchSteps, *searchDepth)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return shell.NewInterface(os.Stdin, os.Stdout,
		shell.WithColor(*color),
		shell.WithDebug(*debug),
	).Run(ctx)
}
