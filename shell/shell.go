package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/engine"
)

const (
	maxPerftDepth = 6
)

var (
	defaultOptions = options{
		debug:         false,
		depth:         engine.DefaultDepth,
		parallelPerft: true,
		color:         false,
	}

	errUnknownCommand = errors.New("unknown command")
)

type options struct {
	debug         bool
	depth         uint8
	parallelPerft bool
	color         bool
}

// Interface reads text commands line by line and writes results back. It owns
// the game board exclusively.
type Interface struct {
	board   *board.Board
	engine  *engine.Engine
	options options

	in  io.Reader
	out io.Writer
}

type Option func(*Interface)

// WithColor enables colored board rendering.
func WithColor(enabled bool) Option {
	return func(i *Interface) {
		i.options.color = enabled
	}
}

// WithDebug enables search and perft diagnostics.
func WithDebug(enabled bool) Option {
	return func(i *Interface) {
		i.options.debug = enabled
	}
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) *Interface {
	i := &Interface{
		options: defaultOptions,
		in:      in,
		out:     out,
	}
	for _, f := range opts {
		f(i)
	}
	return i
}

// Run processes commands until "quit", end of input or ctx cancellation.
// Cancellation is only observed between commands.
func (i *Interface) Run(ctx context.Context) error {
	i.reset(ctx)

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if quit := i.execute(ctx, strings.ToLower(args[0]), args[1:]); quit {
			return nil
		}
	}
	return scanner.Err()
}

func (i *Interface) execute(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "new":
		i.reset(ctx)
		i.commandDisplay(ctx)
	case "move":
		i.commandMove(ctx, args)
	case "undo":
		i.commandUndo(ctx)
	case "fen", "load", "position":
		i.commandLoad(ctx, args)
	case "export":
		i.println(i.board.FEN())
	case "ai", "go":
		i.commandAI(ctx, args)
	case "perft":
		i.commandPerft(ctx, args)
	case "moves":
		i.commandMoves(ctx)
	case "status":
		i.println(describeState(i.board.State()))
	case "eval":
		i.commandEval(ctx)
	case "display", "show", "d":
		i.commandDisplay(ctx)
	case "set", "setoption":
		i.commandSetOption(ctx, args)
	case "help":
		i.commandHelp(ctx)
	case "quit", "exit":
		return true
	default:
		i.printError(fmt.Errorf("%w: %s", errUnknownCommand, cmd))
	}
	return false
}

func (i *Interface) commandMove(ctx context.Context, args []string) {
	if len(args) != 1 {
		i.printError(board.ErrInvalidMoveText)
		return
	}
	mv, err := i.board.ResolveMove(args[0])
	if err != nil {
		i.printError(err)
		return
	}
	i.board.Apply(mv)
	i.commandDisplay(ctx)
	i.reportGameOver()
}

func (i *Interface) commandUndo(ctx context.Context) {
	if i.board.Ply() == 0 {
		i.println("ERROR: No moves to undo")
		return
	}
	i.board.Undo()
	i.commandDisplay(ctx)
}

func (i *Interface) commandLoad(ctx context.Context, args []string) {
	if len(args) == 0 || (args[0] == "fen" && len(args) == 1) {
		i.println("ERROR: FEN required")
		return
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		fen = strings.Join(args, " ")
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.printError(err)
		return
	}
	i.board = b
	i.commandDisplay(ctx)
}

func (i *Interface) commandAI(ctx context.Context, args []string) {
	depth := i.options.depth
	if len(args) > 0 {
		value, err := strconv.ParseUint(args[len(args)-1], 10, 8)
		if err != nil || value < 1 || value > uint64(engine.MaxDepth) {
			i.println(fmt.Sprintf("ERROR: AI depth must be 1-%d", engine.MaxDepth))
			return
		}
		depth = uint8(value)
	}

	res, ok := i.engine.FindBestMove(i.board, depth)
	if !ok {
		i.println("ERROR: No legal moves available")
		return
	}
	i.board.Apply(res.Move)
	i.println(fmt.Sprintf("AI move: %s (depth %d, %d nodes, %dms, score %s)",
		res.Move.UCI(), res.Depth, res.Nodes, res.Elapsed.Milliseconds(), engine.FormatScore(res.Score)))
	i.commandDisplay(ctx)
	i.reportGameOver()
}

func (i *Interface) commandPerft(_ context.Context, args []string) {
	if len(args) != 1 {
		i.println("ERROR: Perft depth required")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > maxPerftDepth {
		i.println("ERROR: Invalid perft depth")
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	start := time.Now()
	st, err := bench.Perft(depth, i.board.FEN(), i.options.parallelPerft, i.options.debug, i.debugChannel(out))
	close(out)
	<-done
	if err != nil {
		i.printError(err)
		return
	}
	i.println(fmt.Sprintf("Perft(%d): %d nodes in %dms", depth, st.Nodes, time.Since(start).Milliseconds()))
}

// debugChannel only forwards perft diagnostics when debug output is enabled.
func (i *Interface) debugChannel(out chan string) chan<- string {
	if !i.options.debug {
		return nil
	}
	return out
}

func (i *Interface) commandMoves(_ context.Context) {
	mvs := i.board.GenerateMoves()
	ucis := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		ucis = append(ucis, mv.UCI())
	}
	i.println(fmt.Sprintf("Legal moves (%d): %s", len(mvs), strings.Join(ucis, " ")))
}

func (i *Interface) commandEval(_ context.Context) {
	score := engine.EvaluateTerminal(i.board)
	i.println(fmt.Sprintf("Evaluation: %d (%s)", score, engine.FormatScore(score)))
}

func (i *Interface) commandDisplay(_ context.Context) {
	if i.options.color {
		i.println(i.board.Draw())
	} else {
		i.println(i.board.Dump())
	}
	i.println(fmt.Sprintf("%s to move", i.board.Turn()))
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	// accepts both "set <name> <value>" and "setoption name <name> value <value>"
	if len(args) == 4 && args[0] == "name" && args[2] == "value" {
		args = []string{args[1], args[3]}
	}
	if len(args) != 2 {
		i.println("ERROR: Usage: set <name> <value>")
		return
	}
	switch name, valueStr := strings.ToLower(args[0]), args[1]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			i.println("ERROR: Invalid value for debug")
			return
		}
		i.options.debug = value
		i.engine = i.newEngine()
	case "depth":
		value, err := strconv.ParseUint(valueStr, 10, 8)
		if err != nil || value < 1 || value > uint64(engine.MaxDepth) {
			i.println(fmt.Sprintf("ERROR: AI depth must be 1-%d", engine.MaxDepth))
			return
		}
		i.options.depth = uint8(value)
	case "parallel":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			i.println("ERROR: Invalid value for parallel")
			return
		}
		i.options.parallelPerft = value
	case "color":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			i.println("ERROR: Invalid value for color")
			return
		}
		i.options.color = value
	default:
		i.println("ERROR: Unknown option " + name)
		return
	}
	i.println("OK")
}

func (i *Interface) commandHelp(_ context.Context) {
	i.println("Available commands:")
	i.println("  new              - Start a new game")
	i.println("  move <move>      - Make a move (e.g., move e2e4, move e7e8q)")
	i.println("  undo             - Undo the last move")
	i.println("  fen <fen>        - Load a position")
	i.println("  export           - Export current position as FEN")
	i.println(fmt.Sprintf("  ai [depth]       - Let AI make a move (depth 1-%d, default %d)", engine.MaxDepth, i.options.depth))
	i.println("  perft <depth>    - Count leaf positions")
	i.println("  moves            - List legal moves")
	i.println("  status           - Show the game status")
	i.println("  eval             - Evaluate the current position")
	i.println("  display          - Show the current board")
	i.println("  set <opt> <val>  - Set debug, depth, parallel or color")
	i.println("  help             - Show this help")
	i.println("  quit             - Exit the program")
}

func (i *Interface) reportGameOver() {
	st := i.board.State()
	if st.IsRunning() {
		if st.IsCheck() {
			i.println("Check!")
		}
		return
	}
	i.println(describeState(st))
}

func describeState(st board.State) string {
	switch st {
	case board.StateCheckmateWhite:
		return "Black wins by checkmate!"
	case board.StateCheckmateBlack:
		return "White wins by checkmate!"
	case board.StateStalemate:
		return "Draw by stalemate!"
	case board.StateFiftyMoveViolated:
		return "Draw by fifty-move rule!"
	case board.StateThreefoldRepetition:
		return "Draw by threefold repetition!"
	case board.StateInsufficientMaterial:
		return "Draw by insufficient material!"
	case board.StateCheckWhite:
		return "White is in check"
	case board.StateCheckBlack:
		return "Black is in check"
	default:
		return "Game in progress"
	}
}

func (i *Interface) reset(_ context.Context) {
	b, err := board.NewBoard()
	if err != nil {
		panic(err)
	}
	i.board = b
	i.engine = i.newEngine()
}

func (i *Interface) newEngine() *engine.Engine {
	logger := engine.DiscardLogger
	if i.options.debug {
		logger = i.println
	}
	return engine.NewEngine(&engine.EngineConfig{
		Logger: logger,
		Debug:  i.options.debug,
	})
}

func (i *Interface) printError(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, board.ErrInvalidMoveText):
		msg = "Invalid move format"
	case errors.Is(err, board.ErrNoPiece):
		msg = "No piece at source square"
	case errors.Is(err, board.ErrWrongSide):
		msg = "Wrong color piece"
	case errors.Is(err, board.ErrIllegalMove):
		msg = "Illegal move"
	case errors.Is(err, board.ErrInvalidFEN):
		msg = "Invalid FEN: " + msg
	case errors.Is(err, errUnknownCommand):
		msg = "Unknown command"
	}
	i.println("ERROR: " + msg)
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
