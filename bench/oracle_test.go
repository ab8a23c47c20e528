package bench

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/daystram/chesscore/board"
)

// dragontoothDivide counts leaves below every root move with an independent
// bitboard move generator.
func dragontoothDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	div := make(map[string]uint64)
	for _, mv := range b.GenerateLegalMoves() {
		mv := mv
		unapply := b.Apply(mv)
		div[mv.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return div
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	mvs := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(mvs))
	}
	var nodes uint64
	for _, mv := range mvs {
		unapply := b.Apply(mv)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftDivideMatchesDragontooth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{name: "start", fen: board.DefaultStartingPositionFEN, depth: 3},
		{name: "kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 2},
		{name: "rook endgame", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 3},
		{name: "promotions", fen: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", depth: 2},
		{name: "en passant available", fen: "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", depth: 2},
		{name: "pinned en passant", fen: "8/8/8/KPp4r/8/8/8/6k1 w - c6 0 2", depth: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			got := b.PerftDivide(tt.depth)
			want := dragontoothDivide(tt.fen, tt.depth)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("divide mismatch (-dragontooth +ours):\n%s", diff)
			}
		})
	}
}
