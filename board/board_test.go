package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/daystram/chesscore/position"
)

var boardComparer = []cmp.Option{
	cmp.AllowUnexported(Board{}, irreversible{}),
	cmpopts.EquateEmpty(),
}

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func mustResolve(t *testing.T, b *Board, text string) Move {
	t.Helper()
	mv, err := b.ResolveMove(text)
	if err != nil {
		t.Fatalf("unexpected error resolving %s: %v", text, err)
	}
	return mv
}

func play(t *testing.T, b *Board, texts ...string) {
	t.Helper()
	for _, text := range texts {
		b.Apply(mustResolve(t, b, text))
	}
}

func TestApplyUndo(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
	}{
		{name: "starting position", fen: DefaultStartingPositionFEN},
		{name: "kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{name: "en passant", fen: "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"},
		{name: "promotions", fen: "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"},
		{name: "endgame", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			before := b.Clone()
			for _, mv := range b.GenerateMoves() {
				b.Apply(mv)
				if b.Hash() != b.ComputeHash() {
					t.Errorf("%s: unexpected incremental hash: got=%x want=%x", mv.UCI(), b.Hash(), b.ComputeHash())
				}
				if got, want := b.Turn(), before.Turn().Opposite(); got != want {
					t.Errorf("%s: unexpected turn: got=%s want=%s", mv.UCI(), got, want)
				}
				if got := b.Undo(); got != mv {
					t.Errorf("unexpected undone move: got=%s want=%s", got.UCI(), mv.UCI())
				}
				if diff := cmp.Diff(before, b, boardComparer...); diff != "" {
					t.Errorf("%s: board not restored (-want +got):\n%s", mv.UCI(), diff)
				}
			}
		})
	}
}

func TestUndoRestoresSequence(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	moves := []string{"e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "c7c6", "d5c6", "d8d2", "b1d2", "b7c6", "g1f3", "c6b5", "e1g1"}

	var snapshots []string
	for _, text := range moves {
		snapshots = append(snapshots, b.FEN())
		play(t, b, text)
		if b.Hash() != b.ComputeHash() {
			t.Fatalf("%s: unexpected incremental hash: got=%x want=%x", text, b.Hash(), b.ComputeHash())
		}
	}
	if got, want := b.FEN(), "rnb1kb1r/p3pppp/5n2/1p6/8/5N2/PPPN1PPP/R1BQ1RK1 b kq - 1 7"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}

	for i := len(moves) - 1; i >= 0; i-- {
		b.Undo()
		if got := b.FEN(); got != snapshots[i] {
			t.Errorf("undo %s: unexpected FEN: got=%s want=%s", moves[i], got, snapshots[i])
		}
	}
	if b.Ply() != 0 {
		t.Errorf("unexpected ply: got=%d want=0", b.Ply())
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	defer func() {
		if r := recover(); r == nil {
			t.Error("panic expected: got=nil")
		}
	}()
	b.Undo()
}

func TestHashTransposition(t *testing.T) {
	t.Parallel()
	b1 := mustBoard(t, DefaultStartingPositionFEN)
	b2 := mustBoard(t, DefaultStartingPositionFEN)
	play(t, b1, "g1f3", "g8f6", "b1c3")
	play(t, b2, "b1c3", "g8f6", "g1f3")
	if b1.Hash() != b2.Hash() {
		t.Errorf("unexpected hash mismatch: %x != %x", b1.Hash(), b2.Hash())
	}

	start := mustBoard(t, DefaultStartingPositionFEN)
	b3 := mustBoard(t, DefaultStartingPositionFEN)
	play(t, b3, "g1f3", "g8f6", "f3g1", "f6g8")
	if b3.Hash() != start.Hash() {
		t.Errorf("unexpected hash after returning to start: got=%x want=%x", b3.Hash(), start.Hash())
	}

	// same placement, different side to move
	b4 := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	b5 := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if b4.Hash() == b5.Hash() {
		t.Error("unexpected hash collision between sides to move")
	}
}

func TestEnPassant(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	play(t, b, "e2e4", "a7a6", "e4e5", "d7d5")
	if got, want := b.EnPassant(), position.D6; got != want {
		t.Fatalf("unexpected en passant target: got=%s want=%s", got, want)
	}

	mv := mustResolve(t, b, "e5d6")
	if !mv.IsEnPassant || mv.Captured != PiecePawn {
		t.Fatalf("unexpected move: %+v", mv)
	}
	before := b.Clone()
	b.Apply(mv)
	if got, want := b.FEN(), "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
	b.Undo()
	if diff := cmp.Diff(before, b, boardComparer...); diff != "" {
		t.Errorf("board not restored (-want +got):\n%s", diff)
	}

	// the target expires after one ply
	play(t, b, "b1c3", "b7b6")
	if _, err := b.ResolveMove("e5d6"); err == nil {
		t.Error("error expected: got=nil")
	}
}

func TestCastleRights(t *testing.T) {
	t.Parallel()
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	tests := []struct {
		move      string
		wantFEN   string
		wantAllow []CastleDirection
	}{
		{
			move:      "e1g1",
			wantFEN:   "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
			wantAllow: []CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft},
		},
		{
			move:      "e1c1",
			wantFEN:   "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
			wantAllow: []CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft},
		},
		{
			move:      "e1f1",
			wantFEN:   "r3k2r/8/8/8/8/8/8/R4K1R b kq - 1 1",
			wantAllow: []CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft},
		},
		{
			move:      "h1h8",
			wantFEN:   "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1",
			wantAllow: []CastleDirection{CastleDirectionWhiteLeft, CastleDirectionBlackLeft},
		},
		{
			move:      "a1a8",
			wantFEN:   "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
			wantAllow: []CastleDirection{CastleDirectionWhiteRight, CastleDirectionBlackRight},
		},
		{
			move:      "a1b1",
			wantFEN:   "r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
			wantAllow: []CastleDirection{CastleDirectionWhiteRight, CastleDirectionBlackRight, CastleDirectionBlackLeft},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.move, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, fen)
			play(t, b, tt.move)
			if got := b.FEN(); got != tt.wantFEN {
				t.Errorf("unexpected FEN: got=%s want=%s", got, tt.wantFEN)
			}
			var want CastleRights
			for _, d := range tt.wantAllow {
				want.Set(d, true)
			}
			if got := b.CastleRights(); got != want {
				t.Errorf("unexpected castle rights: got=%04b want=%04b", got, want)
			}
			b.Undo()
			if got := b.CastleRights(); got != 0b1111 {
				t.Errorf("unexpected castle rights after undo: got=%04b want=1111", got)
			}
			if got := b.FEN(); got != fen {
				t.Errorf("unexpected FEN after undo: got=%s want=%s", got, fen)
			}
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	play(t, b, "e2e4")
	bb := b.Clone()
	play(t, bb, "e7e5", "g1f3")

	if b.Ply() != 1 || bb.Ply() != 3 {
		t.Errorf("unexpected ply: got=%d,%d want=1,3", b.Ply(), bb.Ply())
	}
	if got, want := b.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"; got != want {
		t.Errorf("unexpected FEN: got=%s want=%s", got, want)
	}
	bb.Undo()
	bb.Undo()
	if diff := cmp.Diff(b, bb, boardComparer...); diff != "" {
		t.Errorf("clone diverged (-want +got):\n%s", diff)
	}
}

func TestBoardAccessors(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, DefaultStartingPositionFEN)
	if got := b.KingPos(SideWhite); got != position.E1 {
		t.Errorf("unexpected White King: got=%s want=%s", got, position.E1)
	}
	if got := b.KingPos(SideBlack); got != position.E8 {
		t.Errorf("unexpected Black King: got=%s want=%s", got, position.E8)
	}
	if got := b.CountPieces(SideBlack, PiecePawn); got != 8 {
		t.Errorf("unexpected pawn count: got=%d want=8", got)
	}
	if s, p := b.GetSideAndPiece(position.D1); s != SideWhite || p != PieceQueen {
		t.Errorf("unexpected d1: got=%s %s", s, p)
	}
	if !b.GetCell(position.E4).IsEmpty() {
		t.Error("unexpected piece on e4")
	}
	if _, ok := b.LastMove(); ok {
		t.Error("unexpected last move on a fresh board")
	}

	play(t, b, "g1f3")
	mv, ok := b.LastMove()
	if !ok || mv.UCI() != "g1f3" {
		t.Errorf("unexpected last move: got=%s", mv.UCI())
	}
	if got := b.HalfMoveClock(); got != 1 {
		t.Errorf("unexpected half move clock: got=%d want=1", got)
	}
	if got := b.History(); len(got) != 1 || got[0] != mv {
		t.Errorf("unexpected history: got=%v", got)
	}
}
