package board

import (
	"errors"
	"testing"

	"github.com/daystram/chesscore/position"
)

func TestParseMoveText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text     string
		wantFrom position.Pos
		wantTo   position.Pos
		wantProm Piece
		wantErr  error
	}{
		{text: "e2e4", wantFrom: position.E2, wantTo: position.E4},
		{text: "a7a8q", wantFrom: position.A7, wantTo: position.A8, wantProm: PieceQueen},
		{text: "h2h1N", wantFrom: position.H2, wantTo: position.H1, wantProm: PieceKnight},
		{text: "b7b8r", wantFrom: position.B7, wantTo: position.B8, wantProm: PieceRook},
		{text: "c7c8B", wantFrom: position.C7, wantTo: position.C8, wantProm: PieceBishop},
		{text: "", wantErr: ErrInvalidMoveText},
		{text: "e2", wantErr: ErrInvalidMoveText},
		{text: "e2e4e5", wantErr: ErrInvalidMoveText},
		{text: "i2i4", wantErr: ErrInvalidMoveText},
		{text: "e0e4", wantErr: ErrInvalidMoveText},
		{text: "e7e8k", wantErr: ErrInvalidMoveText},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			from, to, prom, err := ParseMoveText(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if from != tt.wantFrom || to != tt.wantTo || prom != tt.wantProm {
				t.Errorf("unexpected result: got=%s,%s,%s want=%s,%s,%s", from, to, prom, tt.wantFrom, tt.wantTo, tt.wantProm)
			}
		})
	}
}

func TestResolveMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		text    string
		want    Move
		wantErr error
	}{
		{
			name: "pawn push",
			fen:  DefaultStartingPositionFEN,
			text: "e2e4",
			want: Move{From: position.E2, To: position.E4, Piece: PiecePawn, IsTurn: SideWhite},
		},
		{
			name: "castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			text: "e1g1",
			want: Move{From: position.E1, To: position.G1, Piece: PieceKing, IsTurn: SideWhite, IsCastle: CastleDirectionWhiteRight},
		},
		{
			name: "default promotion",
			fen:  "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			text: "a7a8",
			want: Move{From: position.A7, To: position.A8, Piece: PiecePawn, IsTurn: SideWhite, IsPromote: PieceQueen},
		},
		{
			name: "under promotion",
			fen:  "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			text: "a7a8n",
			want: Move{From: position.A7, To: position.A8, Piece: PiecePawn, IsTurn: SideWhite, IsPromote: PieceKnight},
		},
		{
			name:    "promotion letter on a quiet move",
			fen:     DefaultStartingPositionFEN,
			text:    "e2e4q",
			wantErr: ErrIllegalMove,
		},
		{
			name:    "empty source",
			fen:     DefaultStartingPositionFEN,
			text:    "e3e4",
			wantErr: ErrNoPiece,
		},
		{
			name:    "wrong side",
			fen:     DefaultStartingPositionFEN,
			text:    "e7e5",
			wantErr: ErrWrongSide,
		},
		{
			name:    "illegal geometry",
			fen:     DefaultStartingPositionFEN,
			text:    "e2e5",
			wantErr: ErrIllegalMove,
		},
		{
			name:    "leaves king in check",
			fen:     "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			text:    "e2d3",
			wantErr: ErrIllegalMove,
		},
		{
			name:    "malformed",
			fen:     DefaultStartingPositionFEN,
			text:    "e2-e4",
			wantErr: ErrInvalidMoveText,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			got, err := b.ResolveMove(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got != tt.want {
				t.Errorf("unexpected move: got=%+v want=%+v", got, tt.want)
			}
		})
	}
}

func TestMoveNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mv          Move
		wantUCI     string
		wantAlgebra string
	}{
		{
			mv:          Move{From: position.E2, To: position.E4, Piece: PiecePawn, IsTurn: SideWhite},
			wantUCI:     "e2e4",
			wantAlgebra: "e4",
		},
		{
			mv:          Move{From: position.A7, To: position.B8, Piece: PiecePawn, IsTurn: SideWhite, Captured: PieceRook, IsPromote: PieceQueen},
			wantUCI:     "a7b8q",
			wantAlgebra: "axb8=Q",
		},
		{
			mv:          Move{From: position.E8, To: position.C8, Piece: PieceKing, IsTurn: SideBlack, IsCastle: CastleDirectionBlackLeft},
			wantUCI:     "e8c8",
			wantAlgebra: "0-0-0",
		},
		{
			mv:          Move{From: position.G1, To: position.F3, Piece: PieceKnight, IsTurn: SideWhite},
			wantUCI:     "g1f3",
			wantAlgebra: "Nf3",
		},
	}
	if got := (Move{}).UCI(); got != "0000" {
		t.Errorf("unexpected null move UCI: got=%s want=0000", got)
	}
	for _, tt := range tests {
		if got := tt.mv.UCI(); got != tt.wantUCI {
			t.Errorf("unexpected UCI: got=%s want=%s", got, tt.wantUCI)
		}
		if got := tt.mv.Algebra(); got != tt.wantAlgebra {
			t.Errorf("unexpected algebra: got=%s want=%s", got, tt.wantAlgebra)
		}
	}
}
