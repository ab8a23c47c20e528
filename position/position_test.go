package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Pos(28),
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos(63),
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos(0),
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestPos(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos          Pos
		wantX, wantY Pos
		wantNotation string
		wantValid    bool
	}{
		{pos: A1, wantX: FileA, wantY: Rank1, wantNotation: "a1", wantValid: true},
		{pos: E4, wantX: FileE, wantY: Rank4, wantNotation: "e4", wantValid: true},
		{pos: H8, wantX: FileH, wantY: Rank8, wantNotation: "h8", wantValid: true},
		{pos: NewPos(FileC, Rank6), wantX: FileC, wantY: Rank6, wantNotation: "c6", wantValid: true},
		{pos: NoPos, wantNotation: "", wantValid: false},
		{pos: Pos(64), wantNotation: "", wantValid: false},
	}

	for _, tt := range tests {
		if got := tt.pos.IsValid(); got != tt.wantValid {
			t.Errorf("%d.IsValid(): got=%v want=%v", tt.pos, got, tt.wantValid)
		}
		if got := tt.pos.Notation(); got != tt.wantNotation {
			t.Errorf("%d.Notation(): got=%q want=%q", tt.pos, got, tt.wantNotation)
		}
		if !tt.wantValid {
			continue
		}
		if got := tt.pos.X(); got != tt.wantX {
			t.Errorf("%s.X(): got=%d want=%d", tt.pos, got, tt.wantX)
		}
		if got := tt.pos.Y(); got != tt.wantY {
			t.Errorf("%s.Y(): got=%d want=%d", tt.pos, got, tt.wantY)
		}
		if got, err := NewPosFromNotation(tt.wantNotation); err != nil || got != tt.pos {
			t.Errorf("NewPosFromNotation(%s): got=%d,%v want=%d", tt.wantNotation, got, err, tt.pos)
		}
	}
}
