package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

// ParseMoveText parses coordinate move text such as "e2e4" or "e7e8q". The
// promotion letter is optional and case-insensitive; PieceUnknown is returned
// when it is absent.
func ParseMoveText(text string) (position.Pos, position.Pos, Piece, error) {
	if len(text) != 4 && len(text) != 5 {
		return position.NoPos, position.NoPos, PieceUnknown, fmt.Errorf("%w: %q", ErrInvalidMoveText, text)
	}
	from, err := position.NewPosFromNotation(text[0:2])
	if err != nil {
		return position.NoPos, position.NoPos, PieceUnknown, fmt.Errorf("%w: %q: %v", ErrInvalidMoveText, text, err)
	}
	to, err := position.NewPosFromNotation(text[2:4])
	if err != nil {
		return position.NoPos, position.NoPos, PieceUnknown, fmt.Errorf("%w: %q: %v", ErrInvalidMoveText, text, err)
	}
	prom := PieceUnknown
	if len(text) == 5 {
		switch text[4] {
		case 'q', 'Q':
			prom = PieceQueen
		case 'r', 'R':
			prom = PieceRook
		case 'b', 'B':
			prom = PieceBishop
		case 'n', 'N':
			prom = PieceKnight
		default:
			return position.NoPos, position.NoPos, PieceUnknown, fmt.Errorf("%w: invalid promotion piece %q", ErrInvalidMoveText, text[4:])
		}
	}
	return from, to, prom, nil
}

// ResolveMove maps move text onto one of the legal moves of the side to move.
// A promotion without an explicit piece defaults to a Queen.
func (b *Board) ResolveMove(text string) (Move, error) {
	from, to, prom, err := ParseMoveText(text)
	if err != nil {
		return Move{}, err
	}
	c := b.cells[from]
	if c.IsEmpty() {
		return Move{}, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if c.Side != b.turn {
		return Move{}, fmt.Errorf("%w: %s belongs to %s", ErrWrongSide, from, c.Side)
	}
	for _, mv := range b.GenerateMoves() {
		if mv.From != from || mv.To != to {
			continue
		}
		if mv.IsPromote == PieceUnknown && prom != PieceUnknown {
			break
		}
		if mv.IsPromote == PieceUnknown || mv.IsPromote == prom || (prom == PieceUnknown && mv.IsPromote == PieceQueen) {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, text)
}
