package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/position"
)

// UnmarshalFEN loads the position described by fen into b, replacing its
// state and history. b is left untouched when fen is invalid.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidFEN)
	}
	segments := strings.Fields(fen)
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	nb := newEmptyBoard()
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for i, row := range rows {
		y := Height - position.Pos(i) - 1
		x := position.Pos(0)
		for _, cell := range row {
			if cell >= '1' && cell <= '8' {
				x += position.Pos(cell - '0')
				if x > Width {
					return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, y+1)
				}
				continue
			}
			s, p, ok := NewPieceFromSymbol(cell)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if x >= Width {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, y+1)
			}
			if p == PiecePawn && (y == position.Rank1 || y == position.Rank8) {
				return fmt.Errorf("%w: %s Pawn on rank %d", ErrInvalidFEN, s, y+1)
			}
			if p == PieceKing && nb.kings[s] != position.NoPos {
				return fmt.Errorf("%w: duplicate %s King", ErrInvalidFEN, s)
			}
			nb.put(position.NewPos(x, y), s, p)
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: missing cells on rank %d", ErrInvalidFEN, y+1)
		}
	}
	if nb.kings[SideWhite] == position.NoPos || nb.kings[SideBlack] == position.NoPos {
		return fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		nb.turn = SideWhite
	case "b":
		nb.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			var d CastleDirection
			switch e {
			case 'K':
				d = CastleDirectionWhiteRight
			case 'Q':
				d = CastleDirectionWhiteLeft
			case 'k':
				d = CastleDirectionBlackRight
			case 'q':
				d = CastleDirectionBlackLeft
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
			if nb.castleRights.IsAllowed(d) {
				return fmt.Errorf("%w: repeated castling right '%s'", ErrInvalidFEN, string(e))
			}
			nb.castleRights.Set(d, true)
		}
	}

	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if pos.Y() != position.Rank3 && pos.Y() != position.Rank6 {
			return fmt.Errorf("%w: invalid enpassant position: %s", ErrInvalidFEN, segments[3])
		}
		nb.enPassant = pos
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	nb.halfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || fullMoveClock == 0 {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	nb.fullMoveClock = uint16(fullMoveClock)

	// the side that just moved cannot have left its King attacked
	if nb.IsKingChecked(nb.turn.Opposite()) {
		return fmt.Errorf("%w: %s King can be captured", ErrInvalidFEN, nb.turn.Opposite())
	}

	nb.hash = nb.ComputeHash()
	*b = *nb
	return nil
}

func MarshalFEN(b *Board) string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		var skip int
		for x := position.Pos(0); x < Width; x++ {
			c := b.cells[position.NewPos(x, y)]
			if c.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(c.Piece.SymbolFEN(c.Side))
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
			_, _ = builder.WriteRune('q')
		}
	}
	_, _ = builder.WriteRune(' ')

	if b.enPassant == position.NoPos {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}

func (b *Board) FEN() string {
	return MarshalFEN(b)
}
