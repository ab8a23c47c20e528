package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion, strongest first.
var PawnPromoteCandidates = []Piece{PieceQueen, PieceRook, PieceBishop, PieceKnight}

var materialPieceValue = [6 + 1]int32{
	PiecePawn:   100,
	PieceKnight: 320,
	PieceBishop: 330,
	PieceRook:   500,
	PieceQueen:  900,
	PieceKing:   20000,
}

func (p Piece) String() string {
	return p.Name()
}

// Value returns the material value of the piece. The King's value is only
// meaningful as a bound, it is never summed into a material balance.
func (p Piece) Value() int32 {
	if p > PieceKing {
		return 0
	}
	return materialPieceValue[p]
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// NewPieceFromSymbol parses a FEN piece letter. Uppercase is White.
func NewPieceFromSymbol(sym rune) (Side, Piece, bool) {
	s := SideWhite
	if sym >= 'a' && sym <= 'z' {
		s = SideBlack
		sym &^= 0x20
	}
	switch sym {
	case 'P':
		return s, PiecePawn, true
	case 'N':
		return s, PieceKnight, true
	case 'B':
		return s, PieceBishop, true
	case 'R':
		return s, PieceRook, true
	case 'Q':
		return s, PieceQueen, true
	case 'K':
		return s, PieceKing, true
	default:
		return SideUnknown, PieceUnknown, false
	}
}

// Cell is the content of a single board square. The zero value is an empty cell.
type Cell struct {
	Side  Side
	Piece Piece
}

func (c Cell) IsEmpty() bool {
	return c.Piece == PieceUnknown
}

func (c Cell) Is(s Side, p Piece) bool {
	return c.Side == s && c.Piece == p
}
