package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chesscore/position"
)

var (
	ErrInvalidFEN      = errors.New("invalid fen")
	ErrInvalidMoveText = errors.New("invalid move format")
	ErrNoPiece         = errors.New("no piece at source square")
	ErrWrongSide       = errors.New("wrong color piece")
	ErrIllegalMove     = errors.New("illegal move")
)

// irreversible is the part of the state that cannot be derived back from a
// Move when undoing it.
type irreversible struct {
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint16
	hash          uint64
}

// Board is the full game state: cells, side to move, castling rights, en
// passant target, clocks and the history needed to undo moves.
// A Board is owned by a single caller and is not safe for concurrent use.
type Board struct {
	// grid data
	cells [TotalCells]Cell
	kings [2 + 1]position.Pos

	// meta
	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint16
	fullMoveClock uint16
	hash          uint64

	// history, one entry per ply played
	moves        []Move
	hashHistory  []uint64
	stateHistory []irreversible
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := newEmptyBoard()
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func newEmptyBoard() *Board {
	return &Board{
		kings:     [2 + 1]position.Pos{position.NoPos, position.NoPos, position.NoPos},
		enPassant: position.NoPos,
	}
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the en passant target cell, or position.NoPos.
func (b *Board) EnPassant() position.Pos {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// Ply returns the number of plies applied since the board was created.
func (b *Board) Ply() int {
	return len(b.moves)
}

// History returns a copy of the moves played, oldest first.
func (b *Board) History() []Move {
	return append([]Move(nil), b.moves...)
}

// LastMove returns the most recently applied move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.moves) == 0 {
		return Move{}, false
	}
	return b.moves[len(b.moves)-1], true
}

func (b *Board) GetCell(pos position.Pos) Cell {
	return b.cells[pos]
}

func (b *Board) GetSideAndPiece(pos position.Pos) (Side, Piece) {
	c := b.cells[pos]
	return c.Side, c.Piece
}

// KingPos returns the cell of the side's King. Every board holds exactly one
// King per side; a missing King means the state has been corrupted.
func (b *Board) KingPos(s Side) position.Pos {
	pos := b.kings[s]
	if pos == position.NoPos {
		panic(fmt.Sprintf("board: %s King missing", s))
	}
	return pos
}

// CountPieces returns the number of the side's pieces of the given kind.
func (b *Board) CountPieces(s Side, p Piece) int {
	var n int
	for _, c := range b.cells {
		if c.Is(s, p) {
			n++
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	bb := *b
	bb.moves = append([]Move(nil), b.moves...)
	bb.hashHistory = append([]uint64(nil), b.hashHistory...)
	bb.stateHistory = append([]irreversible(nil), b.stateHistory...)
	return &bb
}

// put places a piece without touching the hash.
func (b *Board) put(pos position.Pos, s Side, p Piece) {
	b.cells[pos] = Cell{Side: s, Piece: p}
	if p == PieceKing {
		b.kings[s] = pos
	}
}

// clear empties a cell without touching the hash.
func (b *Board) clear(pos position.Pos) {
	b.cells[pos] = Cell{}
}

// place puts a piece and folds it into the hash.
func (b *Board) place(pos position.Pos, s Side, p Piece) {
	b.put(pos, s, p)
	b.hash ^= zobristConstantPiece[s][p][pos]
}

// remove empties a cell and folds its piece out of the hash.
func (b *Board) remove(pos position.Pos) {
	c := b.cells[pos]
	b.clear(pos)
	b.hash ^= zobristConstantPiece[c.Side][c.Piece][pos]
}
