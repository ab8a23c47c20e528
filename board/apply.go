package board

import "github.com/daystram/chesscore/position"

// Apply plays mv on the board. mv must come from this board's move generator;
// applying anything else corrupts the state.
func (b *Board) Apply(mv Move) {
	s := b.turn

	// save irreversible state
	b.stateHistory = append(b.stateHistory, irreversible{
		castleRights:  b.castleRights,
		enPassant:     b.enPassant,
		halfMoveClock: b.halfMoveClock,
		hash:          b.hash,
	})
	b.hashHistory = append(b.hashHistory, b.hash)

	// remove captured piece
	if mv.IsEnPassant {
		b.remove(mv.To - s.forward())
	} else if mv.IsCapture() {
		b.remove(mv.To)
	}

	// relocate the castling Rook
	if mv.IsCastle != CastleDirectionUnknown {
		g := castleGeometries[mv.IsCastle]
		b.remove(g.rookFrom)
		b.place(g.rookTo, s, PieceRook)
	}

	// move the piece, promoting if needed
	b.remove(mv.From)
	if mv.IsPromote != PieceUnknown {
		b.place(mv.To, s, mv.IsPromote)
	} else {
		b.place(mv.To, s, mv.Piece)
	}

	// update castleRights
	b.hash ^= hashCastleRights(b.castleRights)
	if mv.Piece == PieceKing {
		b.castleRights.revokeSide(s)
	}
	b.castleRights.revokeOnTouch(mv.From)
	b.castleRights.revokeOnTouch(mv.To)
	b.hash ^= hashCastleRights(b.castleRights)

	// update enPassant
	b.hash ^= hashEnPassant(b.enPassant)
	b.enPassant = position.NoPos
	if mv.Piece == PiecePawn && abs(mv.To-mv.From) == 2*Width {
		b.enPassant = (mv.From + mv.To) / 2
	}
	b.hash ^= hashEnPassant(b.enPassant)

	// update half move clock
	if mv.Piece == PiecePawn || mv.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	// update full move clock
	if s == SideBlack {
		b.fullMoveClock++
	}

	// update turn
	b.turn = s.Opposite()
	b.hash ^= zobristConstantSideBlack

	b.moves = append(b.moves, mv)
}

// Undo reverts the most recently applied move and returns it. It restores the
// saved irreversible state verbatim, so the hash is never recomputed.
// Calling Undo on a board without history is a programming error.
func (b *Board) Undo() Move {
	n := len(b.moves)
	if n == 0 {
		panic("board: undo with empty history")
	}
	mv := b.moves[n-1]
	st := b.stateHistory[n-1]
	b.moves = b.moves[:n-1]
	b.stateHistory = b.stateHistory[:n-1]
	b.hashHistory = b.hashHistory[:n-1]

	s := mv.IsTurn
	opponent := s.Opposite()

	// return the moving piece, reverting promotion
	b.clear(mv.To)
	b.put(mv.From, s, mv.Piece)

	// restore captured piece
	if mv.IsEnPassant {
		b.put(mv.To-s.forward(), opponent, PiecePawn)
	} else if mv.IsCapture() {
		b.put(mv.To, opponent, mv.Captured)
	}

	// return the castling Rook
	if mv.IsCastle != CastleDirectionUnknown {
		g := castleGeometries[mv.IsCastle]
		b.clear(g.rookTo)
		b.put(g.rookFrom, s, PieceRook)
	}

	b.castleRights = st.castleRights
	b.enPassant = st.enPassant
	b.halfMoveClock = st.halfMoveClock
	b.hash = st.hash
	b.turn = s
	if s == SideBlack {
		b.fullMoveClock--
	}
	return mv
}
