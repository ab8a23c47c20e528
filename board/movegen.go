package board

import "github.com/daystram/chesscore/position"

// GeneratePseudoLegalMoves generates moves for the side to move that follow
// piece geometry and occupancy rules. Moves may leave the mover's own King in
// check, GenerateMoves filters those out.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	mvs := make([]Move, 0, 64)
	for from := position.Pos(0); from < TotalCells; from++ {
		c := b.cells[from]
		if c.IsEmpty() || c.Side != b.turn {
			continue
		}
		switch c.Piece {
		case PiecePawn:
			mvs = b.genPawnMoves(mvs, from)
		case PieceKnight:
			mvs = b.genStepMoves(mvs, from, PieceKnight, offsetsKnight, 2)
		case PieceBishop:
			mvs = b.genSlideMoves(mvs, from, PieceBishop, offsetsDiagonal)
		case PieceRook:
			mvs = b.genSlideMoves(mvs, from, PieceRook, offsetsLateral)
		case PieceQueen:
			mvs = b.genSlideMoves(mvs, from, PieceQueen, offsetsDiagonal)
			mvs = b.genSlideMoves(mvs, from, PieceQueen, offsetsLateral)
		case PieceKing:
			mvs = b.genStepMoves(mvs, from, PieceKing, offsetsKing, 1)
			mvs = b.genCastleMoves(mvs, from)
		}
	}
	return mvs
}

func (b *Board) genPawnMoves(mvs []Move, from position.Pos) []Move {
	s := b.turn
	fwd := s.forward()

	// pushes
	if to, ok := step(from, fwd, 0); ok && b.cells[to].IsEmpty() {
		mvs = b.appendPawnMove(mvs, Move{From: from, To: to})
		if from.Y() == startRank[s] {
			if to2, ok := step(to, fwd, 0); ok && b.cells[to2].IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to2, Piece: PiecePawn, IsTurn: s})
			}
		}
	}

	// captures, including en passant onto the vacant target cell
	for _, side := range [2]position.Pos{-1, 1} {
		to, ok := step(from, fwd+side, 1)
		if !ok {
			continue
		}
		target := b.cells[to]
		switch {
		case !target.IsEmpty() && target.Side != s:
			mvs = b.appendPawnMove(mvs, Move{From: from, To: to, Captured: target.Piece})
		case target.IsEmpty() && to == b.enPassant && b.cells[to-fwd].Is(s.Opposite(), PiecePawn):
			mvs = append(mvs, Move{From: from, To: to, Piece: PiecePawn, IsTurn: s, Captured: PiecePawn, IsEnPassant: true})
		}
	}
	return mvs
}

// appendPawnMove appends mv, expanded into one move per promotion candidate
// when it lands on the last rank.
func (b *Board) appendPawnMove(mvs []Move, mv Move) []Move {
	mv.Piece = PiecePawn
	mv.IsTurn = b.turn
	if mv.To.Y() != promoteRank[b.turn] {
		return append(mvs, mv)
	}
	for _, prom := range PawnPromoteCandidates {
		mv.IsPromote = prom
		mvs = append(mvs, mv)
	}
	return mvs
}

func (b *Board) genStepMoves(mvs []Move, from position.Pos, p Piece, offsets []position.Pos, maxFileDelta position.Pos) []Move {
	for _, off := range offsets {
		to, ok := step(from, off, maxFileDelta)
		if !ok {
			continue
		}
		target := b.cells[to]
		if !target.IsEmpty() && target.Side == b.turn {
			continue
		}
		mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: b.turn, Captured: target.Piece})
	}
	return mvs
}

func (b *Board) genSlideMoves(mvs []Move, from position.Pos, p Piece, offsets []position.Pos) []Move {
	for _, off := range offsets {
		cur := from
		for {
			to, ok := step(cur, off, 1)
			if !ok {
				break
			}
			cur = to
			target := b.cells[to]
			if target.IsEmpty() {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: b.turn})
				continue
			}
			if target.Side != b.turn {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, IsTurn: b.turn, Captured: target.Piece})
			}
			break
		}
	}
	return mvs
}

func (b *Board) genCastleMoves(mvs []Move, from position.Pos) []Move {
	s := b.turn
	if !b.castleRights.IsSideAllowed(s) {
		return mvs
	}
	opponent := s.Opposite()
castleLoop:
	for _, d := range castleDirections[s] {
		g := castleGeometries[d]
		if from != g.kingFrom || !b.castleRights.IsAllowed(d) || !b.cells[g.rookFrom].Is(s, PieceRook) {
			continue
		}
		for _, pos := range g.empty {
			if !b.cells[pos].IsEmpty() {
				continue castleLoop
			}
		}
		for _, pos := range g.safe {
			if b.IsSquareAttacked(pos, opponent) {
				continue castleLoop
			}
		}
		mvs = append(mvs, Move{From: g.kingFrom, To: g.kingTo, Piece: PieceKing, IsTurn: s, IsCastle: d})
	}
	return mvs
}
