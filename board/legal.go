package board

// GenerateMoves generates the legal moves for the side to move. Each
// pseudo-legal move is applied in place and undone again, the board observed
// by the caller is left unchanged.
func (b *Board) GenerateMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	mvs := pseudo[:0]
	for _, mv := range pseudo {
		if b.IsLegal(mv) {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// IsLegal reports whether the pseudo-legal mv keeps the mover's King safe.
func (b *Board) IsLegal(mv Move) bool {
	b.Apply(mv)
	ok := !b.IsKingChecked(mv.IsTurn)
	b.Undo()
	return ok
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	for _, mv := range b.GeneratePseudoLegalMoves() {
		if b.IsLegal(mv) {
			return true
		}
	}
	return false
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	mvs := b.GenerateMoves()
	if depth == 1 {
		return uint64(len(mvs))
	}
	var nodes uint64
	for _, mv := range mvs {
		b.Apply(mv)
		nodes += b.Perft(depth - 1)
		b.Undo()
	}
	return nodes
}

// PerftDivide returns the leaf count below each legal root move, keyed by its
// UCI text.
func (b *Board) PerftDivide(depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, mv := range b.GenerateMoves() {
		b.Apply(mv)
		div[mv.UCI()] = b.Perft(depth - 1)
		b.Undo()
	}
	return div
}
