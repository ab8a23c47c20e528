package board

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when game is on progress.
	StateRunning

	// StateCheckWhite is when White King is in check.
	StateCheckWhite

	// StateCheckBlack is when Black King is in check.
	StateCheckBlack

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemate is when a side cannot move a piece and King is not in check.
	StateStalemate

	// StateFiftyMoveViolated is when the game has gone through 50 moves without any captures or pawn moves.
	StateFiftyMoveViolated

	// StateThreefoldRepetition is when the current position has occurred for the third time.
	StateThreefoldRepetition

	// StateInsufficientMaterial is when neither side has enough material to deliver checkmate.
	StateInsufficientMaterial
)

func (s State) IsRunning() bool {
	switch s {
	case StateRunning, StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheck() bool {
	switch s {
	case StateCheckWhite, StateCheckBlack:
		return true
	default:
		return false
	}
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsDraw() bool {
	switch s {
	case StateStalemate, StateFiftyMoveViolated, StateThreefoldRepetition, StateInsufficientMaterial:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckWhite:
		return "StateCheckWhite"
	case StateCheckBlack:
		return "StateCheckBlack"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemate:
		return "StateStalemate"
	case StateFiftyMoveViolated:
		return "StateFiftyMoveViolated"
	case StateThreefoldRepetition:
		return "StateThreefoldRepetition"
	case StateInsufficientMaterial:
		return "StateInsufficientMaterial"
	default:
		return ""
	}
}

// State returns the status of the game for the side to move. Checkmate and
// stalemate take precedence over the draw rules.
func (b *Board) State() State {
	isCheck := b.IsKingChecked(b.turn)
	if !b.HasLegalMoves() {
		if !isCheck {
			return StateStalemate
		}
		if b.turn == SideWhite {
			return StateCheckmateWhite
		}
		return StateCheckmateBlack
	}
	if b.halfMoveClock >= 100 {
		return StateFiftyMoveViolated
	}
	if b.IsRepetition(3) {
		return StateThreefoldRepetition
	}
	if b.IsInsufficientMaterial() {
		return StateInsufficientMaterial
	}
	if isCheck {
		if b.turn == SideWhite {
			return StateCheckWhite
		}
		return StateCheckBlack
	}
	return StateRunning
}

// IsDraw reports whether the position is drawn by the fifty-move rule,
// threefold repetition or insufficient material. Stalemate is not covered
// since it needs move generation.
func (b *Board) IsDraw() bool {
	return b.halfMoveClock >= 100 || b.IsRepetition(3) || b.IsInsufficientMaterial()
}

// IsRepetition reports whether the current position has occurred at least
// count times, counting the current one. Only plies since the last capture or
// pawn move are searched, earlier positions cannot repeat.
func (b *Board) IsRepetition(count int) bool {
	seen := 1
	n := len(b.hashHistory)
	limit := n - int(b.halfMoveClock)
	if limit < 0 {
		limit = 0
	}
	// positions with the same side to move are an even number of plies apart
	for i := n - 2; i >= limit; i -= 2 {
		if b.hashHistory[i] == b.hash {
			if seen++; seen >= count {
				return true
			}
		}
	}
	return false
}

// IsInsufficientMaterial reports K v K and K+minor v K endings.
func (b *Board) IsInsufficientMaterial() bool {
	var minors int
	for _, c := range b.cells {
		switch c.Piece {
		case PieceUnknown, PieceKing:
		case PieceKnight, PieceBishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}
