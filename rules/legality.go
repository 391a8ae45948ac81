package rules

// ==========================
// Move legality
// ==========================

// IsLegal reports whether the move is fully legal for the side to move:
// pseudo-legal geometry plus king safety on the resulting board.
func (b *Board) IsLegal(from, to Square, promotion PieceType) bool {
	return b.IsPseudoLegal(from, to, promotion) && b.KingSafeAfter(from, to, promotion)
}

// KingSafeAfter simulates the move on a working copy and reports
// whether the mover's king is left unattacked. Callers establish
// pseudo-legality first.
func (b *Board) KingSafeAfter(from, to Square, promotion PieceType) bool {
	white := b.Squares[from].IsWhite()
	work := *b
	work.Apply(from, to, promotion)
	return !work.IsSquareAttacked(work.KingSquare(white), !white)
}

// PromotionRequired reports whether a move of the piece on from to the
// destination must carry a promotion type.
func (b *Board) PromotionRequired(from, to Square) bool {
	p := b.Squares[from]
	if p.Type() != PieceTypePawn {
		return false
	}
	if p.IsWhite() {
		return to.Rank() == 7
	}
	return to.Rank() == 0
}

func validPromotion(pt PieceType) bool {
	return pt >= PieceTypeKnight && pt <= PieceTypeQueen
}

// IsPseudoLegal checks piece geometry, occupancy and the promotion rule,
// ignoring king safety.
func (b *Board) IsPseudoLegal(from, to Square, promotion PieceType) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	p := b.Squares[from]
	if p == NoPiece || p.IsWhite() != b.WhiteToMove {
		return false
	}
	target := b.Squares[to]
	if target != NoPiece && sameSide(p, target) {
		return false
	}

	if b.PromotionRequired(from, to) {
		if !validPromotion(promotion) {
			return false
		}
	} else if promotion != PieceTypeNone {
		return false
	}

	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()

	switch p.Type() {
	case PieceTypePawn:
		forward, startRank := 1, 1
		if p.IsBlack() {
			forward, startRank = -1, 6
		}
		if df == 0 {
			if dr == forward {
				return target == NoPiece
			}
			if dr == 2*forward && from.Rank() == startRank {
				mid := SquareOf(from.File(), from.Rank()+forward)
				return target == NoPiece && b.Squares[mid] == NoPiece
			}
			return false
		}
		if abs(df) == 1 && dr == forward {
			if target != NoPiece {
				return true // enemy by the same-side check above
			}
			return to == b.EnPassant
		}
		return false
	case PieceTypeKnight:
		return (abs(dr) == 1 && abs(df) == 2) || (abs(dr) == 2 && abs(df) == 1)
	case PieceTypeBishop:
		return abs(dr) == abs(df) && b.diagonalClear(from, to)
	case PieceTypeRook:
		return (dr == 0) != (df == 0) && b.lineClear(from, to)
	case PieceTypeQueen:
		if abs(dr) == abs(df) {
			return b.diagonalClear(from, to)
		}
		return (dr == 0) != (df == 0) && b.lineClear(from, to)
	case PieceTypeKing:
		if abs(dr) <= 1 && abs(df) <= 1 {
			return true
		}
		if dr == 0 && abs(df) == 2 {
			return b.canCastle(from, to, p)
		}
		return false
	default:
		return false
	}
}

// canCastle checks every castling condition: unmoved king and corner
// rook, empty squares between them, and no enemy attack on the king's
// current, traversed, or destination square.
func (b *Board) canCastle(from, to Square, king Piece) bool {
	if king.HasMoved() {
		return false
	}
	rank := from.Rank()
	step := 1
	rookSq := SquareOf(7, rank)
	if to.File() < from.File() {
		step = -1
		rookSq = SquareOf(0, rank)
	}
	rook := b.Squares[rookSq]
	if rook.Type() != PieceTypeRook || rook.HasMoved() || !sameSide(rook, king) {
		return false
	}
	for f := from.File() + step; f != rookSq.File(); f += step {
		if b.Squares[SquareOf(f, rank)] != NoPiece {
			return false
		}
	}
	enemyWhite := !king.IsWhite()
	if b.IsSquareAttacked(from, enemyWhite) {
		return false
	}
	if b.IsSquareAttacked(SquareOf(from.File()+step, rank), enemyWhite) {
		return false
	}
	return !b.IsSquareAttacked(to, enemyWhite)
}
