package rules

// ==========================
// Position mutator
// ==========================

// Apply performs a move on the board, assuming it is legal. It moves
// the piece (setting its has-moved flag), relocates the rook on
// castling, removes the pawn behind the destination on en passant,
// updates the king square, the en-passant target and the half-move
// clock, and flips the side to move. The returned record carries the
// captured type (pawn for en passant).
func (b *Board) Apply(from, to Square, promotion PieceType) MoveRecord {
	p := b.Squares[from]
	rec := MoveRecord{From: from, To: to, Promotion: promotion}

	target := b.Squares[to]
	isEnPassant := p.Type() == PieceTypePawn && to == b.EnPassant &&
		from.File() != to.File() && target == NoPiece
	isCastling := p.Type() == PieceTypeKing && abs(to.File()-from.File()) == 2

	if target != NoPiece {
		rec.Captured = target.Type()
	}

	moved := p.withMoved()
	if promotion != PieceTypeNone {
		moved = moved.withType(promotion)
	}
	b.Squares[from] = NoPiece
	b.Squares[to] = moved

	if isCastling {
		rec.IsCastling = true
		rank := from.Rank()
		if to.File() > from.File() { // kingside: corner rook to king-1
			rookFrom := SquareOf(7, rank)
			b.Squares[SquareOf(to.File()-1, rank)] = b.Squares[rookFrom].withMoved()
			b.Squares[rookFrom] = NoPiece
		} else { // queenside: corner rook to king+1
			rookFrom := SquareOf(0, rank)
			b.Squares[SquareOf(to.File()+1, rank)] = b.Squares[rookFrom].withMoved()
			b.Squares[rookFrom] = NoPiece
		}
	}

	if isEnPassant {
		rec.IsEnPassant = true
		rec.Captured = PieceTypePawn
		if p.IsWhite() {
			b.Squares[to-8] = NoPiece
		} else {
			b.Squares[to+8] = NoPiece
		}
	}

	if p.Type() == PieceTypeKing {
		if p.IsWhite() {
			b.WhiteKing = to
		} else {
			b.BlackKing = to
		}
	}

	// En-passant target survives exactly one half-move.
	b.EnPassant = NoSquare
	if p.Type() == PieceTypePawn && abs(to.Rank()-from.Rank()) == 2 {
		b.EnPassant = SquareOf(from.File(), (from.Rank()+to.Rank())/2)
	}

	if p.Type() == PieceTypePawn || rec.Captured != PieceTypeNone {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}

	b.WhiteToMove = !b.WhiteToMove
	return rec
}

// Make applies a validated move to the position: board mutation, history
// append, move count, and the termination check. Callers validate with
// IsLegal first; the game layer enforces ownership and turn order.
func (p *Position) Make(from, to Square, promotion PieceType) MoveRecord {
	rec := p.Board.Apply(from, to, promotion)
	p.History = append(p.History, rec)
	p.MoveCount++
	p.UpdateStatus()
	return rec
}

// ==========================
// Termination detector
// ==========================

// UpdateStatus recomputes the game status for the side to move. A
// terminal status is frozen and never recomputed.
func (p *Position) UpdateStatus() {
	if p.Status != Active {
		return
	}
	if len(p.Board.GenerateMoves()) == 0 {
		if p.Board.InCheck(p.WhiteToMove) {
			if p.WhiteToMove {
				p.Status = BlackWin
			} else {
				p.Status = WhiteWin
			}
		} else {
			p.Status = Stalemate
		}
		return
	}
	if p.HalfMoveClock >= 100 || p.Board.InsufficientMaterial() {
		p.Status = Draw
	}
}

// InsufficientMaterial reports positions where checkmate is impossible:
// king versus king, or king versus king plus a single minor piece.
func (b *Board) InsufficientMaterial() bool {
	minors := 0
	for _, p := range b.Squares {
		switch p.Type() {
		case PieceTypeNone, PieceTypeKing:
		case PieceTypeKnight, PieceTypeBishop:
			minors++
			if minors > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
