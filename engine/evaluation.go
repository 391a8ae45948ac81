package engine

import (
	"chess-core/rules"
)

// =============================================================================
// EVALUATION
// =============================================================================
//
// Scores are signed centipawns from Black's perspective: positive is
// better for Black (the engine side), negative better for White. The
// initial position evaluates to exactly 0.

// Material values per piece type.
var pieceValue = [7]int32{
	rules.PieceTypePawn:   100,
	rules.PieceTypeKnight: 320,
	rules.PieceTypeBishop: 330,
	rules.PieceTypeRook:   500,
	rules.PieceTypeQueen:  900,
	rules.PieceTypeKing:   20000,
}

// King-safety bonuses.
const (
	castledBonus    int32 = 40
	pawnShieldBonus int32 = 15
)

// Evaluation scores the board: material, piece-square bonuses and king
// safety. Black pieces add, White pieces subtract.
func Evaluation(b *rules.Board) int32 {
	var score int32
	for sq := rules.Square(0); sq < 64; sq++ {
		p := b.Squares[sq]
		if p == rules.NoPiece {
			continue
		}
		v := pieceValue[p.Type()] + pieceBonus(p, sq)
		if p.IsBlack() {
			score += v
		} else {
			score -= v
		}
	}
	score += kingSafety(b, false)
	score -= kingSafety(b, true)
	return score
}

// pieceBonus is the positional bonus for one piece. effRow is the
// piece's advancement from its own side (rank for White, 7-rank for
// Black).
func pieceBonus(p rules.Piece, sq rules.Square) int32 {
	file, rank := sq.File(), sq.Rank()
	effRow := 7 - rank
	if p.IsWhite() {
		effRow = rank
	}
	central := file >= 2 && file <= 5 && rank >= 2 && rank <= 5

	switch p.Type() {
	case rules.PieceTypePawn:
		bonus := int32(effRow) * 10
		if file >= 2 && file <= 5 {
			bonus += 10
		}
		if (file == 3 || file == 4) && effRow >= 4 {
			bonus += 15
		}
		return bonus
	case rules.PieceTypeKnight:
		if central {
			return 30
		}
		if (file == 0 || file == 7) && (rank == 0 || rank == 7) {
			return 0
		}
		return 10
	case rules.PieceTypeBishop:
		if central {
			return 20
		}
		return 0
	case rules.PieceTypeRook:
		if effRow == 6 {
			return 30
		}
		return 0
	case rules.PieceTypeQueen:
		if rank >= 2 && rank <= 5 {
			return 5
		}
		return 0
	case rules.PieceTypeKing:
		if effRow == 0 && (file <= 1 || file >= 6) {
			return 30
		}
		return 0
	default:
		return 0
	}
}

// kingSafety scores one side's king: a castled king and the pawn shield
// one rank in front of it.
func kingSafety(b *rules.Board, white bool) int32 {
	ksq := b.KingSquare(white)
	var bonus int32

	backRank, forward := 0, 1
	if !white {
		backRank, forward = 7, -1
	}
	if ksq.Rank() == backRank && (ksq.File() == 6 || ksq.File() == 2) &&
		b.Squares[ksq].HasMoved() {
		bonus += castledBonus
	}

	shieldRank := ksq.Rank() + forward
	if shieldRank >= 0 && shieldRank < 8 {
		for df := -1; df <= 1; df++ {
			f := ksq.File() + df
			if f < 0 || f > 7 {
				continue
			}
			p := b.Squares[rules.SquareOf(f, shieldRank)]
			if p.Type() == rules.PieceTypePawn && p.IsWhite() == white {
				bonus += pawnShieldBonus
			}
		}
	}
	return bonus
}
