package rules

import (
	"golang.org/x/exp/slices"
)

// Offset tables, built once at startup.
var knightOffsets = [8][2]int{ // (file, rank)
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}
var kingOffsets = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
var rookDirs = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

var knightTargets [64][]Square
var kingTargets [64][]Square

func init() {
	for sq := Square(0); sq < 64; sq++ {
		f, r := sq.File(), sq.Rank()
		for _, d := range knightOffsets {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				knightTargets[sq] = append(knightTargets[sq], SquareOf(nf, nr))
			}
		}
		for _, d := range kingOffsets {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				kingTargets[sq] = append(kingTargets[sq], SquareOf(nf, nr))
			}
		}
	}
}

// Most Valuable Victim - Least Valuable Aggressor; scores captures so
// that queen/rook victims sort before minor-piece victims.
var mvvLva = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 9},  // victim pawn
	{0, 24, 23, 22, 21, 20, 19}, // victim knight
	{0, 34, 33, 32, 31, 30, 29}, // victim bishop
	{0, 44, 43, 42, 41, 40, 39}, // victim rook
	{0, 54, 53, 52, 51, 50, 49}, // victim queen
	{0, 0, 0, 0, 0, 0, 0},
}

const captureOffset uint16 = 15000

type scoredMove struct {
	rec   MoveRecord
	score uint16
}

// GenerateMoves enumerates all legal moves for the side to move,
// captures first in MVV-LVA order, stable within equal scores. This
// ordering is the search's only source of move-choice variation.
func (b *Board) GenerateMoves() []MoveRecord {
	return b.generate(false)
}

// GenerateCaptures enumerates only the legal captures (including en
// passant), in the same ordering. Used by quiescence.
func (b *Board) GenerateCaptures() []MoveRecord {
	return b.generate(true)
}

func (b *Board) generate(capturesOnly bool) []MoveRecord {
	scored := make([]scoredMove, 0, 48)

	// add filters a pseudo-legal candidate through the king-safety
	// simulation and scores it for ordering.
	add := func(from, to Square, promo PieceType) {
		if !b.KingSafeAfter(from, to, promo) {
			return
		}
		p := b.Squares[from]
		rec := MoveRecord{From: from, To: to, Promotion: promo}
		target := b.Squares[to]
		var score uint16
		switch {
		case target != NoPiece:
			rec.Captured = target.Type()
			score = captureOffset + mvvLva[target.Type()][p.Type()]
		case p.Type() == PieceTypePawn && to == b.EnPassant && from.File() != to.File():
			rec.IsEnPassant = true
			rec.Captured = PieceTypePawn
			score = captureOffset + mvvLva[PieceTypePawn][PieceTypePawn]
		case p.Type() == PieceTypeKing && abs(to.File()-from.File()) == 2:
			rec.IsCastling = true
		}
		scored = append(scored, scoredMove{rec, score})
	}

	white := b.WhiteToMove
	for from := Square(0); from < 64; from++ {
		p := b.Squares[from]
		if p == NoPiece || p.IsWhite() != white {
			continue
		}
		switch p.Type() {
		case PieceTypePawn:
			b.generatePawn(from, p, capturesOnly, add)
		case PieceTypeKnight:
			for _, to := range knightTargets[from] {
				t := b.Squares[to]
				if t == NoPiece {
					if !capturesOnly {
						add(from, to, PieceTypeNone)
					}
				} else if !sameSide(p, t) {
					add(from, to, PieceTypeNone)
				}
			}
		case PieceTypeBishop:
			b.generateSlider(from, p, bishopDirs[:], capturesOnly, add)
		case PieceTypeRook:
			b.generateSlider(from, p, rookDirs[:], capturesOnly, add)
		case PieceTypeQueen:
			b.generateSlider(from, p, bishopDirs[:], capturesOnly, add)
			b.generateSlider(from, p, rookDirs[:], capturesOnly, add)
		case PieceTypeKing:
			for _, to := range kingTargets[from] {
				t := b.Squares[to]
				if t == NoPiece {
					if !capturesOnly {
						add(from, to, PieceTypeNone)
					}
				} else if !sameSide(p, t) {
					add(from, to, PieceTypeNone)
				}
			}
			if !capturesOnly {
				for _, df := range [2]int{2, -2} {
					to := SquareOf(from.File()+df, from.Rank())
					if from.File()+df >= 0 && from.File()+df < 8 && b.canCastle(from, to, p) {
						add(from, to, PieceTypeNone)
					}
				}
			}
		}
	}

	slices.SortStableFunc(scored, func(a, b scoredMove) bool {
		return a.score > b.score
	})
	moves := make([]MoveRecord, len(scored))
	for i, sm := range scored {
		moves[i] = sm.rec
	}
	return moves
}

// generatePawn emits pushes, double pushes, diagonal captures and en
// passant for one pawn. Promotions are generated as queen only; the
// legality checker accepts underpromotion when a caller asks for it.
func (b *Board) generatePawn(from Square, p Piece, capturesOnly bool, add func(Square, Square, PieceType)) {
	forward, startRank := 1, 1
	if p.IsBlack() {
		forward, startRank = -1, 6
	}
	promoOf := func(to Square) PieceType {
		if b.PromotionRequired(from, to) {
			return PieceTypeQueen
		}
		return PieceTypeNone
	}

	if !capturesOnly {
		one := SquareOf(from.File(), from.Rank()+forward)
		if b.Squares[one] == NoPiece {
			add(from, one, promoOf(one))
			if from.Rank() == startRank {
				two := SquareOf(from.File(), from.Rank()+2*forward)
				if b.Squares[two] == NoPiece {
					add(from, two, PieceTypeNone)
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		nf := from.File() + df
		if nf < 0 || nf > 7 {
			continue
		}
		to := SquareOf(nf, from.Rank()+forward)
		t := b.Squares[to]
		if t != NoPiece && !sameSide(p, t) {
			add(from, to, promoOf(to))
		} else if t == NoPiece && to == b.EnPassant {
			add(from, to, PieceTypeNone)
		}
	}
}

// generateSlider walks each ray until blocked: an enemy blocker ends
// the ray as a capture, a friendly blocker ends it outright.
func (b *Board) generateSlider(from Square, p Piece, dirs [][2]int, capturesOnly bool, add func(Square, Square, PieceType)) {
	for _, d := range dirs {
		f, r := from.File()+d[0], from.Rank()+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			to := SquareOf(f, r)
			t := b.Squares[to]
			if t == NoPiece {
				if !capturesOnly {
					add(from, to, PieceTypeNone)
				}
			} else {
				if !sameSide(p, t) {
					add(from, to, PieceTypeNone)
				}
				break
			}
			f += d[0]
			r += d[1]
		}
	}
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	return len(b.GenerateMoves()) > 0
}

// Perft counts leaf nodes of the legal move tree to the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateMoves() {
		child := *b
		child.Apply(m.From, m.To, m.Promotion)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// PerftDivide returns per-root-move node counts at the given depth.
func PerftDivide(b *Board, depth int) map[MoveRecord]uint64 {
	out := make(map[MoveRecord]uint64)
	for _, m := range b.GenerateMoves() {
		child := *b
		child.Apply(m.From, m.To, m.Promotion)
		out[m] = Perft(&child, depth-1)
	}
	return out
}
