package rules_test

import (
	"testing"

	"chess-core/rules"
)

func mustParse(t *testing.T, fen string) *rules.Position {
	t.Helper()
	p, err := rules.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func sq(t *testing.T, coord string) rules.Square {
	t.Helper()
	if len(coord) != 2 {
		t.Fatalf("invalid coord %q", coord)
	}
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		t.Fatalf("coord out of range: %q", coord)
	}
	return rules.SquareOf(file, rank)
}

func TestIsSquareAttacked_RookFile(t *testing.T) {
	p := mustParse(t, "4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	if !p.Board.IsSquareAttacked(sq(t, "e1"), false) {
		t.Fatalf("expected e1 attacked by rook on e8")
	}
	if !p.Board.InCheck(true) {
		t.Fatalf("expected White in check")
	}

	// A blocker on the file cuts the attack.
	p = mustParse(t, "4r2k/8/8/8/8/4P3/8/4K3 w - - 0 1")
	if p.Board.IsSquareAttacked(sq(t, "e1"), false) {
		t.Fatalf("did not expect e1 attacked through a blocker")
	}
}

func TestIsSquareAttacked_BishopDiagonal(t *testing.T) {
	p := mustParse(t, "7k/8/8/8/1b6/8/8/4K3 w - - 0 1")
	if !p.Board.IsSquareAttacked(sq(t, "e1"), false) {
		t.Fatalf("expected e1 attacked along b4-e1 diagonal")
	}

	p = mustParse(t, "7k/8/8/8/1b6/8/3P4/4K3 w - - 0 1")
	if p.Board.IsSquareAttacked(sq(t, "e1"), false) {
		t.Fatalf("did not expect e1 attacked after diagonal blocker on d2")
	}
}

func TestIsSquareAttacked_PawnDiagonalOnly(t *testing.T) {
	p := mustParse(t, "7k/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	// Black pawn on d5 attacks e4 and c4, not d4.
	if !p.Board.IsSquareAttacked(sq(t, "e4"), false) {
		t.Fatalf("expected e4 attacked by pawn on d5")
	}
	if !p.Board.IsSquareAttacked(sq(t, "c4"), false) {
		t.Fatalf("expected c4 attacked by pawn on d5")
	}
	if p.Board.IsSquareAttacked(sq(t, "d4"), false) {
		t.Fatalf("pawn push square must not count as attacked")
	}
	// The white pawn on e4 attacks d5 back: mutual attacks coexist.
	if !p.Board.IsSquareAttacked(sq(t, "d5"), true) {
		t.Fatalf("expected d5 attacked by pawn on e4")
	}
}

func TestIsSquareAttacked_KnightAndKing(t *testing.T) {
	p := mustParse(t, "7k/8/8/8/8/5n2/3k4/4K3 w - - 0 1")
	if !p.Board.IsSquareAttacked(sq(t, "e1"), false) {
		t.Fatalf("expected e1 attacked by knight on f3")
	}
	if !p.Board.IsSquareAttacked(sq(t, "e1"), false) || !p.Board.InCheck(true) {
		t.Fatalf("expected White in check")
	}
	// The black king on d2 also attacks e1.
	p = mustParse(t, "7k/8/8/8/8/8/3k4/4K3 w - - 0 1")
	if !p.Board.IsSquareAttacked(sq(t, "e1"), false) {
		t.Fatalf("expected e1 attacked by adjacent king")
	}
	if p.Board.IsSquareAttacked(sq(t, "e1"), true) {
		t.Fatalf("a piece does not attack its own square")
	}
}

func TestIsSquareAttacked_QueenBothGeometries(t *testing.T) {
	p := mustParse(t, "3q3k/8/8/8/8/8/8/3K4 w - - 0 1")
	if !p.Board.IsSquareAttacked(sq(t, "d1"), false) {
		t.Fatalf("expected d1 attacked by queen along the file")
	}
	p = mustParse(t, "q6k/8/8/8/8/8/8/6K1 w - - 0 1")
	if !p.Board.IsSquareAttacked(sq(t, "h1"), false) {
		t.Fatalf("expected h1 attacked by queen along the long diagonal")
	}
	p = mustParse(t, "q6k/8/8/3P4/8/8/8/6K1 w - - 0 1")
	if p.Board.IsSquareAttacked(sq(t, "h1"), false) {
		t.Fatalf("did not expect h1 attacked through d5 blocker")
	}
}

func TestEdgeSquaresNoUnderflow(t *testing.T) {
	// Corner-to-corner scans must stay on the board.
	p := mustParse(t, "k6r/8/8/8/8/8/8/R6K w - - 0 1")
	if !p.Board.IsSquareAttacked(sq(t, "a8"), true) {
		t.Fatalf("expected a8 attacked by rook on a1")
	}
	if !p.Board.IsSquareAttacked(sq(t, "h1"), false) {
		t.Fatalf("expected h1 attacked by rook on h8")
	}
}
