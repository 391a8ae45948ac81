package rules_test

import (
	"testing"

	"chess-core/rules"
)

func TestFENRoundTrip_StartPos(t *testing.T) {
	p := mustParse(t, rules.FENStartPos)
	if got := p.ToFEN(); got != rules.FENStartPos {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, rules.FENStartPos)
	}
}

func TestFEN_AfterDoublePush(t *testing.T) {
	p := mustParse(t, rules.FENStartPos)
	p.Make(sq(t, "e2"), sq(t, "e4"), rules.PieceTypeNone)
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := p.ToFEN(); got != want {
		t.Fatalf("FEN after e4:\n got %q\nwant %q", got, want)
	}
}

func TestFEN_CastlingRightsFollowMovedFlags(t *testing.T) {
	p := mustParse(t, rules.FENStartPos)
	if p.Board.PieceAt(sq(t, "e1")).HasMoved() {
		t.Fatalf("king must parse unmoved with full rights")
	}

	p = mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kq - 0 1")
	if p.Board.PieceAt(sq(t, "h1")).HasMoved() {
		t.Fatalf("h1 rook must be unmoved with K right")
	}
	if !p.Board.PieceAt(sq(t, "a1")).HasMoved() {
		t.Fatalf("a1 rook must be moved without Q right")
	}
	if !p.Board.PieceAt(sq(t, "h8")).HasMoved() {
		t.Fatalf("h8 rook must be moved without k right")
	}
	if p.Board.PieceAt(sq(t, "a8")).HasMoved() {
		t.Fatalf("a8 rook must be unmoved with q right")
	}
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kq - 0 1"
	if got := p.ToFEN(); got != want {
		t.Fatalf("rights round trip:\n got %q\nwant %q", got, want)
	}
}

func TestFEN_Invalid(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"8/8/8/8/8/8/8/8 w - - 0 1",                                // no kings
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // bad rank
	}
	for _, fen := range bad {
		if _, err := rules.ParseFEN(fen); err == nil {
			t.Errorf("expected error for %q", fen)
		}
	}
}

func TestBoardBytesWireImage(t *testing.T) {
	p := mustParse(t, rules.FENStartPos)
	img := p.Board.Bytes()
	if img[4] != byte(rules.WhiteKing) {
		t.Fatalf("expected white king encoding at square 4, got %d", img[4])
	}
	if img[60] != byte(rules.BlackKing) {
		t.Fatalf("expected black king encoding at square 60, got %d", img[60])
	}
	if img[8] != byte(rules.WhitePawn) {
		t.Fatalf("expected white pawn encoding at square 8, got %d", img[8])
	}
	for i := 16; i < 48; i++ {
		if img[i] != 0 {
			t.Fatalf("expected empty square %d, got %d", i, img[i])
		}
	}
}
