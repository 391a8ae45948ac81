package rules_test

import (
	"testing"

	"chess-core/rules"
)

func TestMoveGenerationInitial(t *testing.T) {
	p := mustParse(t, rules.FENStartPos)
	moves := p.Board.GenerateMoves()
	if len(moves) != 20 {
		t.Errorf("initial position: expected 20 moves, got %d", len(moves))
	}
}

// The generator explores queen promotion only, so perft counts for
// promotion positions differ from the classical tables by the three
// underpromotions per promoting move. Positions below contain no
// promotions within the searched depth unless noted.
func TestPerft(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial d1", rules.FENStartPos, 1, 20},
		{"initial d2", rules.FENStartPos, 2, 400},
		{"initial d3", rules.FENStartPos, 3, 8902},
		{"kiwipete d1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"kiwipete d2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"en passant d1", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 1, 5},
		{"en passant d2", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", 2, 19},
		// Classical count is 11; queen-only promotion drops the six
		// underpromotions (a8 and b8 each keep one promoting move).
		{"promotion d1", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustParse(t, tc.fen)
			if got := rules.Perft(&p.Board, tc.depth); got != tc.want {
				t.Fatalf("perft depth %d: got %d want %d", tc.depth, got, tc.want)
			}
		})
	}
}

func TestMoveOrdering_CapturesFirstByVictim(t *testing.T) {
	// White can capture the queen on d5 with the e4 pawn, the rook on
	// g5 with the h3 knight, and play many quiet moves.
	p := mustParse(t, "k7/8/8/3q2r1/4P3/7N/8/K7 w - - 0 1")
	moves := p.Board.GenerateMoves()
	if len(moves) < 3 {
		t.Fatalf("expected several moves, got %d", len(moves))
	}
	first, second := moves[0], moves[1]
	if first.Captured != rules.PieceTypeQueen {
		t.Fatalf("expected queen capture first, got %v (captured %d)", first, first.Captured)
	}
	if second.Captured != rules.PieceTypeRook {
		t.Fatalf("expected rook capture second, got %v (captured %d)", second, second.Captured)
	}
	for _, m := range moves[2:] {
		if m.IsCapture() {
			t.Fatalf("capture %v ordered after quiet moves", m)
		}
	}
}

func TestMoveOrdering_Deterministic(t *testing.T) {
	p := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	base := p.Board.GenerateMoves()
	for i := 0; i < 5; i++ {
		again := p.Board.GenerateMoves()
		if len(again) != len(base) {
			t.Fatalf("run %d: length %d != %d", i, len(again), len(base))
		}
		for j := range base {
			if base[j] != again[j] {
				t.Fatalf("run %d: move %d differs: %v vs %v", i, j, base[j], again[j])
			}
		}
	}
}

func TestGenerateCaptures_SubsetOfMoves(t *testing.T) {
	p := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	all := p.Board.GenerateMoves()
	captures := p.Board.GenerateCaptures()
	seen := make(map[rules.MoveRecord]bool, len(all))
	for _, m := range all {
		seen[m] = true
	}
	for _, c := range captures {
		if !c.IsCapture() {
			t.Fatalf("non-capture %v in capture list", c)
		}
		if !seen[c] {
			t.Fatalf("capture %v missing from full move list", c)
		}
	}
	var wantCaptures int
	for _, m := range all {
		if m.IsCapture() {
			wantCaptures++
		}
	}
	if len(captures) != wantCaptures {
		t.Fatalf("capture list has %d moves, full list has %d captures", len(captures), wantCaptures)
	}
}

// Every generated move must pass the legality checker, and every legal
// (from, to) probe must be generated: the piece-centric generator and
// the square-centric probe agree.
func TestGeneratorAgreesWithLegalityProbe(t *testing.T) {
	fens := []string{
		rules.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR b KQkq - 1 3",
	}
	for _, fen := range fens {
		p := mustParse(t, fen)
		b := &p.Board

		generated := make(map[rules.MoveRecord]bool)
		for _, m := range b.GenerateMoves() {
			key := rules.MoveRecord{From: m.From, To: m.To, Promotion: m.Promotion}
			if generated[key] {
				t.Fatalf("%s: duplicate move %v", fen, m)
			}
			generated[key] = true
			if !b.IsLegal(m.From, m.To, m.Promotion) {
				t.Fatalf("%s: generated move %v fails legality", fen, m)
			}
		}

		probed := 0
		for from := rules.Square(0); from < 64; from++ {
			for to := rules.Square(0); to < 64; to++ {
				promo := rules.PieceTypeNone
				if b.PromotionRequired(from, to) {
					promo = rules.PieceTypeQueen
				}
				if !b.IsLegal(from, to, promo) {
					continue
				}
				probed++
				if !generated[rules.MoveRecord{From: from, To: to, Promotion: promo}] {
					t.Fatalf("%s: legal move %v-%v not generated", fen, from, to)
				}
			}
		}
		if probed != len(generated) {
			t.Fatalf("%s: probe found %d moves, generator %d", fen, probed, len(generated))
		}
	}
}
