package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"chess-core/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	check := flag.Bool("check", false, "Cross-check the count against the dragontoothmg reference generator")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := rules.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := rules.PerftDivide(&pos.Board, *depth)
		type kv struct {
			m rules.MoveRecord
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := rules.Perft(&pos.Board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v\n", *depth, nodes, elapsed)

	if *check {
		// The generator explores queen promotions only, so reference
		// counts are taken over the same move subset.
		ref := dragontoothmg.ParseFen(*fen)
		refNodes := refPerft(&ref, *depth)
		if refNodes == nodes {
			fmt.Printf("reference agrees: %d\n", refNodes)
		} else {
			fmt.Printf("MISMATCH: reference counts %d\n", refNodes)
			os.Exit(1)
		}
	}
}

// refPerft counts nodes with the reference generator, restricted to
// non-promoting and queen-promoting moves.
func refPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		if promo := m.Promote(); promo != 0 && promo != dragontoothmg.Queen {
			continue
		}
		unapply := b.Apply(m)
		nodes += refPerft(b, depth-1)
		unapply()
	}
	return nodes
}
