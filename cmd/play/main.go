package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"chess-core/game"
	"chess-core/rules"
)

const owner = "local"

func main() {
	manager := game.NewManager()
	stats := game.NewMemoryStats()
	manager.SetStats(stats)
	manager.NewGame(owner)

	snap, _ := manager.Snapshot(owner)
	printBoard(snap)
	fmt.Println("You are White. Enter moves like e2e4 or a7a8q; commands: new, resign, draw, show, stats, quit.")

	reader := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !reader.Scan() {
			return
		}
		line := strings.TrimSpace(strings.ToLower(reader.Text()))
		if line == "" {
			continue
		}
		switch line {
		case "quit":
			return
		case "new":
			snap = manager.NewGame(owner)
			printBoard(snap)
		case "show":
			snap, _ = manager.Snapshot(owner)
			printBoard(snap)
		case "resign":
			report(manager.Resign(owner))
		case "draw":
			report(manager.ClaimDraw(owner))
		case "stats":
			s := stats.For(owner)
			fmt.Printf("wins %d, losses %d, draws %d\n", s.Wins, s.Losses, s.Draws)
		default:
			from, to, promo, err := parseMove(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			report(manager.MakeMove(owner, from, to, promo))
		}
	}
}

func report(snap game.Snapshot, err error) {
	if err != nil {
		fmt.Println("error:", err)
		if errors.Is(err, game.ErrNoLegalMoves) {
			os.Exit(1)
		}
		return
	}
	printBoard(snap)
	if n := len(snap.History); n > 0 && !snap.Status.Terminal() {
		fmt.Println("engine played", snap.History[n-1].String())
	}
	if snap.Status.Terminal() {
		fmt.Println("game over:", snap.Status)
	} else if snap.InCheck {
		fmt.Println("check!")
	}
}

// parseMove reads coordinate notation with an optional promotion letter.
func parseMove(s string) (from, to rules.Square, promo rules.PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, 0, fmt.Errorf("unrecognized input %q", s)
	}
	from, err = coord(s[:2])
	if err != nil {
		return 0, 0, 0, err
	}
	to, err = coord(s[2:4])
	if err != nil {
		return 0, 0, 0, err
	}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = rules.PieceTypeKnight
		case 'b':
			promo = rules.PieceTypeBishop
		case 'r':
			promo = rules.PieceTypeRook
		case 'q':
			promo = rules.PieceTypeQueen
		default:
			return 0, 0, 0, fmt.Errorf("unknown promotion piece %q", s[4])
		}
	}
	return from, to, promo, nil
}

func coord(s string) (rules.Square, error) {
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("bad coordinate %q", s)
	}
	return rules.SquareOf(int(s[0]-'a'), int(s[1]-'1')), nil
}

// printBoard renders the 64-byte snapshot, rank 8 at the top.
func printBoard(snap game.Snapshot) {
	const glyphs = " PNBRQK"
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := rules.Piece(snap.Board[rank*8+file])
			ch := byte(' ')
			if t := p.Type(); t != rules.PieceTypeNone {
				ch = glyphs[t]
				if p.IsBlack() {
					ch += 'a' - 'A'
				}
			}
			if ch == ' ' {
				ch = '.'
			}
			fmt.Printf("%c ", ch)
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}
