package rules

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece to its FEN character, ignoring the
// has-moved flag.
func charFromPiece(p Piece) byte {
	const white = "?PNBRQK"
	const black = "?pnbrqk"
	t := p.Type()
	if t == PieceTypeNone || t > PieceTypeKing {
		return '?'
	}
	if p.IsWhite() {
		return white[t]
	}
	return black[t]
}

// ParseFEN parses a FEN string into a Position. Castling availability
// maps onto the has-moved flags of the kings and corner rooks; pawns
// off their starting rank are marked moved; other pieces parse as
// unmoved. The history is empty and the move count is derived from the
// full-move number.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	p := &Position{Status: Active, CreatedAt: time.Now()}
	b := &p.Board
	b.EnPassant = NoSquare
	b.WhiteKing = NoSquare
	b.BlackKing = NoSquare

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			if piece.Type() == PieceTypePawn {
				start := 1
				if piece.IsBlack() {
					start = 6
				}
				if rank != start {
					piece = piece.withMoved()
				}
			}
			b.SetPiece(SquareOf(file, rank), piece)
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}
	if b.WhiteKing == NoSquare || b.BlackKing == NoSquare {
		return nil, errors.New("invalid FEN: missing king")
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.WhiteToMove = true
	case "b":
		b.WhiteToMove = false
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights become has-moved flags.
	rights := fields[2]
	if rights != "-" {
		for _, ch := range rights {
			switch ch {
			case 'K', 'Q', 'k', 'q':
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
		}
	}
	applyCastlingRights(b, rights)

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := parseCoord(fields[3])
		if err != nil {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		b.EnPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		b.HalfMoveClock = uint64(halfmove)
	}

	// 6. Fullmove number
	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		fullmove = n
	}
	p.MoveCount = uint64(fullmove-1) * 2
	if !b.WhiteToMove {
		p.MoveCount++
	}

	p.UpdateStatus()
	return p, nil
}

// applyCastlingRights marks kings and corner rooks moved except where a
// right keeps them eligible.
func applyCastlingRights(b *Board, rights string) {
	type side struct {
		right  rune
		king   Square
		rook   Square
		kPiece Piece
		rPiece Piece
	}
	sides := []side{
		{'K', SquareOf(4, 0), SquareOf(7, 0), WhiteKing, WhiteRook},
		{'Q', SquareOf(4, 0), SquareOf(0, 0), WhiteKing, WhiteRook},
		{'k', SquareOf(4, 7), SquareOf(7, 7), BlackKing, BlackRook},
		{'q', SquareOf(4, 7), SquareOf(0, 7), BlackKing, BlackRook},
	}
	kingEligible := map[Square]bool{}
	for _, s := range sides {
		granted := strings.ContainsRune(rights, s.right) &&
			b.Squares[s.king]&^pieceMovedBit == s.kPiece &&
			b.Squares[s.rook]&^pieceMovedBit == s.rPiece
		if granted {
			kingEligible[s.king] = true
			b.Squares[s.rook] &^= pieceMovedBit
		} else if b.Squares[s.rook]&^pieceMovedBit == s.rPiece {
			b.Squares[s.rook] |= pieceMovedBit
		}
	}
	for _, ksq := range []Square{b.WhiteKing, b.BlackKing} {
		if kingEligible[ksq] {
			b.Squares[ksq] &^= pieceMovedBit
		} else {
			b.Squares[ksq] |= pieceMovedBit
		}
	}
}

// parseCoord converts a coordinate like "e4" into a Square.
func parseCoord(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, errors.New("invalid coordinate")
	}
	return SquareOf(int(s[0]-'a'), int(s[1]-'1')), nil
}

// ToFEN produces the FEN string for the position's current state.
func (p *Position) ToFEN() string {
	b := &p.Board
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := b.Squares[SquareOf(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.WhiteToMove {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	rights := castlingRightsString(b)
	sb.WriteString(rights)
	sb.WriteByte(' ')

	if b.EnPassant != NoSquare {
		sb.WriteString(b.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.FormatUint(b.HalfMoveClock, 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.MoveCount/2) + 1))
	return sb.String()
}

// castlingRightsString derives the FEN castling field from the
// has-moved flags.
func castlingRightsString(b *Board) string {
	var sb strings.Builder
	unmoved := func(sq Square, want Piece) bool {
		p := b.Squares[sq]
		return p&^pieceMovedBit == want && !p.HasMoved()
	}
	if unmoved(SquareOf(4, 0), WhiteKing) {
		if unmoved(SquareOf(7, 0), WhiteRook) {
			sb.WriteByte('K')
		}
		if unmoved(SquareOf(0, 0), WhiteRook) {
			sb.WriteByte('Q')
		}
	}
	if unmoved(SquareOf(4, 7), BlackKing) {
		if unmoved(SquareOf(7, 7), BlackRook) {
			sb.WriteByte('k')
		}
		if unmoved(SquareOf(0, 7), BlackRook) {
			sb.WriteByte('q')
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
