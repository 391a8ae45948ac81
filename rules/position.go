package rules

import "time"

// Status is the lifecycle state of a game. Transitions go Active to one
// terminal state only; terminal states are frozen.
type Status uint8

const (
	Active Status = iota
	WhiteWin
	BlackWin
	Draw
	Stalemate
)

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool { return s != Active }

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case WhiteWin:
		return "white wins"
	case BlackWin:
		return "black wins"
	case Draw:
		return "draw"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// MoveRecord describes one applied half-move. It is a plain value with
// no references into the board, so history and undo are self-contained.
type MoveRecord struct {
	From        Square
	To          Square
	Promotion   PieceType
	Captured    PieceType
	IsCastling  bool
	IsEnPassant bool
}

// IsCapture reports whether the move removed an enemy piece, including
// en passant.
func (m MoveRecord) IsCapture() bool { return m.Captured != PieceTypeNone }

// String produces the coordinate form of the move (e.g. "e2e4", "a7a8q").
func (m MoveRecord) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case PieceTypeKnight:
		s += "n"
	case PieceTypeBishop:
		s += "b"
	case PieceTypeRook:
		s += "r"
	case PieceTypeQueen:
		s += "q"
	}
	return s
}

// Wire returns the 6-byte wire image of the record: from, to, promotion
// type, captured type, is-castling, is-en-passant, in declared order.
func (m MoveRecord) Wire() [6]byte {
	var w [6]byte
	w[0] = m.From.Byte()
	w[1] = m.To.Byte()
	w[2] = byte(m.Promotion)
	w[3] = byte(m.Captured)
	if m.IsCastling {
		w[4] = 1
	}
	if m.IsEnPassant {
		w[5] = 1
	}
	return w
}

// MoveRecordFromWire decodes a 6-byte wire image.
func MoveRecordFromWire(w [6]byte) MoveRecord {
	return MoveRecord{
		From:        SquareFromByte(w[0]),
		To:          SquareFromByte(w[1]),
		Promotion:   PieceType(w[2]),
		Captured:    PieceType(w[3]),
		IsCastling:  w[4] != 0,
		IsEnPassant: w[5] != 0,
	}
}

// Board is the rules-level working state: piece placement plus the
// fields move legality depends on. It is a small value; the search
// copies one per node (copy-on-apply).
type Board struct {
	Squares       [64]Piece
	WhiteToMove   bool
	EnPassant     Square // square jumped over by the preceding double push, else NoSquare
	WhiteKing     Square
	BlackKing     Square
	HalfMoveClock uint64
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.Squares[sq] }

// KingSquare returns the given side's king square.
func (b *Board) KingSquare(white bool) Square {
	if white {
		return b.WhiteKing
	}
	return b.BlackKing
}

// SetPiece places a piece on a square, replacing any occupant and
// keeping the king squares in sync. Intended for position setup.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.Squares[sq] = p
	if p.Type() == PieceTypeKing {
		if p.IsWhite() {
			b.WhiteKing = sq
		} else {
			b.BlackKing = sq
		}
	}
}

// Bytes returns the 64-byte wire image of the board, square 0 first.
func (b *Board) Bytes() [64]byte {
	var out [64]byte
	for i, p := range b.Squares {
		out[i] = byte(p)
	}
	return out
}

// StartingBoard returns the canonical initial layout, White to move.
func StartingBoard() Board {
	b := Board{
		WhiteToMove: true,
		EnPassant:   NoSquare,
		WhiteKing:   SquareOf(4, 0),
		BlackKing:   SquareOf(4, 7),
	}
	back := [8]PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for f := 0; f < 8; f++ {
		b.Squares[SquareOf(f, 0)] = PieceFromType(true, back[f])
		b.Squares[SquareOf(f, 1)] = WhitePawn
		b.Squares[SquareOf(f, 6)] = BlackPawn
		b.Squares[SquareOf(f, 7)] = PieceFromType(false, back[f])
	}
	return b
}

// Position is the complete game state: the rules-level board plus the
// game record. A Position is exclusively owned by its owning principal;
// the game layer serializes access per owner.
type Position struct {
	Board
	Status    Status
	MoveCount uint64
	History   []MoveRecord
	CreatedAt time.Time
}

// NewPosition creates a game in the canonical initial layout.
func NewPosition() *Position {
	return &Position{
		Board:     StartingBoard(),
		Status:    Active,
		CreatedAt: time.Now(),
	}
}

// Clone returns a deep copy of the position. The board array copies by
// value; only the history needs an explicit copy.
func (p *Position) Clone() *Position {
	next := *p
	next.History = make([]MoveRecord, len(p.History))
	copy(next.History, p.History)
	return &next
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(white bool) bool {
	return b.IsSquareAttacked(b.KingSquare(white), !white)
}
