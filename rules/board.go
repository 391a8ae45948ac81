package rules

// Square is a board coordinate in [0, 64): index = rank*8 + file.
// Rank 0 is White's first rank, file 0 is the a-file.
type Square int

// NoSquare is the in-memory sentinel for "no square". On the wire it is
// encoded as byte 255.
const NoSquare Square = -1

// NoSquareByte is the wire encoding of NoSquare.
const NoSquareByte byte = 255

// SquareOf builds a square from file and rank indices.
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// File returns the file index (0 = a-file).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank index (0 = White's first rank).
func (s Square) Rank() int { return int(s) / 8 }

// Byte returns the wire encoding of the square (255 for NoSquare).
func (s Square) Byte() byte {
	if !s.Valid() {
		return NoSquareByte
	}
	return byte(s)
}

// SquareFromByte decodes a wire square; 255 maps to NoSquare.
func SquareFromByte(b byte) Square {
	if b >= 64 {
		return NoSquare
	}
	return Square(b)
}

// String produces the coordinate name of the square (e.g. "e4").
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Piece is an 8-bit piece encoding:
//   - bits 0-2 carry the type (0 = empty, 1 = pawn ... 6 = king)
//   - bit 3 carries the color (0 = white, 8 = black)
//   - bit 4 is the has-moved flag, set after the piece first relocates
//   - bits 5-7 are reserved zero
//
// The 64-byte board wire image is a direct copy of the board array.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | pieceBlackBit
	BlackKnight Piece = 2 | pieceBlackBit
	BlackBishop Piece = 3 | pieceBlackBit
	BlackRook   Piece = 4 | pieceBlackBit
	BlackQueen  Piece = 5 | pieceBlackBit
	BlackKing   Piece = 6 | pieceBlackBit
)

const (
	pieceTypeMask Piece = 7
	pieceBlackBit Piece = 8
	pieceMovedBit Piece = 16
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & pieceTypeMask) }

// IsWhite reports whether the piece belongs to White. NoPiece reads as White.
func (p Piece) IsWhite() bool { return p&pieceBlackBit == 0 }

// IsBlack reports whether the piece belongs to Black.
func (p Piece) IsBlack() bool { return p&pieceBlackBit != 0 }

// HasMoved reports whether the has-moved flag is set.
func (p Piece) HasMoved() bool { return p&pieceMovedBit != 0 }

// withMoved returns the piece with the has-moved flag set.
func (p Piece) withMoved() Piece { return p | pieceMovedBit }

// withType replaces the piece's type, preserving color and has-moved flag.
func (p Piece) withType(pt PieceType) Piece {
	return (p &^ pieceTypeMask) | Piece(pt)
}

// PieceFromType combines a colorless type with a side, has-moved clear.
func PieceFromType(white bool, pt PieceType) Piece {
	p := Piece(pt)
	if !white {
		p |= pieceBlackBit
	}
	return p
}

// sameSide reports whether two non-empty pieces belong to the same side.
func sameSide(a, b Piece) bool { return (a^b)&pieceBlackBit == 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
