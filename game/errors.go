package game

import (
	"errors"
	"fmt"

	"chess-core/engine"
)

// The closed set of game errors. Every error is surfaced synchronously
// and leaves the position unchanged; only ErrNoLegalMoves is fatal.
var (
	// ErrGameNotFound reports an operation on an owner with no position.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameOver reports a mutation attempted on a terminal status.
	ErrGameOver = errors.New("game is over")
	// ErrNotYourTurn reports a human move when it is not White's turn.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrInvalidSquare reports a coordinate outside [0, 64).
	ErrInvalidSquare = errors.New("invalid square")
	// ErrNoPiece reports an empty origin square.
	ErrNoPiece = errors.New("no piece on square")
	// ErrWrongColor reports moving a piece of the wrong color.
	ErrWrongColor = errors.New("piece belongs to the opponent")
	// ErrInvalidMove reports a move failing pseudo-legality or king safety.
	ErrInvalidMove = errors.New("invalid move")
	// ErrInvalidPromotion reports a missing or spurious promotion type.
	ErrInvalidPromotion = errors.New("invalid promotion")
	// ErrCannotClaimDraw reports a draw claim with no draw condition.
	ErrCannotClaimDraw = errors.New("cannot claim draw")
	// ErrNoLegalMoves is the searcher's fatal invariant failure.
	ErrNoLegalMoves = engine.ErrNoLegalMoves
)

// ErrWouldBeInCheck refines ErrInvalidMove for moves that pass piece
// geometry but leave the mover's king attacked. errors.Is matches it
// against both sentinels.
var ErrWouldBeInCheck = fmt.Errorf("%w: king would be in check", ErrInvalidMove)
