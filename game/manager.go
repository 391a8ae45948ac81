package game

import (
	"sync"

	"github.com/google/uuid"

	"chess-core/engine"
	"chess-core/rules"
)

// Manager is the owner-keyed position store. Each owner has at most one
// game; operations on distinct owners are isolated, operations on one
// owner are mutually exclusive.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*session
	stats StatsRecorder
}

// session pairs one owner's position with its lock. The position
// pointer is swapped atomically on success, so readers never observe a
// half-applied transaction.
type session struct {
	mu  sync.Mutex
	id  string
	pos *rules.Position
}

// NewManager returns an empty manager with no stats recorder.
func NewManager() *Manager {
	return &Manager{games: make(map[string]*session)}
}

// SetStats installs a recorder notified on each terminal transition.
func (m *Manager) SetStats(rec StatsRecorder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = rec
}

// NewGame initializes or replaces the owner's position with the
// starting layout and returns a snapshot of it.
func (m *Manager) NewGame(owner string) Snapshot {
	s := &session{id: uuid.NewString(), pos: rules.NewPosition()}
	m.mu.Lock()
	m.games[owner] = s
	m.mu.Unlock()
	return snapshotOf(s)
}

// HasGame reports whether a position exists for the owner.
func (m *Manager) HasGame(owner string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.games[owner]
	return ok
}

func (m *Manager) get(owner string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[owner]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// MakeMove validates and applies the human move and, if the game is
// still active, computes and applies the engine's reply. The whole
// transaction works on a clone and commits only on full success; on any
// error the prior position is intact.
func (m *Manager) MakeMove(owner string, from, to rules.Square, promotion rules.PieceType) (Snapshot, error) {
	s, err := m.get(owner)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pos
	if p.Status.Terminal() {
		return Snapshot{}, ErrGameOver
	}
	if !p.WhiteToMove {
		return Snapshot{}, ErrNotYourTurn
	}
	if !from.Valid() || !to.Valid() {
		return Snapshot{}, ErrInvalidSquare
	}
	piece := p.Board.PieceAt(from)
	if piece == rules.NoPiece {
		return Snapshot{}, ErrNoPiece
	}
	if piece.IsBlack() {
		return Snapshot{}, ErrWrongColor
	}
	if p.Board.PromotionRequired(from, to) {
		if promotion < rules.PieceTypeKnight || promotion > rules.PieceTypeQueen {
			return Snapshot{}, ErrInvalidPromotion
		}
	} else if promotion != rules.PieceTypeNone {
		return Snapshot{}, ErrInvalidPromotion
	}
	if !p.Board.IsPseudoLegal(from, to, promotion) {
		return Snapshot{}, ErrInvalidMove
	}
	if !p.Board.KingSafeAfter(from, to, promotion) {
		return Snapshot{}, ErrWouldBeInCheck
	}

	next := p.Clone()
	next.Make(from, to, promotion)
	if next.Status == rules.Active {
		reply, err := engine.ChooseReply(next)
		if err != nil {
			return Snapshot{}, err
		}
		next.Make(reply.From, reply.To, reply.Promotion)
	}

	s.pos = next
	m.recordTerminal(owner, next.Status)
	return snapshotOf(s), nil
}

// Resign ends the owner's game in the opponent's favor; the human plays
// White, so the result is a Black win.
func (m *Manager) Resign(owner string) (Snapshot, error) {
	s, err := m.get(owner)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos.Status.Terminal() {
		return Snapshot{}, ErrGameOver
	}
	next := s.pos.Clone()
	next.Status = rules.BlackWin
	s.pos = next
	m.recordTerminal(owner, next.Status)
	return snapshotOf(s), nil
}

// ClaimDraw ends the game in a draw if the fifty-move rule or
// insufficient material holds.
func (m *Manager) ClaimDraw(owner string) (Snapshot, error) {
	s, err := m.get(owner)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pos
	// The termination detector already draws these positions on the
	// mutation that reached them; claiming then is a no-op success.
	if p.Status == rules.Draw {
		return snapshotOf(s), nil
	}
	if p.Status.Terminal() {
		return Snapshot{}, ErrGameOver
	}
	if p.HalfMoveClock < 100 && !p.Board.InsufficientMaterial() {
		return Snapshot{}, ErrCannotClaimDraw
	}
	next := p.Clone()
	next.Status = rules.Draw
	s.pos = next
	m.recordTerminal(owner, next.Status)
	return snapshotOf(s), nil
}

func (m *Manager) recordTerminal(owner string, status rules.Status) {
	if !status.Terminal() {
		return
	}
	m.mu.RLock()
	rec := m.stats
	m.mu.RUnlock()
	if rec != nil {
		rec.Record(owner, status)
	}
}
