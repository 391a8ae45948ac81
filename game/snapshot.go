package game

import (
	"time"

	"chess-core/rules"
)

// Snapshot is a read-only view of one owner's game. The board is the
// 64-byte wire image of §3's piece encoding; king squares use the byte
// encoding with 255 as the no-square sentinel.
type Snapshot struct {
	GameID        string
	Board         [64]byte
	WhiteToMove   bool
	Status        rules.Status
	MoveCount     uint64
	HalfMoveClock uint64
	WhiteKing     byte
	BlackKing     byte
	InCheck       bool
	History       []rules.MoveRecord
	CreatedAt     time.Time
}

// Snapshot returns the owner's current game state.
func (m *Manager) Snapshot(owner string) (Snapshot, error) {
	s, err := m.get(owner)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s), nil
}

// snapshotOf copies everything out of the session; the caller holds the
// session lock or exclusively owns it.
func snapshotOf(s *session) Snapshot {
	p := s.pos
	snap := Snapshot{
		GameID:        s.id,
		Board:         p.Board.Bytes(),
		WhiteToMove:   p.WhiteToMove,
		Status:        p.Status,
		MoveCount:     p.MoveCount,
		HalfMoveClock: p.HalfMoveClock,
		WhiteKing:     p.WhiteKing.Byte(),
		BlackKing:     p.BlackKing.Byte(),
		InCheck:       p.Board.InCheck(p.WhiteToMove),
		History:       make([]rules.MoveRecord, len(p.History)),
		CreatedAt:     p.CreatedAt,
	}
	copy(snap.History, p.History)
	return snap
}
