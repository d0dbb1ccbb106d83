// Package session keeps the short-lived checkout context of each kiosk interaction in memory.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/keymutex"
)

const DefaultTTL = 30 * time.Minute

type Store struct {
	mu       sync.Mutex
	sessions map[string]*domain.PaymentSession
	ttl      time.Duration
	now      func() time.Time
	locks    *keymutex.KeyMutex
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*domain.PaymentSession),
		ttl:      ttl,
		now:      time.Now,
		locks:    keymutex.New(),
	}
}

// Create stores a copy of s under a fresh identifier and returns the stored session.
func (st *Store) Create(s domain.PaymentSession) domain.PaymentSession {
	s.ID = uuid.NewString()
	s.CreatedAt = st.now()

	st.mu.Lock()
	st.sessions[s.ID] = &s
	st.mu.Unlock()

	zap.L().Debug("payment session created", zap.String("session_id", s.ID), zap.String("payer", s.Payer.ID))
	return s
}

// Get returns the session unless it is unknown or older than the TTL. Expired entries are evicted.
func (st *Store) Get(id string) (domain.PaymentSession, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return domain.PaymentSession{}, false
	}
	if st.expired(s) {
		delete(st.sessions, id)
		zap.L().Debug("payment session expired", zap.String("session_id", id))
		return domain.PaymentSession{}, false
	}
	return *s, true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Lock serializes work on one session id across goroutines.
func (st *Store) Lock(id string) (unlock func()) {
	return st.locks.Lock(id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts every expired session and reports how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if st.expired(s) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				zap.L().Info("expired payment sessions evicted", zap.Int("count", n))
			}
		}
	}
}

func (st *Store) expired(s *domain.PaymentSession) bool {
	return st.now().Sub(s.CreatedAt) > st.ttl
}
