package services

import "sync"

// UserLocks hands out one mutex per user id. Every get -> mutate -> put
// sequence on a user record runs while holding that user's mutex.
type UserLocks struct {
	locks sync.Map
}

func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

func (l *UserLocks) Lock(userID string) func() {
	m, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
