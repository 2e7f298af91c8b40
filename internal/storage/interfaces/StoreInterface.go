package interfaces

import "skillbot/internal/models"

// UserStoreInterface persists whole user records keyed by user id.
// Implementations never fail a read: an unreadable backend degrades to an
// empty collection and the fault is logged. Writes are best effort.
type UserStoreInterface interface {
	Init() error
	Get(userID string) *models.User
	Put(userID string, user *models.User)
	All() map[string]*models.User
	Achievements() map[string]any
}

type ExporterInterface interface {
	Export(prefix string, snapshot *models.Snapshot) (string, error)
}
