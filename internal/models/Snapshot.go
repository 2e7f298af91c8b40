package models

import "time"

// Snapshot is the point-in-time export envelope for offline inspection.
type Snapshot struct {
	ExportDate   time.Time        `json:"export_date"`
	TotalUsers   int              `json:"total_users"`
	Users        map[string]*User `json:"users"`
	Achievements map[string]any   `json:"achievements"`
}

func NewSnapshot(users map[string]*User, achievements map[string]any, now time.Time) *Snapshot {
	if users == nil {
		users = make(map[string]*User)
	}
	if achievements == nil {
		achievements = make(map[string]any)
	}
	return &Snapshot{
		ExportDate:   now,
		TotalUsers:   len(users),
		Users:        users,
		Achievements: achievements,
	}
}
