package models

import (
	"slices"
	"time"
)

type UserStatistics struct {
	TotalSessions       int `json:"total_sessions"`
	TotalTimeMinutes    int `json:"total_time_minutes"`
	TipsReceived        int `json:"tips_received"`
	MotivationsReceived int `json:"motivations_received"`
}

type User struct {
	Skills       map[string]*Skill `json:"skills"`
	TotalPoints  int               `json:"total_points"`
	Achievements []string          `json:"achievements"`
	CreatedAt    time.Time         `json:"created_at"`
	LastActive   time.Time         `json:"last_active"`
	Statistics   UserStatistics    `json:"statistics"`
}

func NewUser(now time.Time) *User {
	return &User{
		Skills:       make(map[string]*Skill),
		Achievements: make([]string, 0),
		CreatedAt:    now,
		LastActive:   now,
	}
}

// Normalize fills collections that may be null in older records.
func (u *User) Normalize() {
	if u.Skills == nil {
		u.Skills = make(map[string]*Skill)
	}
	if u.Achievements == nil {
		u.Achievements = make([]string, 0)
	}
	for key, s := range u.Skills {
		if s == nil {
			delete(u.Skills, key)
			continue
		}
		if s.Notes == nil {
			s.Notes = make([]Note, 0)
		}
	}
}

func (u *User) HasAchievement(id string) bool {
	return slices.Contains(u.Achievements, id)
}

func (u *User) MaxStreak() int {
	best := 0
	for _, s := range u.Skills {
		best = max(best, s.Streak)
	}
	return best
}

func (u *User) BestStreak() int {
	best := 0
	for _, s := range u.Skills {
		best = max(best, s.BestStreak)
	}
	return best
}

func (u *User) ActiveStreaks() int {
	n := 0
	for _, s := range u.Skills {
		if s.Streak > 0 {
			n++
		}
	}
	return n
}
