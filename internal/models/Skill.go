package models

import (
	"sort"
	"strings"
	"time"
)

type Note struct {
	Date    time.Time `json:"date"`
	Note    string    `json:"note"`
	Minutes int       `json:"minutes"`
}

type Skill struct {
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	CreatedAt        time.Time  `json:"created_at"`
	TotalTimeMinutes int        `json:"total_time_minutes"`
	Sessions         int        `json:"sessions"`
	Streak           int        `json:"streak"`
	BestStreak       int        `json:"best_streak"`
	LastSession      *time.Time `json:"last_session"`
	GoalMinutes      int        `json:"goal_minutes"`
	Notes            []Note     `json:"notes"`
}

// SkillKey normalizes a display name into the per-user lookup key.
func SkillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func NewSkill(name, category string, now time.Time) *Skill {
	return &Skill{
		Name:      name,
		Category:  category,
		CreatedAt: now,
		Notes:     make([]Note, 0),
	}
}

// GoalProgress returns the share of the goal reached, clamped to [0, 100].
// A skill without a goal reports 0.
func (s *Skill) GoalProgress() float64 {
	if s.GoalMinutes <= 0 {
		return 0
	}
	progress := float64(s.TotalTimeMinutes) / float64(s.GoalMinutes) * 100
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

func (s *Skill) AverageSession() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.TotalTimeMinutes) / float64(s.Sessions)
}

// RecentNotes returns up to n notes, newest first.
func (s *Skill) RecentNotes(n int) []Note {
	notes := make([]Note, len(s.Notes))
	copy(notes, s.Notes)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Date.After(notes[j].Date)
	})
	if len(notes) > n {
		notes = notes[:n]
	}
	return notes
}
