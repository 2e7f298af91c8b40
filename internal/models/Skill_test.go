package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var modelTime = time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)

func TestSkillKey(t *testing.T) {
	assert.Equal(t, "guitar", SkillKey("  Guitar "))
	assert.Equal(t, "английский", SkillKey("Английский"))
	assert.Equal(t, "", SkillKey("   "))
}

func TestNewSkill(t *testing.T) {
	s := NewSkill("Guitar", "Music", modelTime)

	assert.Equal(t, "Guitar", s.Name)
	assert.Equal(t, "Music", s.Category)
	assert.Equal(t, modelTime, s.CreatedAt)
	assert.Nil(t, s.LastSession)
	assert.NotNil(t, s.Notes)
	assert.Empty(t, s.Notes)
}

func TestSkill_GoalProgress(t *testing.T) {
	s := NewSkill("Guitar", "", modelTime)
	assert.Zero(t, s.GoalProgress())

	s.GoalMinutes = 200
	s.TotalTimeMinutes = 50
	assert.InDelta(t, 25.0, s.GoalProgress(), 0.0001)

	s.TotalTimeMinutes = 500
	assert.Equal(t, 100.0, s.GoalProgress())
}

func TestSkill_AverageSession(t *testing.T) {
	s := NewSkill("Guitar", "", modelTime)
	assert.Zero(t, s.AverageSession())

	s.Sessions = 3
	s.TotalTimeMinutes = 100
	assert.InDelta(t, 33.333, s.AverageSession(), 0.001)
}

func TestSkill_RecentNotes(t *testing.T) {
	s := NewSkill("Guitar", "", modelTime)
	for i := range 7 {
		s.Notes = append(s.Notes, Note{Date: modelTime.Add(time.Duration(i) * time.Hour), Note: string(rune('a' + i)), Minutes: 10})
	}

	recent := s.RecentNotes(5)
	assert.Len(t, recent, 5)
	assert.Equal(t, "g", recent[0].Note)
	assert.Equal(t, "c", recent[4].Note)
	assert.Equal(t, "a", s.Notes[0].Note, "stored order is untouched")

	assert.Len(t, s.RecentNotes(10), 7)
	assert.Empty(t, NewSkill("Piano", "", modelTime).RecentNotes(5))
}
