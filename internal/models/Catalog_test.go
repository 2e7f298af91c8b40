package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Valid(t *testing.T) {
	c := DefaultCatalog().WithDefaults()
	require.NoError(t, c.Validate())

	ids := make([]string, len(c.Achievements))
	for i, a := range c.Achievements {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"first_skill", "multiple_skills", "streak_3", "streak_7", "streak_30", "first_tip", "tips_fan"}, ids)
}

func TestCatalog_WithDefaultsKeepsCustomSections(t *testing.T) {
	c := Catalog{
		Achievements: []AchievementDefinition{
			{ID: "marathon", Name: "Marathon", Points: 100, Metric: MetricTotalMinutes, Threshold: 6000},
		},
		Tips: map[string][]string{"chess": {"Study endgames first."}},
	}.WithDefaults()

	require.Len(t, c.Achievements, 1)
	assert.NotEmpty(t, c.Categories)
	assert.NotEmpty(t, c.Motivations)
	assert.Equal(t, []string{"Study endgames first."}, c.TipsFor("Chess"))
	assert.Equal(t, DefaultCatalog().Tips[DefaultBank], c.TipsFor("Piano"))
	assert.Equal(t, DefaultCatalog().Materials[DefaultBank], c.MaterialsFor("Piano"))

	def, ok := c.Achievement("marathon")
	assert.True(t, ok)
	assert.Equal(t, 100, def.Points)
	_, ok = c.Achievement("first_skill")
	assert.False(t, ok)
}

func TestCatalog_Validate(t *testing.T) {
	c := Catalog{Achievements: []AchievementDefinition{
		{ID: "a", Metric: MetricSkillCount, Threshold: 1},
		{ID: "a", Metric: MetricSkillCount, Threshold: 1},
		{ID: "", Metric: MetricSkillCount, Threshold: 1},
		{ID: "b", Metric: "karma", Threshold: 1},
		{ID: "c", Metric: MetricMaxStreak, Threshold: 0},
		{ID: "d", Metric: MetricMaxStreak, Threshold: 1, Points: -1},
	}}

	err := c.Validate()
	require.Error(t, err)
	for _, part := range []string{`duplicate achievement id "a"`, "empty id", `unknown metric "karma"`, "threshold must be positive", "negative points"} {
		assert.ErrorContains(t, err, part)
	}
}

func TestAchievementMetric_Value(t *testing.T) {
	u := NewUser(modelTime)
	u.Skills["go"] = &Skill{Streak: 5}
	u.Skills["chess"] = &Skill{Streak: 2}
	u.Statistics = UserStatistics{TotalSessions: 12, TotalTimeMinutes: 340, TipsReceived: 4}

	assert.Equal(t, 2, MetricSkillCount.Value(u))
	assert.Equal(t, 5, MetricMaxStreak.Value(u))
	assert.Equal(t, 4, MetricTipsReceived.Value(u))
	assert.Equal(t, 12, MetricTotalSessions.Value(u))
	assert.Equal(t, 340, MetricTotalMinutes.Value(u))
	assert.Zero(t, AchievementMetric("karma").Value(u))

	def := AchievementDefinition{Metric: MetricMaxStreak, Threshold: 5}
	assert.True(t, def.Qualifies(u))
	def.Threshold = 6
	assert.False(t, def.Qualifies(u))
}

func TestNewSnapshot(t *testing.T) {
	empty := NewSnapshot(nil, nil, modelTime)
	assert.NotNil(t, empty.Users)
	assert.NotNil(t, empty.Achievements)
	assert.Zero(t, empty.TotalUsers)

	snap := NewSnapshot(map[string]*User{"1": NewUser(modelTime), "2": NewUser(modelTime)}, nil, modelTime)
	assert.Equal(t, 2, snap.TotalUsers)
	assert.Equal(t, modelTime, snap.ExportDate)
}
