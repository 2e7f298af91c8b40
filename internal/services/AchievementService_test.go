package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbot/internal/models"
)

func achievementIDs(defs []models.AchievementDefinition) []string {
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestAchievementService_NewUserFirstSkill(t *testing.T) {
	f := newFixture()
	assert.Empty(t, f.achievements.CheckAchievements("u1"))

	require.True(t, f.skills.AddSkill("u1", "Python", "Programming"))
	awarded := f.achievements.CheckAchievements("u1")
	assert.Equal(t, []string{"first_skill"}, achievementIDs(awarded))

	user := f.skills.GetUser("u1")
	assert.Equal(t, 10, user.TotalPoints)
	assert.Equal(t, []string{"first_skill"}, user.Achievements)
}

func TestAchievementService_IsIdempotent(t *testing.T) {
	f := newFixture()
	require.True(t, f.skills.AddSkill("u1", "Python", "Programming"))
	require.Len(t, f.achievements.CheckAchievements("u1"), 1)
	puts := f.store.PutCalls

	assert.Empty(t, f.achievements.CheckAchievements("u1"))
	assert.Empty(t, f.achievements.CheckAchievements("u1"))
	assert.Equal(t, puts, f.store.PutCalls)

	user := f.skills.GetUser("u1")
	assert.Equal(t, 10, user.TotalPoints)
	assert.Len(t, user.Achievements, 1)
}

func TestAchievementService_BatchAwardInCatalogOrder(t *testing.T) {
	f := newFixture()
	require.True(t, f.skills.AddSkill("u1", "Python", "Programming"))
	require.True(t, f.skills.AddSkill("u1", "Guitar", "Music"))
	require.True(t, f.skills.AddSkill("u1", "English", "Languages"))
	puts := f.store.PutCalls

	awarded := f.achievements.CheckAchievements("u1")
	assert.Equal(t, []string{"first_skill", "multiple_skills"}, achievementIDs(awarded))
	assert.Equal(t, puts+1, f.store.PutCalls)

	user := f.skills.GetUser("u1")
	assert.Equal(t, 35, user.TotalPoints)
	assert.Equal(t, 1, f.metrics.AchievementsAwarded["first_skill"])
	assert.Equal(t, 1, f.metrics.AchievementsAwarded["multiple_skills"])
}

func TestAchievementService_StreakJumpAwardsAllThresholds(t *testing.T) {
	f := newFixture()
	user := models.NewUser(baseTime)
	skill := models.NewSkill("Running", "Sports", baseTime)
	skill.Streak = 30
	skill.BestStreak = 30
	user.Skills["running"] = skill
	user.Achievements = []string{"first_skill"}
	user.TotalPoints = 10
	f.store.Seed("u1", user)

	awarded := f.achievements.CheckAchievements("u1")
	assert.Equal(t, []string{"streak_3", "streak_7", "streak_30"}, achievementIDs(awarded))

	stored := f.skills.GetUser("u1")
	assert.Equal(t, 10+15+50+200, stored.TotalPoints)
	assert.Equal(t, []string{"first_skill", "streak_3", "streak_7", "streak_30"}, stored.Achievements)
}

func TestAchievementService_StreakUsesCurrentNotBest(t *testing.T) {
	f := newFixture()
	user := models.NewUser(baseTime)
	skill := models.NewSkill("Running", "Sports", baseTime)
	skill.Streak = 1
	skill.BestStreak = 10
	user.Skills["running"] = skill
	user.Achievements = []string{"first_skill"}
	f.store.Seed("u1", user)

	assert.Empty(t, f.achievements.CheckAchievements("u1"))
}

func TestAchievementService_Tips(t *testing.T) {
	f := newFixture()
	user := models.NewUser(baseTime)
	user.Statistics.TipsReceived = 25
	f.store.Seed("u1", user)

	awarded := f.achievements.CheckAchievements("u1")
	assert.Equal(t, []string{"first_tip", "tips_fan"}, achievementIDs(awarded))
	assert.Equal(t, 35, f.skills.GetUser("u1").TotalPoints)
}

func TestAchievementService_GetUserAchievements(t *testing.T) {
	f := newFixture()
	user := models.NewUser(baseTime)
	user.Achievements = []string{"first_tip", "first_skill", "retired_badge"}
	user.TotalPoints = 15
	f.store.Seed("u1", user)

	overview := f.achievements.GetUserAchievements("u1")
	assert.Equal(t, []string{"first_tip", "first_skill"}, achievementIDs(overview.Earned))
	assert.Equal(t, []string{"multiple_skills", "streak_3", "streak_7", "streak_30", "tips_fan"}, achievementIDs(overview.Locked))
	assert.Equal(t, 2, overview.EarnedCount)
	assert.Equal(t, 7, overview.Total)
	assert.Equal(t, 15, overview.Points)
}

func TestAchievementService_GetAchievementProgress(t *testing.T) {
	f := newFixture()
	require.True(t, f.skills.AddSkill("u1", "Python", "Programming"))
	require.True(t, f.skills.AddSkill("u1", "Guitar", "Music"))
	f.skills.AddSession("u1", "python", 10, "")
	f.clock.days(1)
	f.skills.AddSession("u1", "python", 10, "")
	f.achievements.CheckAchievements("u1")

	progress := f.achievements.GetAchievementProgress("u1")
	byID := make(map[string]models.AchievementProgress, len(progress))
	for _, p := range progress {
		byID[p.Achievement.ID] = p
	}

	assert.NotContains(t, byID, "first_skill")
	assert.Equal(t, 2, byID["multiple_skills"].Current)
	assert.Equal(t, 3, byID["multiple_skills"].Target)
	assert.Equal(t, 2, byID["streak_3"].Current)
	assert.False(t, byID["streak_3"].Reached)
	assert.Equal(t, 0, byID["first_tip"].Current)
	assert.Len(t, progress, 6)
}
