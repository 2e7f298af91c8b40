package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbot/internal/models"
)

func TestEngagementService_GetTip_General(t *testing.T) {
	f := newFixture()
	catalog := models.DefaultCatalog()

	tip, err := f.engagement.GetTip("u1", "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Tips[models.DefaultBank][0], tip.Tip)
	assert.Empty(t, tip.Skill)
	assert.Equal(t, []string{"first_tip"}, achievementIDs(tip.NewAchievements))
	assert.Equal(t, 1, f.skills.GetUser("u1").Statistics.TipsReceived)
}

func TestEngagementService_GetTip_SkillBank(t *testing.T) {
	f := newFixture()
	require.True(t, f.skills.AddSkill("u1", "Python", "Programming"))

	tip, err := f.engagement.GetTip("u1", "PYTHON")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCatalog().Tips["python"][0], tip.Tip)
	assert.Equal(t, "Python", tip.Skill)
}

func TestEngagementService_GetTip_FallsBackToDefaultBank(t *testing.T) {
	f := newFixture()
	require.True(t, f.skills.AddSkill("u1", "Chess", "Sports"))

	tip, err := f.engagement.GetTip("u1", "chess")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCatalog().Tips[models.DefaultBank][0], tip.Tip)
}

func TestEngagementService_GetTip_UnknownSkill(t *testing.T) {
	f := newFixture()
	f.skills.GetUser("u1")
	puts := f.store.PutCalls

	_, err := f.engagement.GetTip("u1", "piano")
	assert.ErrorIs(t, err, ErrSkillNotFound)
	assert.Equal(t, puts, f.store.PutCalls)
	assert.Zero(t, f.skills.GetUser("u1").Statistics.TipsReceived)
}

func TestEngagementService_GetTip_TipsFan(t *testing.T) {
	f := newFixture()
	var last *models.TipResult
	for i := 0; i < 25; i++ {
		tip, err := f.engagement.GetTip("u1", "")
		require.NoError(t, err)
		last = tip
	}
	assert.Equal(t, []string{"tips_fan"}, achievementIDs(last.NewAchievements))

	user := f.skills.GetUser("u1")
	assert.Equal(t, 25, user.Statistics.TipsReceived)
	assert.Equal(t, 35, user.TotalPoints)
}

func TestEngagementService_GetMotivation(t *testing.T) {
	f := newFixture()
	line := f.engagement.GetMotivation("u1")
	assert.Equal(t, models.DefaultCatalog().Motivations[0], line)
	f.engagement.GetMotivation("u1")
	assert.Equal(t, 2, f.skills.GetUser("u1").Statistics.MotivationsReceived)
}

func TestEngagementService_GetMaterials(t *testing.T) {
	f := newFixture()
	require.True(t, f.skills.AddSkill("u1", "Python", "Programming"))
	require.True(t, f.skills.AddSkill("u1", "Piano", "Music"))
	catalog := models.DefaultCatalog()

	materials, err := f.engagement.GetMaterials("u1", "python")
	require.NoError(t, err)
	assert.Equal(t, catalog.Materials["python"], materials)

	materials, err = f.engagement.GetMaterials("u1", "piano")
	require.NoError(t, err)
	assert.Equal(t, catalog.Materials[models.DefaultBank], materials)

	_, err = f.engagement.GetMaterials("u1", "drums")
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestEngagementService_Categories(t *testing.T) {
	f := newFixture()
	categories := f.engagement.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, "Programming", categories[0].Name)
}
