package services

import (
	"time"

	"skillbot/internal/models"
	"skillbot/internal/structures"
	"skillbot/internal/testutil"
)

var baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func (c *testClock) days(n int) { c.advance(time.Duration(n) * 24 * time.Hour) }

func testConfig() *structures.Config {
	return &structures.Config{
		Storage: structures.StorageConfig{Timezone: "UTC"},
		Admin:   structures.AdminConfig{IDs: []string{"42"}},
		Limits: structures.LimitsConfig{
			SessionMinMinutes: 1,
			SessionMaxMinutes: 600,
			GoalMinMinutes:    1,
			GoalMaxMinutes:    10000,
			SkillNameMin:      2,
			SkillNameMax:      50,
			TopUsers:          10,
		},
		Catalog: models.DefaultCatalog().WithDefaults(),
	}
}

type fixture struct {
	clock        *testClock
	store        *testutil.MockUserStore
	logger       *testutil.MockLogger
	metrics      *testutil.MockMetrics
	locks        *UserLocks
	skills       *SkillService
	achievements *AchievementService
	engagement   *EngagementService
	stats        *StatisticService
}

func newFixture() *fixture {
	conf := testConfig()
	f := &fixture{
		clock:   &testClock{t: baseTime},
		store:   testutil.NewMockUserStore(),
		logger:  &testutil.MockLogger{},
		metrics: &testutil.MockMetrics{},
		locks:   NewUserLocks(),
	}
	f.store.Now = f.clock.now

	f.skills = NewSkillService(conf, f.store, f.locks, f.logger, f.metrics).(*SkillService)
	f.skills.now = f.clock.now

	f.achievements = NewAchievementService(conf, f.store, f.locks, f.logger, f.metrics).(*AchievementService)

	f.engagement = NewEngagementService(conf, f.store, f.locks, f.achievements, f.logger).(*EngagementService)
	f.engagement.pick = func(int) int { return 0 }

	f.stats = NewStatisticService(conf, f.store).(*StatisticService)
	f.stats.now = f.clock.now
	return f
}
