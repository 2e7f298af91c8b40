package services

import (
	"cmp"
	"slices"
	"time"

	"skillbot/internal/models"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

const popularCategoriesLimit = 5

// Trailing windows for fleet activity.
const (
	activeDay   = 24 * time.Hour
	activeWeek  = 7 * 24 * time.Hour
	activeMonth = 30 * 24 * time.Hour
)

// StatisticServiceInterface computes read-only reports. Every call rescans the store.
type StatisticServiceInterface interface {
	UserStatistics(userID string) *models.UserReport
	SkillStatistics(userID, key string) (*models.SkillReport, error)
	FleetStatistics() *models.FleetReport
	Activity() *models.ActivityReport
	AchievementAdoption() *models.AdoptionReport
	TopUsers(n int) []models.TopUser
}

type StatisticService struct {
	catalog models.Catalog
	store   interfaces.UserStoreInterface
	loc     *time.Location
	now     func() time.Time
}

func NewStatisticService(conf *structures.Config, store interfaces.UserStoreInterface) StatisticServiceInterface {
	return &StatisticService{
		catalog: conf.Catalog,
		store:   store,
		loc:     conf.Location(),
		now:     time.Now,
	}
}

func (ss *StatisticService) UserStatistics(userID string) *models.UserReport {
	user := ss.store.Get(userID)
	days := inclusiveDays(user.CreatedAt, ss.now(), ss.loc)

	report := &models.UserReport{
		DaysRegistered:      days,
		TotalSkills:         len(user.Skills),
		ActiveStreaks:       user.ActiveStreaks(),
		BestStreak:          user.BestStreak(),
		TotalPoints:         user.TotalPoints,
		Achievements:        len(user.Achievements),
		TotalSessions:       user.Statistics.TotalSessions,
		TotalTimeMinutes:    user.Statistics.TotalTimeMinutes,
		SessionsPerDay:      float64(user.Statistics.TotalSessions) / float64(days),
		TipsReceived:        user.Statistics.TipsReceived,
		MotivationsReceived: user.Statistics.MotivationsReceived,
		Ranking:             rankSkills(user.Skills),
	}
	if user.Statistics.TotalSessions > 0 {
		report.AverageSession = float64(user.Statistics.TotalTimeMinutes) / float64(user.Statistics.TotalSessions)
	}
	return report
}

// rankSkills orders skills by practiced time, most first. Ties keep
// creation order.
func rankSkills(skills map[string]*models.Skill) []models.SkillShare {
	keys := make([]string, 0, len(skills))
	total := 0
	for k, s := range skills {
		keys = append(keys, k)
		total += s.TotalTimeMinutes
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		sa, sb := skills[a], skills[b]
		if c := cmp.Compare(sb.TotalTimeMinutes, sa.TotalTimeMinutes); c != 0 {
			return c
		}
		if c := sa.CreatedAt.Compare(sb.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	ranking := make([]models.SkillShare, 0, len(keys))
	for _, k := range keys {
		s := skills[k]
		share := 0.0
		if total > 0 {
			share = float64(s.TotalTimeMinutes) / float64(total) * 100
		}
		ranking = append(ranking, models.SkillShare{
			Key:              k,
			Name:             s.Name,
			TotalTimeMinutes: s.TotalTimeMinutes,
			Share:            share,
		})
	}
	return ranking
}

func (ss *StatisticService) SkillStatistics(userID, key string) (*models.SkillReport, error) {
	key = models.SkillKey(key)
	skill, ok := ss.store.Get(userID).Skills[key]
	if !ok {
		return nil, ErrSkillNotFound
	}

	days := inclusiveDays(skill.CreatedAt, ss.now(), ss.loc)
	return &models.SkillReport{
		Key:              key,
		Name:             skill.Name,
		Category:         skill.Category,
		TotalTimeMinutes: skill.TotalTimeMinutes,
		Sessions:         skill.Sessions,
		AverageSession:   skill.AverageSession(),
		Streak:           skill.Streak,
		BestStreak:       skill.BestStreak,
		DaysTracked:      days,
		Consistency:      float64(skill.Sessions) / float64(days) * 100,
		GoalMinutes:      skill.GoalMinutes,
		GoalProgress:     skill.GoalProgress(),
		GoalReached:      skill.GoalMinutes > 0 && skill.TotalTimeMinutes >= skill.GoalMinutes,
		LastSession:      skill.LastSession,
		RecentNotes:      skill.RecentNotes(3),
	}, nil
}

func (ss *StatisticService) FleetStatistics() *models.FleetReport {
	users := ss.store.All()
	weekAgo := ss.now().Add(-activeWeek)

	report := &models.FleetReport{TotalUsers: len(users)}
	categories := make(map[string]int)
	for _, u := range users {
		report.TotalSkills += len(u.Skills)
		report.TotalSessions += u.Statistics.TotalSessions
		report.TotalTimeMinutes += u.Statistics.TotalTimeMinutes
		if u.LastActive.After(weekAgo) {
			report.ActiveUsers++
		}
		for _, s := range u.Skills {
			category := s.Category
			if category == "" {
				category = "Other"
			}
			categories[category]++
		}
	}

	popular := make([]models.CategoryCount, 0, len(categories))
	for c, n := range categories {
		popular = append(popular, models.CategoryCount{Category: c, Skills: n})
	}
	slices.SortFunc(popular, func(a, b models.CategoryCount) int {
		if c := cmp.Compare(b.Skills, a.Skills); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	if len(popular) > popularCategoriesLimit {
		popular = popular[:popularCategoriesLimit]
	}
	report.PopularCategories = popular

	if report.TotalUsers > 0 {
		report.AvgSkillsPerUser = float64(report.TotalSkills) / float64(report.TotalUsers)
		report.AvgSessionsPerUser = float64(report.TotalSessions) / float64(report.TotalUsers)
	}
	return report
}

func (ss *StatisticService) Activity() *models.ActivityReport {
	users := ss.store.All()
	now := ss.now()
	dayAgo, weekAgo, monthAgo := now.Add(-activeDay), now.Add(-activeWeek), now.Add(-activeMonth)

	report := &models.ActivityReport{TotalUsers: len(users)}
	for _, u := range users {
		if u.LastActive.After(dayAgo) {
			report.ActiveToday++
		}
		if u.LastActive.After(weekAgo) {
			report.ActiveWeek++
		}
		if u.LastActive.After(monthAgo) {
			report.ActiveMonth++
		}
		for _, s := range u.Skills {
			if s.LastSession == nil {
				continue
			}
			if s.LastSession.After(dayAgo) {
				report.SessionsToday++
			}
			if s.LastSession.After(weekAgo) {
				report.SessionsWeek++
			}
		}
	}
	if report.TotalUsers > 0 {
		report.RetentionWeek = float64(report.ActiveWeek) / float64(report.TotalUsers) * 100
		report.RetentionMonth = float64(report.ActiveMonth) / float64(report.TotalUsers) * 100
	}
	return report
}

// AchievementAdoption counts holders per catalog definition, most held first.
func (ss *StatisticService) AchievementAdoption() *models.AdoptionReport {
	users := ss.store.All()
	counts := make(map[string]int)
	report := &models.AdoptionReport{TotalUsers: len(users)}
	for _, u := range users {
		report.TotalPoints += u.TotalPoints
		for _, id := range u.Achievements {
			counts[id]++
		}
	}

	entries := make([]models.AdoptionEntry, 0, len(ss.catalog.Achievements))
	for _, def := range ss.catalog.Achievements {
		entry := models.AdoptionEntry{Achievement: def, Count: counts[def.ID]}
		if report.TotalUsers > 0 {
			entry.Percentage = float64(entry.Count) / float64(report.TotalUsers) * 100
		}
		entries = append(entries, entry)
	}
	slices.SortStableFunc(entries, func(a, b models.AdoptionEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	report.Entries = entries
	return report
}

func (ss *StatisticService) TopUsers(n int) []models.TopUser {
	users := ss.store.All()
	top := make([]models.TopUser, 0, len(users))
	for id, u := range users {
		top = append(top, models.TopUser{
			UserID:           id,
			TotalTimeMinutes: u.Statistics.TotalTimeMinutes,
			TotalSessions:    u.Statistics.TotalSessions,
			TotalPoints:      u.TotalPoints,
			Skills:           len(u.Skills),
		})
	}
	slices.SortFunc(top, func(a, b models.TopUser) int {
		if c := cmp.Compare(b.TotalTimeMinutes, a.TotalTimeMinutes); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}
