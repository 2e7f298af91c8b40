package services

import (
	"skillbot/internal/models"
	"skillbot/internal/providers"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

type AchievementServiceInterface interface {
	CheckAchievements(userID string) []models.AchievementDefinition
	GetUserAchievements(userID string) *models.AchievementsOverview
	GetAchievementProgress(userID string) []models.AchievementProgress
}

type AchievementService struct {
	catalog models.Catalog
	store   interfaces.UserStoreInterface
	locks   *UserLocks
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewAchievementService(conf *structures.Config, store interfaces.UserStoreInterface, locks *UserLocks, logger providers.Logger, metrics providers.MetricsProviderInterface) AchievementServiceInterface {
	return &AchievementService{
		catalog: conf.Catalog,
		store:   store,
		locks:   locks,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckAchievements evaluates the catalog in order, awards every newly
// qualifying definition in one batch and returns them. Held ids are skipped,
// so repeated calls never award twice.
func (s *AchievementService) CheckAchievements(userID string) []models.AchievementDefinition {
	unlock := s.locks.Lock(userID)
	defer unlock()

	user := s.store.Get(userID)
	awarded := make([]models.AchievementDefinition, 0)
	for _, def := range s.catalog.Achievements {
		if user.HasAchievement(def.ID) {
			continue
		}
		if def.Qualifies(user) {
			awarded = append(awarded, def)
		}
	}
	if len(awarded) == 0 {
		return awarded
	}

	for _, def := range awarded {
		user.Achievements = append(user.Achievements, def.ID)
		user.TotalPoints += def.Points
		s.metrics.IncAchievementsAwarded(def.ID)
		s.logger.Infof(providers.TypeApp, "User %s earned %s (+%d)", userID, def.ID, def.Points)
	}
	s.store.Put(userID, user)
	return awarded
}

func (s *AchievementService) GetUserAchievements(userID string) *models.AchievementsOverview {
	user := s.store.Get(userID)
	overview := &models.AchievementsOverview{
		Earned: make([]models.AchievementDefinition, 0, len(user.Achievements)),
		Locked: make([]models.AchievementDefinition, 0),
		Total:  len(s.catalog.Achievements),
		Points: user.TotalPoints,
	}
	for _, id := range user.Achievements {
		if def, ok := s.catalog.Achievement(id); ok {
			overview.Earned = append(overview.Earned, def)
		}
	}
	for _, def := range s.catalog.Achievements {
		if !user.HasAchievement(def.ID) {
			overview.Locked = append(overview.Locked, def)
		}
	}
	overview.EarnedCount = len(overview.Earned)
	return overview
}

// GetAchievementProgress reports the current metric value against the
// threshold of every definition the user does not hold yet.
func (s *AchievementService) GetAchievementProgress(userID string) []models.AchievementProgress {
	user := s.store.Get(userID)
	progress := make([]models.AchievementProgress, 0)
	for _, def := range s.catalog.Achievements {
		if user.HasAchievement(def.ID) {
			continue
		}
		current := def.Metric.Value(user)
		progress = append(progress, models.AchievementProgress{
			Achievement: def,
			Current:     current,
			Target:      def.Threshold,
			Reached:     current >= def.Threshold,
		})
	}
	return progress
}
