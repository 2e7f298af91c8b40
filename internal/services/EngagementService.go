package services

import (
	"math/rand/v2"

	"skillbot/internal/models"
	"skillbot/internal/providers"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

type EngagementServiceInterface interface {
	GetTip(userID, key string) (*models.TipResult, error)
	GetMotivation(userID string) string
	GetMaterials(userID, key string) ([]string, error)
	Categories() []models.Category
}

type EngagementService struct {
	catalog      models.Catalog
	store        interfaces.UserStoreInterface
	locks        *UserLocks
	achievements AchievementServiceInterface
	logger       providers.Logger
	pick         func(n int) int
}

func NewEngagementService(conf *structures.Config, store interfaces.UserStoreInterface, locks *UserLocks, achievements AchievementServiceInterface, logger providers.Logger) EngagementServiceInterface {
	return &EngagementService{
		catalog:      conf.Catalog,
		store:        store,
		locks:        locks,
		achievements: achievements,
		logger:       logger,
		pick:         rand.IntN,
	}
}

// GetTip hands out a tip for the given skill, or a general one when key is
// empty, counts it and then runs the achievement check.
func (s *EngagementService) GetTip(userID, key string) (*models.TipResult, error) {
	key = models.SkillKey(key)

	unlock := s.locks.Lock(userID)
	user := s.store.Get(userID)

	bank := s.catalog.Tips[models.DefaultBank]
	skillName := ""
	if key != "" {
		skill, ok := user.Skills[key]
		if !ok {
			unlock()
			return nil, ErrSkillNotFound
		}
		skillName = skill.Name
		bank = s.catalog.TipsFor(skill.Name)
	}

	user.Statistics.TipsReceived++
	s.store.Put(userID, user)
	unlock()

	return &models.TipResult{
		Tip:             s.choose(bank),
		Skill:           skillName,
		NewAchievements: s.achievements.CheckAchievements(userID),
	}, nil
}

func (s *EngagementService) GetMotivation(userID string) string {
	unlock := s.locks.Lock(userID)
	defer unlock()

	user := s.store.Get(userID)
	user.Statistics.MotivationsReceived++
	s.store.Put(userID, user)
	return s.choose(s.catalog.Motivations)
}

func (s *EngagementService) GetMaterials(userID, key string) ([]string, error) {
	skill, ok := s.store.Get(userID).Skills[models.SkillKey(key)]
	if !ok {
		return nil, ErrSkillNotFound
	}
	return s.catalog.MaterialsFor(skill.Name), nil
}

func (s *EngagementService) Categories() []models.Category {
	return s.catalog.Categories
}

func (s *EngagementService) choose(bank []string) string {
	if len(bank) == 0 {
		return ""
	}
	return bank[s.pick(len(bank))]
}
