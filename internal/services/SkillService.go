package services

import (
	"strings"
	"time"

	"skillbot/internal/models"
	"skillbot/internal/providers"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

const (
	MinGoalMinutes = 1
	MaxGoalMinutes = 10000
)

type SkillServiceInterface interface {
	GetUser(userID string) *models.User
	AddSkill(userID, name, category string) bool
	DeleteSkill(userID, key string) bool
	SetGoal(userID, key string, minutes int) (*models.Skill, error)
	ListSkills(userID string) map[string]*models.Skill
	GetSkill(userID, key string) (*models.Skill, bool)
	AddSession(userID, key string, minutes int, note string) int
}

type SkillService struct {
	store   interfaces.UserStoreInterface
	locks   *UserLocks
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	loc     *time.Location
	now     func() time.Time
}

func NewSkillService(conf *structures.Config, store interfaces.UserStoreInterface, locks *UserLocks, logger providers.Logger, metrics providers.MetricsProviderInterface) SkillServiceInterface {
	return &SkillService{
		store:   store,
		locks:   locks,
		logger:  logger,
		metrics: metrics,
		loc:     conf.Location(),
		now:     time.Now,
	}
}

func (s *SkillService) GetUser(userID string) *models.User {
	return s.store.Get(userID)
}

// AddSkill creates a zeroed skill under the case-folded name. It reports
// false and changes nothing when the user already tracks that key.
func (s *SkillService) AddSkill(userID, name, category string) bool {
	name = strings.TrimSpace(name)
	key := models.SkillKey(name)
	if key == "" {
		return false
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	user := s.store.Get(userID)
	if _, ok := user.Skills[key]; ok {
		return false
	}
	user.Skills[key] = models.NewSkill(name, category, s.now())
	s.store.Put(userID, user)
	s.logger.Infof(providers.TypeApp, "User %s added skill %q (%s)", userID, key, category)
	return true
}

// DeleteSkill removes the skill and all of its history. The result tells
// whether the key existed.
func (s *SkillService) DeleteSkill(userID, key string) bool {
	key = models.SkillKey(key)

	unlock := s.locks.Lock(userID)
	defer unlock()

	user := s.store.Get(userID)
	_, existed := user.Skills[key]
	delete(user.Skills, key)
	s.store.Put(userID, user)
	if existed {
		s.logger.Infof(providers.TypeApp, "User %s deleted skill %q", userID, key)
	}
	return existed
}

func (s *SkillService) SetGoal(userID, key string, minutes int) (*models.Skill, error) {
	if minutes < MinGoalMinutes || minutes > MaxGoalMinutes {
		return nil, ErrInvalidGoal
	}
	key = models.SkillKey(key)

	unlock := s.locks.Lock(userID)
	defer unlock()

	user := s.store.Get(userID)
	skill, ok := user.Skills[key]
	if !ok {
		return nil, ErrSkillNotFound
	}
	skill.GoalMinutes = minutes
	s.store.Put(userID, user)
	return skill, nil
}

func (s *SkillService) ListSkills(userID string) map[string]*models.Skill {
	return s.store.Get(userID).Skills
}

func (s *SkillService) GetSkill(userID, key string) (*models.Skill, bool) {
	skill, ok := s.store.Get(userID).Skills[models.SkillKey(key)]
	return skill, ok
}

// AddSession records practice time and returns the resulting streak, or 0
// when the user has no such skill. Minutes are trusted to be validated by
// the caller. Streak continuity is decided on calendar days: the first
// session starts at 1, the next day continues, a gap of two or more days
// restarts at 1 and another session on the same day leaves it unchanged.
func (s *SkillService) AddSession(userID, key string, minutes int, note string) int {
	key = models.SkillKey(key)

	unlock := s.locks.Lock(userID)
	defer unlock()

	user := s.store.Get(userID)
	skill, ok := user.Skills[key]
	if !ok {
		return 0
	}

	now := s.now()
	if skill.LastSession == nil {
		skill.Streak = 1
	} else {
		switch gap := daysBetween(*skill.LastSession, now, s.loc); {
		case gap == 1:
			skill.Streak++
		case gap >= 2:
			skill.Streak = 1
		}
	}
	skill.BestStreak = max(skill.BestStreak, skill.Streak)

	skill.TotalTimeMinutes += minutes
	skill.Sessions++
	skill.LastSession = &now
	if note != "" {
		skill.Notes = append(skill.Notes, models.Note{Date: now, Note: note, Minutes: minutes})
	}

	user.Statistics.TotalSessions++
	user.Statistics.TotalTimeMinutes += minutes
	s.store.Put(userID, user)

	s.metrics.IncSessionsLogged(minutes)
	s.logger.Debugf(providers.TypeApp, "User %s logged %d min on %q, streak %d", userID, minutes, key, skill.Streak)
	return skill.Streak
}
