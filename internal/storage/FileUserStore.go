package storage

import (
	"errors"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"skillbot/internal/models"
	"skillbot/internal/providers"
)

// FileUserStore keeps the users collection in one pretty-printed JSON file.
// Every call loads the whole collection and every write rewrites it whole.
type FileUserStore struct {
	usersFile        string
	achievementsFile string
	logger           providers.Logger
	metrics          providers.MetricsProviderInterface
	now              func() time.Time

	// mu serializes load-modify-save of the shared file across all users.
	mu sync.Mutex
}

func NewFileUserStore(usersFile, achievementsFile string, logger providers.Logger, metrics providers.MetricsProviderInterface) *FileUserStore {
	return &FileUserStore{
		usersFile:        usersFile,
		achievementsFile: achievementsFile,
		logger:           logger,
		metrics:          metrics,
		now:              time.Now,
	}
}

// Init creates both collection files as empty objects when they are missing.
func (s *FileUserStore) Init() error {
	for _, path := range []string{s.usersFile, s.achievementsFile} {
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := writeFileAtomic(path, []byte("{}\n")); err != nil {
			return err
		}
		s.logger.Infof(providers.TypeStorage, "Initialized empty collection %s", path)
	}
	return nil
}

func (s *FileUserStore) Get(userID string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	if user, ok := users[userID]; ok {
		return user
	}

	user := models.NewUser(s.now())
	users[userID] = user
	s.saveUsers(users)
	s.logger.Infof(providers.TypeStorage, "Created user %s", userID)
	return user
}

func (s *FileUserStore) Put(userID string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadUsers()
	user.LastActive = s.now()
	users[userID] = user
	s.saveUsers(users)
}

func (s *FileUserStore) All() map[string]*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers()
}

func (s *FileUserStore) Achievements() map[string]any {
	data := make(map[string]any)
	raw, err := os.ReadFile(s.achievementsFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Errorf(providers.TypeStorage, "Error loading achievements data: %s", err)
			s.metrics.IncStorageErrors("load_achievements")
		}
		return data
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error loading achievements data: %s", err)
		s.metrics.IncStorageErrors("load_achievements")
		return make(map[string]any)
	}
	return data
}

// loadUsers reads the users collection. A missing, unreadable or corrupt
// file is reported as an empty collection. Must be called under s.mu.
func (s *FileUserStore) loadUsers() map[string]*models.User {
	start := time.Now()
	defer func() { s.metrics.ObservePersistenceDuration("load", time.Since(start)) }()

	users := make(map[string]*models.User)
	raw, err := os.ReadFile(s.usersFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Errorf(providers.TypeStorage, "Error loading users data: %s", err)
			s.metrics.IncStorageErrors("load")
		}
		return users
	}

	if err := json.Unmarshal(raw, &users); err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error loading users data: %s", err)
		s.metrics.IncStorageErrors("load")
		return make(map[string]*models.User)
	}

	for id, u := range users {
		if u == nil {
			delete(users, id)
			continue
		}
		u.Normalize()
	}
	return users
}

// saveUsers rewrites the users collection. Failures are logged and dropped.
// Must be called under s.mu.
func (s *FileUserStore) saveUsers(users map[string]*models.User) {
	start := time.Now()
	defer func() { s.metrics.ObservePersistenceDuration("save", time.Since(start)) }()

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error saving users data: %s", err)
		s.metrics.IncStorageErrors("save")
		return
	}
	if err := writeFileAtomic(s.usersFile, append(data, '\n')); err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error saving users data: %s", err)
		s.metrics.IncStorageErrors("save")
	}
}
