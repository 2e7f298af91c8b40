package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"skillbot/internal/models"
	"skillbot/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockUserStore implements interfaces.UserStoreInterface in memory. Records
// are deep-copied on the way in and out, like a real store.
type MockUserStore struct {
	mu               sync.Mutex
	Users            map[string]*models.User
	AchievementsData map[string]any
	Now              func() time.Time
	PutCalls         int
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:            make(map[string]*models.User),
		AchievementsData: make(map[string]any),
		Now:              time.Now,
	}
}

func (m *MockUserStore) Init() error { return nil }

func (m *MockUserStore) Get(userID string) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.Users[userID]; ok {
		return cloneUser(u)
	}
	u := models.NewUser(m.Now())
	m.Users[userID] = cloneUser(u)
	return u
}

func (m *MockUserStore) Put(userID string, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.LastActive = m.Now()
	m.Users[userID] = cloneUser(user)
	m.PutCalls++
}

func (m *MockUserStore) All() map[string]*models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*models.User, len(m.Users))
	for id, u := range m.Users {
		out[id] = cloneUser(u)
	}
	return out
}

func (m *MockUserStore) Achievements() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AchievementsData
}

// Seed stores a user as is, without touching LastActive.
func (m *MockUserStore) Seed(userID string, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.Normalize()
	m.Users[userID] = cloneUser(user)
}

func cloneUser(u *models.User) *models.User {
	data, err := json.Marshal(u)
	if err != nil {
		panic(err)
	}
	var out models.User
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	out.Normalize()
	return &out
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() { m.Closed = true }

// MockSender implements notifier.SenderInterface. Recipients listed in Fail
// get an error.
type MockSender struct {
	mu   sync.Mutex
	Fail map[string]bool
	Sent []SentMessage
}

type SentMessage struct {
	RecipientID string
	Text        string
}

func (m *MockSender) Send(_ context.Context, recipientID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail[recipientID] {
		return errors.New("recipient unreachable")
	}
	m.Sent = append(m.Sent, SentMessage{RecipientID: recipientID, Text: text})
	return nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                  sync.Mutex
	Requests            int
	CacheHits           int
	CacheMisses         int
	StorageErrors       map[string]int
	SessionsLogged      int
	MinutesLogged       int
	AchievementsAwarded map[string]int
	Deliveries          map[string]int
	UsersTotal          int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncStorageErrors(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StorageErrors == nil {
		m.StorageErrors = make(map[string]int)
	}
	m.StorageErrors[operation]++
}
func (m *MockMetrics) IncSessionsLogged(minutes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsLogged++
	m.MinutesLogged += minutes
}
func (m *MockMetrics) IncAchievementsAwarded(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AchievementsAwarded == nil {
		m.AchievementsAwarded = make(map[string]int)
	}
	m.AchievementsAwarded[id]++
}
func (m *MockMetrics) IncBroadcastDeliveries(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Deliveries == nil {
		m.Deliveries = make(map[string]int)
	}
	m.Deliveries[result]++
}
func (m *MockMetrics) SetUsersTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UsersTotal = count
}
