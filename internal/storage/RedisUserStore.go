package storage

import (
	"context"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"skillbot/internal/models"
	"skillbot/internal/providers"
	"skillbot/internal/structures"
)

// RedisUserStore keeps each user as one field of a redis hash, so reads and
// writes touch a single record instead of the whole collection.
type RedisUserStore struct {
	client          *redis.Client
	usersKey        string
	achievementsKey string
	timeout         time.Duration
	logger          providers.Logger
	metrics         providers.MetricsProviderInterface
	now             func() time.Time
}

func NewRedisUserStore(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) *RedisUserStore {
	timeout := conf.Redis.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:         conf.Redis.Addr,
		Password:     conf.Redis.Password,
		DB:           conf.Redis.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
	return &RedisUserStore{
		client:          client,
		usersKey:        conf.Redis.Prefix + ":users",
		achievementsKey: conf.Redis.Prefix + ":achievements",
		timeout:         timeout,
		logger:          logger,
		metrics:         metrics,
		now:             time.Now,
	}
}

func (s *RedisUserStore) Init() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

func (s *RedisUserStore) Close() {
	if err := s.client.Close(); err != nil {
		s.logger.Warnf(providers.TypeStorage, "Error closing redis client: %s", err)
	}
}

func (s *RedisUserStore) Get(userID string) *models.User {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	start := time.Now()
	defer func() { s.metrics.ObservePersistenceDuration("load", time.Since(start)) }()

	raw, err := s.client.HGet(ctx, s.usersKey, userID).Bytes()
	if err == nil {
		if user, ok := s.decode(userID, raw); ok {
			return user
		}
		return models.NewUser(s.now())
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Errorf(providers.TypeStorage, "Error loading user %s: %s", userID, err)
		s.metrics.IncStorageErrors("load")
		return models.NewUser(s.now())
	}

	user := models.NewUser(s.now())
	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error encoding user %s: %s", userID, err)
		return user
	}
	created, err := s.client.HSetNX(ctx, s.usersKey, userID, data).Result()
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error creating user %s: %s", userID, err)
		s.metrics.IncStorageErrors("save")
		return user
	}
	if !created {
		// Another writer created the record first; read theirs.
		if raw, err := s.client.HGet(ctx, s.usersKey, userID).Bytes(); err == nil {
			if existing, ok := s.decode(userID, raw); ok {
				return existing
			}
		}
	}
	return user
}

func (s *RedisUserStore) Put(userID string, user *models.User) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	start := time.Now()
	defer func() { s.metrics.ObservePersistenceDuration("save", time.Since(start)) }()

	user.LastActive = s.now()
	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error encoding user %s: %s", userID, err)
		s.metrics.IncStorageErrors("save")
		return
	}
	if err := s.client.HSet(ctx, s.usersKey, userID, data).Err(); err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error saving user %s: %s", userID, err)
		s.metrics.IncStorageErrors("save")
	}
}

func (s *RedisUserStore) All() map[string]*models.User {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	start := time.Now()
	defer func() { s.metrics.ObservePersistenceDuration("load", time.Since(start)) }()

	users := make(map[string]*models.User)
	fields, err := s.client.HGetAll(ctx, s.usersKey).Result()
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error loading users data: %s", err)
		s.metrics.IncStorageErrors("load")
		return users
	}
	for id, raw := range fields {
		if user, ok := s.decode(id, []byte(raw)); ok {
			users[id] = user
		}
	}
	return users
}

func (s *RedisUserStore) Achievements() map[string]any {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data := make(map[string]any)
	fields, err := s.client.HGetAll(ctx, s.achievementsKey).Result()
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error loading achievements data: %s", err)
		s.metrics.IncStorageErrors("load_achievements")
		return data
	}
	for k, raw := range fields {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		data[k] = v
	}
	return data
}

func (s *RedisUserStore) decode(userID string, raw []byte) (*models.User, bool) {
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Errorf(providers.TypeStorage, "Corrupt record for user %s: %s", userID, err)
		s.metrics.IncStorageErrors("load")
		return nil, false
	}
	user.Normalize()
	return &user, true
}
