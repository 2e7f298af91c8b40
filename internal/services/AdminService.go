package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"skillbot/internal/models"
	"skillbot/internal/notifier"
	"skillbot/internal/providers"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

type AdminServiceInterface interface {
	IsAdmin(userID string) bool
	Broadcast(ctx context.Context, adminID, text string) (*models.BroadcastResult, error)
	Export(adminID string) (string, error)
	ExportSnapshot() (string, error)
	FleetStatistics(adminID string) (*models.FleetReport, error)
	Activity(adminID string) (*models.ActivityReport, error)
	AchievementAdoption(adminID string) (*models.AdoptionReport, error)
	TopUsers(adminID string, n int) ([]models.TopUser, error)
}

type AdminService struct {
	admins   map[string]struct{}
	store    interfaces.UserStoreInterface
	exporter interfaces.ExporterInterface
	stats    StatisticServiceInterface
	sender   notifier.SenderInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewAdminService(conf *structures.Config, store interfaces.UserStoreInterface, exporter interfaces.ExporterInterface, stats StatisticServiceInterface, sender notifier.SenderInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) AdminServiceInterface {
	admins := make(map[string]struct{}, len(conf.Admin.IDs))
	for _, id := range conf.Admin.IDs {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = struct{}{}
		}
	}
	return &AdminService{
		admins:   admins,
		store:    store,
		exporter: exporter,
		stats:    stats,
		sender:   sender,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *AdminService) IsAdmin(userID string) bool {
	_, ok := s.admins[userID]
	return ok
}

func (s *AdminService) authorize(userID, action string) error {
	if s.IsAdmin(userID) {
		return nil
	}
	s.logger.Warnf(providers.TypeAdmin, "Denied %s for user %s", action, userID)
	return ErrAccessDenied
}

// Broadcast sends text to every stored user one by one. Failed deliveries
// are counted and logged, they never abort the run.
func (s *AdminService) Broadcast(ctx context.Context, adminID, text string) (*models.BroadcastResult, error) {
	if err := s.authorize(adminID, "broadcast"); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	users := s.store.All()
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := &models.BroadcastResult{Total: len(ids)}
	for _, id := range ids {
		if err := s.sender.Send(ctx, id, text); err != nil {
			result.Failed++
			s.metrics.IncBroadcastDeliveries("failed")
			s.logger.Warnf(providers.TypeAdmin, "Broadcast to %s failed: %s", id, err)
			continue
		}
		result.Delivered++
		s.metrics.IncBroadcastDeliveries("delivered")
	}
	s.logger.Infof(providers.TypeAdmin, "Broadcast by %s: %d delivered, %d failed of %d", adminID, result.Delivered, result.Failed, result.Total)
	return result, nil
}

func (s *AdminService) Export(adminID string) (string, error) {
	if err := s.authorize(adminID, "export"); err != nil {
		return "", err
	}
	path, err := s.ExportSnapshot()
	if err != nil {
		s.logger.Errorf(providers.TypeAdmin, "Export by %s failed: %s", adminID, err)
		return "", err
	}
	return path, nil
}

// ExportSnapshot writes the full store without an authorization check.
func (s *AdminService) ExportSnapshot() (string, error) {
	snapshot := models.NewSnapshot(s.store.All(), s.store.Achievements(), s.now())
	return s.exporter.Export("export", snapshot)
}

func (s *AdminService) FleetStatistics(adminID string) (*models.FleetReport, error) {
	if err := s.authorize(adminID, "fleet statistics"); err != nil {
		return nil, err
	}
	return s.stats.FleetStatistics(), nil
}

func (s *AdminService) Activity(adminID string) (*models.ActivityReport, error) {
	if err := s.authorize(adminID, "activity"); err != nil {
		return nil, err
	}
	return s.stats.Activity(), nil
}

func (s *AdminService) AchievementAdoption(adminID string) (*models.AdoptionReport, error) {
	if err := s.authorize(adminID, "achievement adoption"); err != nil {
		return nil, err
	}
	return s.stats.AchievementAdoption(), nil
}

func (s *AdminService) TopUsers(adminID string, n int) ([]models.TopUser, error) {
	if err := s.authorize(adminID, "top users"); err != nil {
		return nil, err
	}
	return s.stats.TopUsers(n), nil
}
