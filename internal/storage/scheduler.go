package storage

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"skillbot/internal/models"
	"skillbot/internal/providers"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	store    interfaces.UserStoreInterface
	exporter interfaces.ExporterInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	if s.config.Backup.Enabled && s.config.Backup.Interval > 0 {
		s.cron.AddFunc(gron.Every(s.config.Backup.Interval), func() {
			if _, err := s.Backup(); err != nil {
				s.logger.Errorf(providers.TypeApp, "Error while writing backup: %s", err)
			}
		})
	}

	if s.config.Metrics.Enabled && s.config.Metrics.RefreshInterval > 0 {
		s.cron.AddFunc(gron.Every(s.config.Metrics.RefreshInterval), s.RefreshGauges)
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Backup writes a snapshot of the whole store using the "backup" prefix.
func (s *Scheduler) Backup() (string, error) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	snapshot := models.NewSnapshot(s.store.All(), s.store.Achievements(), time.Now())
	path, err := s.exporter.Export("backup", snapshot)
	if err != nil {
		return "", err
	}
	s.logger.Infof(providers.TypeApp, "Backup written to %s", path)
	return path, nil
}

func (s *Scheduler) RefreshGauges() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.metrics.SetUsersTotal(len(s.store.All()))
}

func NewScheduler(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, store interfaces.UserStoreInterface, exporter interfaces.ExporterInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		metrics:  metrics,
		store:    store,
		exporter: exporter,
	}
}
