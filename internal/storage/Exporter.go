package storage

import (
	"fmt"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"skillbot/internal/models"
	"skillbot/internal/providers"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

const exportTimeLayout = "20060102_150405"

// Exporter writes timestamped snapshots into the export directory.
type Exporter struct {
	dir        string
	compress   bool
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	now        func() time.Time
}

func NewExporter(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) interfaces.ExporterInterface {
	return &Exporter{
		dir:        conf.Storage.ExportDir,
		compress:   conf.Storage.CompressExport,
		compressor: compressor,
		logger:     logger,
		now:        time.Now,
	}
}

// Export writes <dir>/<prefix>_YYYYMMDD_HHMMSS.json (.json.zst when
// compression is on) and returns the written path.
func (e *Exporter) Export(prefix string, snapshot *models.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json", prefix, e.now().Format(exportTimeLayout))
	if e.compress {
		data, err = e.compressor.Compress(data)
		if err != nil {
			return "", fmt.Errorf("compress snapshot: %w", err)
		}
		name += ".zst"
	}

	path := filepath.Join(e.dir, name)
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	e.logger.Infof(providers.TypeStorage, "Exported %d users to %s", snapshot.TotalUsers, path)
	return path, nil
}
