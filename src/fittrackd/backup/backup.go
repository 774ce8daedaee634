// Package backup produces xz-compressed database snapshots and ships them to
// a storage backend on a fixed interval.
package backup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/da-maltsev/fit-track/src/common/logs"
	"github.com/da-maltsev/fit-track/src/fittrackd/db"
	"github.com/da-maltsev/fit-track/src/fittrackd/storage"
	"github.com/ulikunitz/xz"
)

// Package-level logger, must be initialized via SetLogger
var log *logs.Logger

// SetLogger sets the package-level logger
func SetLogger(l *logs.Logger) {
	log = l
}

// Config holds backup manager configuration
type Config struct {
	// Enabled toggles periodic backups
	Enabled bool

	// Interval between snapshots
	Interval time.Duration

	// Keep is the number of snapshots retained in storage; older ones are
	// pruned after each successful upload. Zero keeps everything.
	Keep int

	// Prefix is the storage key prefix for snapshot objects
	Prefix string
}

// DefaultConfig returns default backup configuration
func DefaultConfig() Config {
	return Config{
		Enabled:  false,
		Interval: 6 * time.Hour,
		Keep:     10,
		Prefix:   "snapshots",
	}
}

// Manager runs periodic database backups
type Manager struct {
	cfg      Config
	database *db.Database
	backend  storage.Backend

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewManager creates a backup manager
func NewManager(cfg Config, database *db.Database, backend storage.Backend) *Manager {
	return &Manager{
		cfg:      cfg,
		database: database,
		backend:  backend,
		stop:     make(chan struct{}),
	}
}

// Start launches the periodic backup loop. No-op when backups are disabled
// or no backend is configured.
func (m *Manager) Start() {
	if !m.cfg.Enabled || m.backend == nil {
		return
	}

	m.wg.Add(1)
	go m.run()

	if log != nil {
		log.Info("Backup manager started",
			"interval", m.cfg.Interval,
			"backend", m.backend.Type(),
			"location", m.backend.Location(),
		)
	}
}

// Stop terminates the backup loop and waits for an in-flight backup
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
}

func (m *Manager) run() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.BackupNow(context.Background()); err != nil {
				if log != nil {
					log.Error("Backup failed", "error", err)
				}
			}
		case <-m.stop:
			return
		}
	}
}

// BackupNow takes one snapshot, compresses it, uploads it, and prunes old
// snapshots past the retention count.
func (m *Manager) BackupNow(ctx context.Context) error {
	if m.backend == nil {
		return fmt.Errorf("no storage backend configured")
	}

	compressed, err := m.snapshot()
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s/fittrackd-%s.db.xz", m.cfg.Prefix, time.Now().UTC().Format("20060102-150405"))
	size := int64(compressed.Len())

	if err := m.backend.Upload(ctx, key, compressed, size, "application/x-xz"); err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	if log != nil {
		log.Info("Backup uploaded", "key", key, "size", size)
	}

	return m.prune(ctx)
}

// snapshot dumps the database to a temp file and xz-compresses it in memory
func (m *Manager) snapshot() (*bytes.Buffer, error) {
	tmpDir, err := os.MkdirTemp("", "fittrackd-backup-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	snapshotPath := filepath.Join(tmpDir, "fittrackd.db")
	if err := m.database.SnapshotTo(snapshotPath); err != nil {
		return nil, fmt.Errorf("failed to snapshot database: %w", err)
	}

	raw, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var buf bytes.Buffer
	xzWriter, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := xzWriter.Write(raw); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %w", err)
	}
	if err := xzWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize compression: %w", err)
	}

	return &buf, nil
}

// prune deletes the oldest snapshots beyond the retention count
func (m *Manager) prune(ctx context.Context) error {
	if m.cfg.Keep <= 0 {
		return nil
	}

	objects, err := m.backend.List(ctx, m.cfg.Prefix)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	excess := len(objects) - m.cfg.Keep
	for i := 0; i < excess; i++ {
		if err := m.backend.Delete(ctx, objects[i].Key); err != nil {
			return fmt.Errorf("failed to prune snapshot %s: %w", objects[i].Key, err)
		}
		if log != nil {
			log.Debug("Pruned old backup", "key", objects[i].Key)
		}
	}

	return nil
}
