package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"resource-manager-backend/internal/logger"
	"resource-manager-backend/internal/metrics"

	"github.com/robfig/cron/v3"
)

const (
	backupFilePrefix = "backup-"
	backupFileSuffix = ".json"
	backupTimeLayout = "20060102T150405.000Z"
)

// Exporter produces a snapshot of the current state
type Exporter interface {
	Export() (*Snapshot, error)
}

// SnapshotScheduler periodically exports the store to timestamped files,
// keeping only the newest ones
type SnapshotScheduler struct {
	exporter  Exporter
	dir       string
	retention int
	now       func() time.Time

	cron      *cron.Cron
	cronMutex sync.Mutex
}

// NewSnapshotScheduler creates a scheduler writing into dir and keeping
// retention files
func NewSnapshotScheduler(exporter Exporter, dir string, retention int) *SnapshotScheduler {
	return &SnapshotScheduler{
		exporter:  exporter,
		dir:       dir,
		retention: retention,
		now:       time.Now,
		cron:      cron.New(cron.WithLocation(time.Local)),
	}
}

// Start schedules RunOnce on the given cron spec and starts the scheduler
func (s *SnapshotScheduler) Start(spec string) error {
	s.cronMutex.Lock()
	defer s.cronMutex.Unlock()

	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunOnce(); err != nil {
			logger.New().WithError(err).Error("Scheduled backup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	s.cron.Start()
	logger.New().WithFields(map[string]interface{}{
		"schedule":  spec,
		"dir":       s.dir,
		"retention": s.retention,
	}).Info("Backup scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running backup to finish
func (s *SnapshotScheduler) Stop() {
	s.cronMutex.Lock()
	defer s.cronMutex.Unlock()
	<-s.cron.Stop().Done()
}

// RunOnce exports the store to a new file and prunes old files. It returns
// the path written.
func (s *SnapshotScheduler) RunOnce() (string, error) {
	start := time.Now()
	path, err := s.runOnce()
	metrics.ObserveBackup(metrics.OpScheduled, start, err)
	if err != nil {
		return "", err
	}
	logger.New().WithField("path", path).Info("Backup written")
	return path, nil
}

func (s *SnapshotScheduler) runOnce() (string, error) {
	snap, err := s.exporter.Export()
	if err != nil {
		return "", err
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := backupFilePrefix + s.now().UTC().Format(backupTimeLayout) + backupFileSuffix
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := s.prune(); err != nil {
		return path, err
	}
	return path, nil
}

// prune deletes all but the newest retention backups. Timestamps in the
// file names sort chronologically.
func (s *SnapshotScheduler) prune() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasPrefix(e.Name(), backupFilePrefix) && strings.HasSuffix(e.Name(), backupFileSuffix) {
			names = append(names, e.Name())
		}
	}
	if len(names) <= s.retention {
		return nil
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-s.retention] {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", name, err)
		}
	}
	return nil
}
