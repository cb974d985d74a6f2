package service

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExporter struct {
	snap *Snapshot
	err  error
}

func (e *stubExporter) Export() (*Snapshot, error) {
	return e.snap, e.err
}

func listBackups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSnapshotSchedulerRunOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	exporter := &stubExporter{snap: &Snapshot{
		TeamMembers: []MemberRecord{},
		Projects:    []ProjectRecord{},
		Version:     SnapshotVersion,
	}}
	s := NewSnapshotScheduler(exporter, dir, 3)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	path, err := s.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backup-20240501T123000.000Z.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Snapshot
	require.NoError(t, json.Unmarshal(raw, &written))
	assert.Equal(t, SnapshotVersion, written.Version)
	assert.NotNil(t, written.TeamMembers)
}

func TestSnapshotSchedulerPrunesOldBackups(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o644))

	s := NewSnapshotScheduler(&stubExporter{snap: &Snapshot{}}, dir, 2)
	clock := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	for i := 0; i < 4; i++ {
		_, err := s.RunOnce()
		require.NoError(t, err)
		clock = clock.Add(time.Hour)
	}

	assert.Equal(t, []string{
		"backup-20240501T020000.000Z.json",
		"backup-20240501T030000.000Z.json",
		"notes.txt",
	}, listBackups(t, dir))
}

func TestSnapshotSchedulerExportFailure(t *testing.T) {
	dir := t.TempDir()
	s := NewSnapshotScheduler(&stubExporter{err: errors.New("store offline")}, dir, 2)

	_, err := s.RunOnce()
	assert.EqualError(t, err, "store offline")
	assert.Empty(t, listBackups(t, dir))
}

func TestSnapshotSchedulerRejectsBadSchedule(t *testing.T) {
	s := NewSnapshotScheduler(&stubExporter{snap: &Snapshot{}}, t.TempDir(), 1)

	err := s.Start("every tuesday")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backup schedule")
}

func TestSnapshotSchedulerStartStop(t *testing.T) {
	s := NewSnapshotScheduler(&stubExporter{snap: &Snapshot{}}, t.TempDir(), 1)

	require.NoError(t, s.Start("@every 1h"))
	s.Stop()
}
