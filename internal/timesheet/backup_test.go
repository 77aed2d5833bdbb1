package timesheet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"shiftlog/internal/structures"
	"shiftlog/internal/testutil"
)

func backupTestConfig(t *testing.T, enabled bool) *structures.Config {
	t.Helper()
	dir := t.TempDir()
	return &structures.Config{
		Persistence: structures.Persistence{
			FilePath: filepath.Join(dir, "data.json"),
		},
		Backup: structures.BackupConfig{
			Enabled:  enabled,
			Dir:      filepath.Join(dir, "backups"),
			Interval: time.Hour,
			TTL:      24 * time.Hour,
		},
	}
}

func listBackups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestBackupScheduler_SnapshotWritesCompressedCopy(t *testing.T) {
	conf := backupTestConfig(t, true)
	payload := []byte(`[{"id":"rec1","name":"Alice"}]`)
	require.NoError(t, os.WriteFile(conf.Persistence.FilePath, payload, 0o644))

	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	b := NewBackupScheduler(conf, &testutil.MockLogger{}, compressor)

	require.NoError(t, b.Snapshot())

	names := listBackups(t, conf.Backup.Dir)
	require.Len(t, names, 1)
	assert.Contains(t, names[0], ".json.zst")

	// The snapshot decompresses back to the exact data file contents.
	data, err := os.ReadFile(filepath.Join(conf.Backup.Dir, names[0]))
	require.NoError(t, err)
	restored, err := compressor.Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestBackupScheduler_SnapshotWithoutDataFileIsNoop(t *testing.T) {
	conf := backupTestConfig(t, true)
	b := NewBackupScheduler(conf, &testutil.MockLogger{}, &testutil.MockCompressor{})

	require.NoError(t, b.Snapshot())
	assert.Empty(t, listBackups(t, conf.Backup.Dir))
}

func TestBackupScheduler_PruneRemovesExpiredSnapshots(t *testing.T) {
	conf := backupTestConfig(t, true)
	conf.Backup.TTL = time.Hour
	require.NoError(t, os.WriteFile(conf.Persistence.FilePath, []byte("[]"), 0o644))

	b := NewBackupScheduler(conf, &testutil.MockLogger{}, &testutil.MockCompressor{})
	require.NoError(t, b.Snapshot())

	// Age an artificial old snapshot past the TTL.
	old := filepath.Join(conf.Backup.Dir, "shiftlog-20200101-000000.json.zst")
	require.NoError(t, os.WriteFile(old, []byte("stale"), 0o640))
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	require.NoError(t, b.Snapshot())

	names := listBackups(t, conf.Backup.Dir)
	assert.NotContains(t, names, "shiftlog-20200101-000000.json.zst")
}

func TestBackupScheduler_PruneIgnoresForeignFiles(t *testing.T) {
	conf := backupTestConfig(t, true)
	conf.Backup.TTL = time.Hour
	require.NoError(t, os.WriteFile(conf.Persistence.FilePath, []byte("[]"), 0o644))
	require.NoError(t, os.MkdirAll(conf.Backup.Dir, 0o750))

	foreign := filepath.Join(conf.Backup.Dir, "notes.txt")
	require.NoError(t, os.WriteFile(foreign, []byte("keep me"), 0o640))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(foreign, past, past))

	b := NewBackupScheduler(conf, &testutil.MockLogger{}, &testutil.MockCompressor{})
	require.NoError(t, b.Snapshot())

	assert.Contains(t, listBackups(t, conf.Backup.Dir), "notes.txt")
}

func TestBackupScheduler_InitDisabledDoesNothing(t *testing.T) {
	conf := backupTestConfig(t, false)
	logger := &testutil.MockLogger{}
	b := NewBackupScheduler(conf, logger, &testutil.MockCompressor{})

	b.Init()
	b.Stop()

	assert.Empty(t, listBackups(t, conf.Backup.Dir))
}

func TestBackupScheduler_InitAndStop(t *testing.T) {
	conf := backupTestConfig(t, true)
	conf.Backup.Interval = 10 * time.Millisecond
	require.NoError(t, os.WriteFile(conf.Persistence.FilePath, []byte("[]"), 0o644))

	b := NewBackupScheduler(conf, &testutil.MockLogger{}, &testutil.MockCompressor{})
	b.Init()

	assert.Eventually(t, func() bool {
		return len(listBackups(t, conf.Backup.Dir)) > 0
	}, 2*time.Second, 20*time.Millisecond)

	b.Stop()
}

func TestBackupScheduler_StopWaitsForInflightSnapshot(t *testing.T) {
	conf := backupTestConfig(t, true)
	require.NoError(t, os.WriteFile(conf.Persistence.FilePath, []byte("[]"), 0o644))

	started := make(chan struct{})
	release := make(chan struct{})
	closed := atomic.NewBool(false)
	compressor := &testutil.MockCompressor{
		CompressFn: func(b []byte) ([]byte, error) {
			close(started)
			<-release
			return b, nil
		},
		CloseFn: func() { closed.Store(true) },
	}
	b := NewBackupScheduler(conf, &testutil.MockLogger{}, compressor)

	snapErr := make(chan error, 1)
	go func() { snapErr <- b.Snapshot() }()
	<-started

	stopDone := make(chan struct{})
	go func() {
		b.Stop()
		close(stopDone)
	}()

	// The compressor must not be released while Compress is in flight.
	select {
	case <-stopDone:
		t.Fatal("Stop returned while a snapshot was still compressing")
	case <-time.After(50 * time.Millisecond):
	}
	assert.False(t, closed.Load())

	close(release)
	require.NoError(t, <-snapErr)

	select {
	case <-stopDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after the snapshot finished")
	}
	assert.True(t, closed.Load())
}
