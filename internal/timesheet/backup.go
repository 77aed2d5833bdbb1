package timesheet

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"shiftlog/internal/providers"
	"shiftlog/internal/structures"
	"shiftlog/internal/timesheet/interfaces"
)

const backupSuffix = ".json.zst"

// BackupScheduler periodically snapshots the canonical data file into a
// backup directory as zstd-compressed copies and prunes snapshots older than
// the configured TTL. The canonical file itself stays plain JSON; backups are
// purely additive.
type BackupScheduler struct {
	config     *structures.Config
	logger     providers.Logger
	compressor interfaces.CompressorInterface
	ticker     *time.Ticker
	done       chan struct{}
	opsMu      sync.Mutex
}

func NewBackupScheduler(config *structures.Config, logger providers.Logger, compressor interfaces.CompressorInterface) interfaces.BackupSchedulerInterface {
	return &BackupScheduler{
		config:     config,
		logger:     logger,
		compressor: compressor,
	}
}

func (b *BackupScheduler) Init() {
	if !b.config.Backup.Enabled {
		b.logger.Infof(providers.TypeApp, "Backups disabled")
		return
	}

	interval := b.config.Backup.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	b.ticker = time.NewTicker(interval)
	b.done = make(chan struct{})

	go func() {
		for {
			select {
			case <-b.ticker.C:
				if err := b.Snapshot(); err != nil {
					b.logger.Errorf(providers.TypeApp, "Backup snapshot failed: %s", err)
				}
			case <-b.done:
				return
			}
		}
	}()

	b.logger.Infof(providers.TypeApp, "Backups enabled: dir=%s interval=%s ttl=%s",
		b.config.Backup.Dir, interval, b.config.Backup.TTL)
}

func (b *BackupScheduler) Stop() {
	if b.ticker != nil {
		b.ticker.Stop()
		close(b.done)
	}
	// An in-flight Snapshot holds opsMu; wait for it before releasing the
	// encoder so it is never closed mid-compress.
	b.opsMu.Lock()
	defer b.opsMu.Unlock()
	b.compressor.Close()
}

// Snapshot compresses the current data file into the backup directory and
// prunes expired snapshots. A missing data file is not an error; there is
// simply nothing to back up yet.
func (b *BackupScheduler) Snapshot() error {
	if !b.config.Backup.Enabled {
		return nil
	}

	b.opsMu.Lock()
	defer b.opsMu.Unlock()

	data, err := os.ReadFile(b.config.Persistence.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	compressed, err := b.compressor.Compress(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(b.config.Backup.Dir, 0o750); err != nil {
		return err
	}

	name := "shiftlog-" + time.Now().Format("20060102-150405") + backupSuffix
	path := filepath.Join(b.config.Backup.Dir, name)

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0o640); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return err
	}

	b.logger.Infof(providers.TypeApp, "Backup snapshot written to %s", path)
	return b.prune()
}

// prune removes snapshots older than the TTL. TTL <= 0 keeps everything.
func (b *BackupScheduler) prune() error {
	ttl := b.config.Backup.TTL
	if ttl <= 0 {
		return nil
	}

	entries, err := os.ReadDir(b.config.Backup.Dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-ttl)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), backupSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(b.config.Backup.Dir, entry.Name())
			if err := os.Remove(path); err != nil {
				b.logger.Warnf(providers.TypeApp, "Could not prune backup %s: %s", path, err)
				continue
			}
			b.logger.Debugf(providers.TypeApp, "Pruned expired backup %s", path)
		}
	}
	return nil
}
