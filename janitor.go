package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const janitorSchedule = "@every 1h"

// prunableExts are the report files the janitor may delete
var prunableExts = map[string]bool{".pdf": true, ".html": true, ".csv": true}

// ExportJanitor deletes exported reports once they outlive the retention window
type ExportJanitor struct {
	dir       string
	retention time.Duration
	cron      *cron.Cron
	log       zerolog.Logger
}

// NewExportJanitor creates a janitor for dir. A zero retention disables it.
func NewExportJanitor(dir string, retention time.Duration, log zerolog.Logger) *ExportJanitor {
	return &ExportJanitor{
		dir:       dir,
		retention: retention,
		cron:      cron.New(),
		log:       log.With().Str("component", "janitor").Logger(),
	}
}

// Enabled reports whether pruning is switched on
func (j *ExportJanitor) Enabled() bool {
	return j.retention > 0
}

// Prune deletes report files modified before now minus the retention window
// and returns how many were removed. A missing directory is not an error.
func (j *ExportJanitor) Prune(now time.Time) (int, error) {
	if !j.Enabled() {
		return 0, nil
	}

	entries, err := os.ReadDir(j.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read exports directory: %w", err)
	}

	cutoff := now.Add(-j.retention)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !prunableExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(j.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			j.log.Warn().Err(err).Str("path", path).Msg("failed to remove export")
			continue
		}
		removed++
	}

	if removed > 0 {
		j.log.Info().Int("removed", removed).Dur("retention", j.retention).Msg("pruned old exports")
	}
	return removed, nil
}

// Start schedules hourly pruning. It does nothing when disabled.
func (j *ExportJanitor) Start() error {
	if !j.Enabled() {
		j.log.Debug().Msg("export retention disabled")
		return nil
	}

	_, err := j.cron.AddFunc(janitorSchedule, func() {
		if _, err := j.Prune(time.Now()); err != nil {
			j.log.Error().Err(err).Msg("prune failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule janitor: %w", err)
	}

	j.cron.Start()
	j.log.Info().Str("schedule", janitorSchedule).Str("dir", j.dir).Msg("janitor started")
	return nil
}

// Stop waits for a running prune to finish
func (j *ExportJanitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}
