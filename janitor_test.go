package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAged(t *testing.T, dir, name string, age time.Duration, now time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	mtime := now.Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestExportJanitor_Prune(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	oldPDF := writeAged(t, dir, "portfolio_analysis_old.pdf", 48*time.Hour, now)
	oldCSV := writeAged(t, dir, "portfolio_analysis_old.CSV", 25*time.Hour, now)
	freshHTML := writeAged(t, dir, "financial_health_new.html", time.Hour, now)
	oldOther := writeAged(t, dir, "notes.txt", 72*time.Hour, now)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old.pdf"), 0755))

	janitor := NewExportJanitor(dir, 24*time.Hour, zerolog.Nop())
	removed, err := janitor.Prune(now)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.NoFileExists(t, oldPDF)
	assert.NoFileExists(t, oldCSV)
	assert.FileExists(t, freshHTML)
	assert.FileExists(t, oldOther, "only report files are pruned")
	assert.DirExists(t, filepath.Join(dir, "old.pdf"))
}

func TestExportJanitor_Disabled(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	old := writeAged(t, dir, "report.pdf", 1000*time.Hour, now)

	janitor := NewExportJanitor(dir, 0, zerolog.Nop())
	assert.False(t, janitor.Enabled())

	removed, err := janitor.Prune(now)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.FileExists(t, old)

	require.NoError(t, janitor.Start())
	janitor.Stop()
}

func TestExportJanitor_MissingDir(t *testing.T) {
	janitor := NewExportJanitor(filepath.Join(t.TempDir(), "missing"), time.Hour, zerolog.Nop())
	removed, err := janitor.Prune(time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestExportJanitor_StartStop(t *testing.T) {
	janitor := NewExportJanitor(t.TempDir(), time.Hour, zerolog.Nop())
	require.NoError(t, janitor.Start())
	assert.Len(t, janitor.cron.Entries(), 1)
	janitor.Stop()
}
