package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

func TestRecordFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Helldiver1", "helldiver1.yaml"},
		{"Super Citizen #7", "super-citizen--7.yaml"},
		{"snake_case", "snake_case.yaml"},
		{"ÜberDiver", "-berdiver.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recordFile(tt.name))
		})
	}
}

func TestRoster_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	r := NewRoster(dir)
	first := stats.NewRecord("Helldiver1", map[stats.Key]int{
		stats.KeyEnemyKills: 120,
		stats.KeyDeaths:     3,
	})
	require.NoError(t, r.SetPlayer(first))
	require.NoError(t, r.SetPlayer(stats.NewRecord("Alpha", nil)))
	require.NoError(t, r.Save())

	// One file per player.
	assert.FileExists(t, filepath.Join(dir, "helldiver1.yaml"))
	assert.FileExists(t, filepath.Join(dir, "alpha.yaml"))

	loaded := NewRoster(dir)
	require.NoError(t, loaded.Load())
	assert.Equal(t, 2, loaded.Len())

	rec, err := loaded.Player("Helldiver1")
	require.NoError(t, err)
	assert.Equal(t, 120, rec.Value(stats.KeyEnemyKills))
	assert.Equal(t, 3, rec.Value(stats.KeyDeaths))
	assert.Len(t, rec.Stats, len(stats.Keys()), "zero-filled keys survive the round trip")
	assert.WithinDuration(t, first.CreatedAt.Time, rec.CreatedAt.Time, time.Second,
		"timestamps survive the round trip")
}

func TestRoster_LoadMissingDirIsEmpty(t *testing.T) {
	r := NewRoster(filepath.Join(t.TempDir(), "does-not-exist"))

	require.NoError(t, r.Load())
	assert.Zero(t, r.Len())
}

func TestRoster_LoadReplacesContents(t *testing.T) {
	dir := t.TempDir()

	r := NewRoster(dir)
	require.NoError(t, r.SetPlayer(stats.NewRecord("OnDisk", nil)))
	require.NoError(t, r.Save())

	require.NoError(t, r.SetPlayer(stats.NewRecord("OnlyInMemory", nil)))
	require.NoError(t, r.Load())

	assert.Equal(t, 1, r.Len())
	_, err := r.Player("OnlyInMemory")
	assert.True(t, errors.IsNotFound(err))
}

func TestRoster_LoadCorruptYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{not yaml"), 0o644))

	r := NewRoster(dir)
	err := r.Load()
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestRoster_LoadRejectsInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	// A hand-edited file missing the zero-filled keys fails validation.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partial.yaml"),
		[]byte("player: Partial\nstats:\n  deaths: 3\n"), 0o644))

	r := NewRoster(dir)
	err := r.Load()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRoster_LoadIgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir.yaml"), 0o755))

	r := NewRoster(dir)
	require.NoError(t, r.Load())
	assert.Zero(t, r.Len())
}

func TestRoster_SaveSweepsDeletedPlayers(t *testing.T) {
	dir := t.TempDir()

	r := NewRoster(dir)
	require.NoError(t, r.SetPlayer(stats.NewRecord("Keeper", nil)))
	require.NoError(t, r.SetPlayer(stats.NewRecord("Goner", nil)))
	require.NoError(t, r.Save())
	assert.FileExists(t, filepath.Join(dir, "goner.yaml"))

	require.NoError(t, r.DeletePlayer("Goner"))
	require.NoError(t, r.Save())

	assert.NoFileExists(t, filepath.Join(dir, "goner.yaml"))
	assert.FileExists(t, filepath.Join(dir, "keeper.yaml"))
}

func TestRoster_SaveDetectsFileNameCollision(t *testing.T) {
	dir := t.TempDir()

	r := NewRoster(dir)
	require.NoError(t, r.SetPlayer(stats.NewRecord("AB", nil)))
	require.NoError(t, r.SetPlayer(stats.NewRecord("ab", nil)))

	err := r.Save()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")
}

func TestRoster_SaveCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "roster")

	r := NewRoster(dir)
	require.NoError(t, r.SetPlayer(stats.NewRecord("Helldiver1", nil)))
	require.NoError(t, r.Save())

	assert.DirExists(t, dir)
	assert.FileExists(t, filepath.Join(dir, "helldiver1.yaml"))
}
