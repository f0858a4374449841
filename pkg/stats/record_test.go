package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
)

func TestNewRecord_ZeroFillsEveryKey(t *testing.T) {
	rec := NewRecord("Helldiver1", nil)

	require.NotNil(t, rec)
	assert.Equal(t, "Helldiver1", rec.Player)
	require.Len(t, rec.Stats, len(Keys()))
	for _, k := range Keys() {
		v, ok := rec.Stats[k]
		require.True(t, ok, "key %q missing from zero-filled record", k)
		assert.Zero(t, v)
	}
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestNewRecord_OverlaysValues(t *testing.T) {
	rec := NewRecord("Helldiver1", map[Key]int{
		KeyEnemyKills: 120,
		KeyDeaths:     3,
	})

	assert.Equal(t, 120, rec.Value(KeyEnemyKills))
	assert.Equal(t, 3, rec.Value(KeyDeaths))
	assert.Equal(t, 0, rec.Value(KeyShotsFired), "unscanned stats stay zero")
	assert.Len(t, rec.Stats, len(Keys()))
}

func TestNewRecord_IgnoresUnknownKeys(t *testing.T) {
	rec := NewRecord("Helldiver1", map[Key]int{
		Key("petKills"): 9,
		KeyMeleeKills:   4,
	})

	assert.Equal(t, 4, rec.Value(KeyMeleeKills))
	_, ok := rec.Stats[Key("petKills")]
	assert.False(t, ok)
	assert.NoError(t, rec.Validate())
}

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Record)
		wantErr string
	}{
		{
			name:   "fresh record is valid",
			mutate: func(*Record) {},
		},
		{
			name:    "empty player",
			mutate:  func(r *Record) { r.Player = "" },
			wantErr: "player name is required",
		},
		{
			name:    "player name too long",
			mutate:  func(r *Record) { r.Player = strings.Repeat("x", 65) },
			wantErr: "exceeds",
		},
		{
			name:    "nil stats",
			mutate:  func(r *Record) { r.Stats = nil },
			wantErr: "stats map is required",
		},
		{
			name:    "missing tracked key",
			mutate:  func(r *Record) { delete(r.Stats, KeyDeaths) },
			wantErr: "missing tracked key",
		},
		{
			name:    "negative value",
			mutate:  func(r *Record) { r.Stats[KeyShotsFired] = -1 },
			wantErr: "non-negative",
		},
		{
			name:    "unknown key",
			mutate:  func(r *Record) { r.Stats[Key("petKills")] = 1 },
			wantErr: "unknown stat key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord("Helldiver1", nil)
			tt.mutate(rec)

			err := rec.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsValidationError(err), "validation failures must be typed")
		})
	}
}

func TestRecord_Validate_Nil(t *testing.T) {
	var rec *Record
	assert.Error(t, rec.Validate())
}

func TestRecord_Set(t *testing.T) {
	rec := NewRecord("Helldiver1", nil)
	created := rec.CreatedAt

	require.NoError(t, rec.Set(KeyMissionsWon, 42))
	assert.Equal(t, 42, rec.Value(KeyMissionsWon))
	assert.Equal(t, created, rec.CreatedAt, "Set must not rewrite history")

	err := rec.Set(Key("petKills"), 1)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	err = rec.Set(KeyDeaths, -1)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRecord_Set_InitializesNilStats(t *testing.T) {
	rec := &Record{Player: "Helldiver1"}

	require.NoError(t, rec.Set(KeyDeaths, 2))
	assert.Equal(t, 2, rec.Value(KeyDeaths))
	assert.Len(t, rec.Stats, len(Keys()), "Set on a bare record must zero-fill the rest")
}

func TestRecord_Value_NilSafe(t *testing.T) {
	var rec *Record
	assert.Zero(t, rec.Value(KeyDeaths))

	rec = &Record{Player: "Helldiver1"}
	assert.Zero(t, rec.Value(KeyDeaths))
}

func TestRecord_Clone(t *testing.T) {
	rec := NewRecord("Helldiver1", map[Key]int{KeyEnemyKills: 120})

	clone := rec.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, rec, clone)

	clone.Stats[KeyEnemyKills] = 999
	assert.Equal(t, 120, rec.Value(KeyEnemyKills), "clone must not share the stats map")

	var nilRec *Record
	assert.Nil(t, nilRec.Clone())
}
