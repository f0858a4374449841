package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

func TestRoster_CRUD(t *testing.T) {
	r := NewRoster()

	require.NoError(t, r.SetPlayer(stats.NewRecord("Bravo", map[stats.Key]int{stats.KeyDeaths: 3})))
	require.NoError(t, r.SetPlayer(stats.NewRecord("Alpha", nil)))
	assert.Equal(t, 2, r.Len())

	rec, err := r.Player("Bravo")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Value(stats.KeyDeaths))

	// Replacing a record keeps one entry per player.
	require.NoError(t, r.SetPlayer(stats.NewRecord("Bravo", map[stats.Key]int{stats.KeyDeaths: 4})))
	assert.Equal(t, 2, r.Len())
	rec, err = r.Player("Bravo")
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Value(stats.KeyDeaths))

	require.NoError(t, r.DeletePlayer("Bravo"))
	assert.Equal(t, 1, r.Len())
}

func TestRoster_ReplaceKeepsCreatedAt(t *testing.T) {
	r := NewRoster()

	first := stats.NewRecord("Bravo", nil)
	require.NoError(t, r.SetPlayer(first))

	second := stats.NewRecord("Bravo", map[stats.Key]int{stats.KeyDeaths: 4})
	second.CreatedAt = second.CreatedAt.Add(time.Hour)
	require.NoError(t, r.SetPlayer(second))

	rec, err := r.Player("Bravo")
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, rec.CreatedAt, "replacement must keep the original CreatedAt")
	assert.Equal(t, second.UpdatedAt, rec.UpdatedAt)
	assert.Equal(t, 4, rec.Value(stats.KeyDeaths))
}

func TestRoster_PlayersSortedByName(t *testing.T) {
	r := NewRoster()
	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		require.NoError(t, r.SetPlayer(stats.NewRecord(name, nil)))
	}

	players := r.Players()
	require.Len(t, players, 3)
	assert.Equal(t, "Alpha", players[0].Player)
	assert.Equal(t, "Bravo", players[1].Player)
	assert.Equal(t, "Charlie", players[2].Player)
}

func TestRoster_NotFound(t *testing.T) {
	r := NewRoster()

	_, err := r.Player("Ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	err = r.DeletePlayer("Ghost")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRoster_SetPlayerValidates(t *testing.T) {
	r := NewRoster()

	err := r.SetPlayer(nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	err = r.SetPlayer(&stats.Record{Player: ""})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	rec := stats.NewRecord("Negative Nancy", nil)
	rec.Stats[stats.KeyDeaths] = -1
	err = r.SetPlayer(rec)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRoster_HandsOutCopies(t *testing.T) {
	r := NewRoster()
	original := stats.NewRecord("Helldiver1", map[stats.Key]int{stats.KeyEnemyKills: 120})
	require.NoError(t, r.SetPlayer(original))

	// Mutating the caller's record after storing must not reach the roster.
	original.Stats[stats.KeyEnemyKills] = 0
	rec, err := r.Player("Helldiver1")
	require.NoError(t, err)
	assert.Equal(t, 120, rec.Value(stats.KeyEnemyKills))

	// Mutating a returned record must not reach the roster either.
	rec.Stats[stats.KeyEnemyKills] = 1
	again, err := r.Player("Helldiver1")
	require.NoError(t, err)
	assert.Equal(t, 120, again.Value(stats.KeyEnemyKills))
}

func TestRoster_LoadSaveAreNoOps(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.SetPlayer(stats.NewRecord("Helldiver1", nil)))

	assert.NoError(t, r.Load())
	assert.NoError(t, r.Save())
	assert.Equal(t, 1, r.Len())
}

func TestRoster_ConcurrentAccess(t *testing.T) {
	r := NewRoster()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("Diver%d", n)
			_ = r.SetPlayer(stats.NewRecord(name, nil))
		}(i)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Player(fmt.Sprintf("Diver%d", n))
			_ = r.Len()
			_ = r.Players()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
}
