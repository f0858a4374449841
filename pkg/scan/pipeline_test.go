package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// staticEngine returns a fixed result for every image.
func staticEngine(result ParseResult) Engine {
	return EngineFunc(func(context.Context, Image) (ParseResult, error) {
		return result, nil
	})
}

func TestNewPipeline(t *testing.T) {
	engine := staticEngine(ParseResult{})

	p, err := NewPipeline(engine)
	require.NoError(t, err)
	assert.NotNil(t, p)

	p, err = NewPipeline(nil)
	require.Error(t, err)
	assert.Nil(t, p)
	var configErr *errors.ConfigError
	assert.ErrorAs(t, err, &configErr)

	_, err = NewPipeline(engine, WithLimit(0))
	assert.Error(t, err)

	_, err = NewPipeline(engine, WithTimeout(-time.Second))
	assert.Error(t, err)
}

func TestPipeline_Scan_RejectsBadSubmissions(t *testing.T) {
	p, err := NewPipeline(staticEngine(ParseResult{}))
	require.NoError(t, err)

	_, err = p.Scan(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	images := []Image{{Name: "1.png"}, {Name: "2.png"}, {Name: "3.png"}, {Name: "4.png"}}
	_, err = p.Scan(context.Background(), images...)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	p, err = NewPipeline(staticEngine(ParseResult{}), WithLimit(1))
	require.NoError(t, err)
	_, err = p.Scan(context.Background(), images[0], images[1])
	assert.Error(t, err)
}

func TestPipeline_MergePrecedenceFollowsUploadOrder(t *testing.T) {
	// Both screenshots report shots fired at label confidence, so the
	// earlier upload must win the tie. The engine holds the first
	// screenshot until the second finishes, inverting completion
	// order; upload order must still decide the merge.
	firstRelease := make(chan struct{})
	engine := EngineFunc(func(ctx context.Context, img Image) (ParseResult, error) {
		switch img.Name {
		case "first.png":
			select {
			case <-firstRelease:
			case <-ctx.Done():
				return ParseResult{}, ctx.Err()
			}
			return NewParseResult(
				map[stats.Key]int{stats.KeyShotsFired: 1000},
				map[stats.Key]Confidence{stats.KeyShotsFired: ConfidenceLabel},
				nil)
		default:
			defer close(firstRelease)
			return NewParseResult(
				map[stats.Key]int{stats.KeyShotsFired: 999},
				map[stats.Key]Confidence{stats.KeyShotsFired: ConfidenceLabel},
				nil)
		}
	})

	p, err := NewPipeline(engine)
	require.NoError(t, err)

	outcome, err := p.Scan(context.Background(),
		Image{Name: "first.png"},
		Image{Name: "second.png"})
	require.NoError(t, err)

	assert.Equal(t, 1000, outcome.Merged.Stats[stats.KeyShotsFired])
	assert.Equal(t, 0, outcome.Origins[stats.KeyShotsFired])
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, 1000, outcome.Results[0].Stats[stats.KeyShotsFired])
	assert.Equal(t, 999, outcome.Results[1].Stats[stats.KeyShotsFired])
}

func TestPipeline_ToleratesPartialFailure(t *testing.T) {
	good := mustResult(t,
		map[stats.Key]int{stats.KeyEnemyKills: 120},
		map[stats.Key]Confidence{stats.KeyEnemyKills: ConfidenceLabel},
		playerName("Helldiver1"))
	engine := EngineFunc(func(_ context.Context, img Image) (ParseResult, error) {
		if img.Name == "blurry.png" {
			return ParseResult{}, errors.NewAPIError("gemini", 500, "model choked on the screenshot")
		}
		return good, nil
	})

	p, err := NewPipeline(engine)
	require.NoError(t, err)

	outcome, err := p.Scan(context.Background(),
		Image{Name: "clean.png"},
		Image{Name: "blurry.png"})
	require.NoError(t, err)

	require.Len(t, outcome.Results, 1)
	assert.True(t, outcome.Merged.Equal(good))

	require.Len(t, outcome.Attempts, 2)
	assert.Equal(t, "clean.png", outcome.Attempts[0].Image)
	assert.NoError(t, outcome.Attempts[0].Err)
	assert.Equal(t, 1, outcome.Attempts[0].Fields)
	assert.Equal(t, "blurry.png", outcome.Attempts[1].Image)
	assert.Error(t, outcome.Attempts[1].Err)
	assert.Zero(t, outcome.Attempts[1].Fields)
}

func TestPipeline_AllFailuresIsAnError(t *testing.T) {
	engine := EngineFunc(func(context.Context, Image) (ParseResult, error) {
		return ParseResult{}, errors.ErrEngineUnavailable
	})

	p, err := NewPipeline(engine)
	require.NoError(t, err)

	outcome, err := p.Scan(context.Background(), Image{Name: "a.png"}, Image{Name: "b.png"})
	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.Contains(t, err.Error(), "all screenshots failed")
	assert.True(t, errors.IsEngineUnavailable(err))
}

func TestPipeline_TimeoutAppliesPerImage(t *testing.T) {
	engine := EngineFunc(func(ctx context.Context, _ Image) (ParseResult, error) {
		<-ctx.Done()
		return ParseResult{}, ctx.Err()
	})

	p, err := NewPipeline(engine, WithTimeout(10*time.Millisecond))
	require.NoError(t, err)

	_, err = p.Scan(context.Background(), Image{Name: "slow.png"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPipeline_Outcome_Bookkeeping(t *testing.T) {
	result := mustResult(t,
		map[stats.Key]int{stats.KeyEnemyKills: 120, stats.KeyDeaths: 3},
		map[stats.Key]Confidence{
			stats.KeyEnemyKills: ConfidenceLabel,
			stats.KeyDeaths:     ConfidencePosition,
		},
		nil)

	p, err := NewPipeline(staticEngine(result))
	require.NoError(t, err)

	outcome, err := p.Scan(context.Background(), Image{Name: "card.png"})
	require.NoError(t, err)

	assert.False(t, outcome.ScannedAt.IsZero())
	assert.GreaterOrEqual(t, outcome.Duration, time.Duration(0))
	require.Len(t, outcome.Attempts, 1)
	assert.Equal(t, "card.png", outcome.Attempts[0].Image)
	assert.Equal(t, 2, outcome.Attempts[0].Fields)
}

func TestOutcome_ReviewKeys(t *testing.T) {
	merged := mustResult(t,
		map[stats.Key]int{
			stats.KeyEnemyKills: 120,
			stats.KeyShotsFired: 1000,
			stats.KeyDeaths:     3,
		},
		map[stats.Key]Confidence{
			stats.KeyEnemyKills: ConfidencePosition,
			stats.KeyShotsFired: ConfidenceLabel,
			stats.KeyDeaths:     ConfidencePosition,
		},
		nil)
	outcome := &Outcome{Merged: merged}

	// Canonical order, position-confidence fields only.
	assert.Equal(t, []stats.Key{stats.KeyEnemyKills, stats.KeyDeaths}, outcome.ReviewKeys())

	outcome.Merged.Confidence[stats.KeyEnemyKills] = ConfidenceLabel
	outcome.Merged.Confidence[stats.KeyDeaths] = ConfidenceLabel
	assert.Empty(t, outcome.ReviewKeys())
}
