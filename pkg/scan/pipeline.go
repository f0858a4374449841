package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/agentstation/utc"
	"golang.org/x/sync/errgroup"

	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/logging"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// Pipeline scans the screenshots of one submission concurrently and
// merges their results in upload order. Scanning runs in parallel but
// every result is written back to the slot of the screenshot it came
// from, so merge precedence follows the order the caller passed the
// images in, not the order the engine finished them.
type Pipeline struct {
	engine  Engine
	limit   int
	timeout time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLimit overrides the maximum number of screenshots accepted per
// submission.
func WithLimit(n int) Option {
	return func(p *Pipeline) {
		p.limit = n
	}
}

// WithTimeout overrides the per-screenshot scan timeout.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.timeout = d
	}
}

// NewPipeline creates a pipeline around an engine.
func NewPipeline(engine Engine, opts ...Option) (*Pipeline, error) {
	if engine == nil {
		return nil, errors.NewConfigError("pipeline", "engine is required", nil)
	}
	p := &Pipeline{
		engine:  engine,
		limit:   constants.MaxUploadImages,
		timeout: constants.DefaultOCRTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.limit < 1 {
		return nil, errors.NewConfigError("pipeline", "image limit must be at least 1", nil)
	}
	if p.timeout <= 0 {
		return nil, errors.NewConfigError("pipeline", "scan timeout must be positive", nil)
	}
	return p, nil
}

// Attempt records how scanning one screenshot went.
type Attempt struct {
	Image    string        `json:"image" yaml:"image"`                     // Source image name
	Fields   int           `json:"fields" yaml:"fields"`                   // Statistics extracted
	Duration time.Duration `json:"duration" yaml:"duration"`               // Wall time of the scan
	Err      error         `json:"error,omitempty" yaml:"error,omitempty"` // Non-nil when the scan failed
}

// Outcome is the full account of one submission: the per-screenshot
// results that survived, the merged consensus, and enough bookkeeping
// to explain where each merged value came from.
type Outcome struct {
	Results   []ParseResult     // Successful results in upload order
	Merged    ParseResult       // Consensus across Results
	Origins   map[stats.Key]int // Index into Results that supplied each merged value
	Attempts  []Attempt         // One entry per submitted image, in upload order
	ScannedAt utc.Time          // When the submission was scanned
	Duration  time.Duration     // Wall time of the whole submission
}

// ReviewKeys returns the merged statistics whose winning value was
// located by screen position rather than label, in canonical order.
// These values should be confirmed by a human before the record is
// trusted.
func (o *Outcome) ReviewKeys() []stats.Key {
	var keys []stats.Key
	for _, k := range stats.Keys() {
		if o.Merged.Confidence[k] == ConfidencePosition {
			keys = append(keys, k)
		}
	}
	return keys
}

// Scan runs the engine over every screenshot concurrently and merges
// the results. Individual scan failures are tolerated and reported in
// the outcome's attempts; Scan returns an error only when no
// screenshot could be scanned at all.
func (p *Pipeline) Scan(ctx context.Context, images ...Image) (*Outcome, error) {
	if len(images) == 0 {
		return nil, errors.NewValidationError("images", 0, "at least one image is required")
	}
	if len(images) > p.limit {
		return nil, errors.NewValidationError("images", len(images),
			"too many images for one submission")
	}

	start := time.Now()
	results := make([]*ParseResult, len(images))
	attempts := make([]Attempt, len(images))

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range images {
		g.Go(func() error {
			scanCtx, cancel := context.WithTimeout(gctx, p.timeout)
			defer cancel()

			scanStart := time.Now()
			result, err := p.engine.Scan(scanCtx, img)
			attempt := Attempt{
				Image:    img.Name,
				Duration: time.Since(scanStart),
				Err:      err,
			}
			if err != nil {
				logging.Warn().
					Str("image", img.Name).
					Dur("duration", attempt.Duration).
					Err(err).
					Msg("Screenshot scan failed")
				attempts[i] = attempt
				return nil
			}

			attempt.Fields = len(result.Stats)
			logging.Debug().
				Str("image", img.Name).
				Int("fields", attempt.Fields).
				Dur("duration", attempt.Duration).
				Msg("Screenshot scanned")
			results[i] = &result
			attempts[i] = attempt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Compact successes without disturbing upload order.
	ordered := make([]ParseResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			ordered = append(ordered, *r)
		}
	}
	if len(ordered) == 0 {
		var firstErr error
		for _, a := range attempts {
			if a.Err != nil {
				firstErr = a.Err
				break
			}
		}
		return nil, fmt.Errorf("all screenshots failed to scan: %w", firstErr)
	}

	outcome := &Outcome{
		Results:   ordered,
		Merged:    Merge(ordered),
		Origins:   Origins(ordered),
		Attempts:  attempts,
		ScannedAt: utc.Now(),
		Duration:  time.Since(start),
	}
	logging.Info().
		Int("images", len(images)).
		Int("scanned", len(ordered)).
		Int("fields", len(outcome.Merged.Stats)).
		Int("review", len(outcome.ReviewKeys())).
		Dur("duration", outcome.Duration).
		Msg("Submission scanned")
	return outcome, nil
}
