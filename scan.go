package tracker

import (
	"context"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
)

// Compile-time interface check to ensure proper implementation.
var _ Scanner = (*tracker)(nil)

// Scanner runs screenshots through the scan pipeline.
type Scanner interface {
	// Scan extracts career statistics from up to the configured
	// maximum of screenshots and merges them by confidence
	Scan(ctx context.Context, images ...scan.Image) (*scan.Outcome, error)
}

// Scan extracts career statistics from the given screenshots and
// merges them into a single result, favoring label-matched values and
// earlier uploads. Requires an engine configured with WithEngine.
func (t *tracker) Scan(ctx context.Context, images ...scan.Image) (*scan.Outcome, error) {
	if t.pipeline == nil {
		return nil, errors.NewConfigError("tracker", "no scan engine configured", nil)
	}
	return t.pipeline.Scan(ctx, images...)
}
