// Package scan turns screenshots of the Helldivers 2 career card into
// consensus statistics. An Engine extracts a sparse ParseResult from a
// single screenshot; Merge reconciles the results of several screenshots
// of the same card, field by field, preferring values that were located
// next to their on-screen label over values found by screen position
// alone.
//
// Example usage:
//
//	pipeline, err := scan.NewPipeline(engine)
//	if err != nil {
//		return err
//	}
//	outcome, err := pipeline.Scan(ctx, images...)
//	if err != nil {
//		return err
//	}
//	fmt.Println(outcome.Merged.Stats[stats.KeyEnemyKills])
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
)

// Engine extracts career statistics from a single screenshot.
// Implementations must be safe for concurrent use; the pipeline scans
// the screenshots of a submission in parallel.
type Engine interface {
	Scan(ctx context.Context, img Image) (ParseResult, error)
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(ctx context.Context, img Image) (ParseResult, error)

// Scan calls f.
func (f EngineFunc) Scan(ctx context.Context, img Image) (ParseResult, error) {
	return f(ctx, img)
}

// Image is a screenshot queued for scanning.
type Image struct {
	Name string // Source name used in logs and review output, usually the filename
	MIME string // Content type, e.g. "image/png"
	Data []byte // Raw image bytes
}

// imageMIMEs maps supported file extensions to their content types.
// The set matches what the Gemini API accepts for inline image parts.
var imageMIMEs = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// ReadImage loads a screenshot from disk and derives its content type
// from the file extension. Files larger than the upload limit or with
// an unsupported extension are rejected.
func ReadImage(path string) (Image, error) {
	mimeType, ok := imageMIMEs[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Image{}, errors.NewValidationError("image", path, "unsupported image format, expected png, jpg, or webp")
	}

	info, err := os.Stat(path)
	if err != nil {
		return Image{}, errors.WrapIO("stat", path, err)
	}
	if info.Size() > constants.MaxImageBytes {
		return Image{}, errors.NewValidationError("image", path, "image exceeds the upload size limit")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, errors.WrapIO("read", path, err)
	}

	return Image{
		Name: filepath.Base(path),
		MIME: mimeType,
		Data: data,
	}, nil
}
