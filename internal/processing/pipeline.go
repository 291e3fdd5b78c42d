// Package processing orchestrates the extract-then-scan pipeline.
package processing

import (
	"context"
	"fmt"

	"github.com/five82/framesift/internal/config"
	"github.com/five82/framesift/internal/errors"
	"github.com/five82/framesift/internal/extractor"
	"github.com/five82/framesift/internal/logging"
	"github.com/five82/framesift/internal/reporter"
	"github.com/five82/framesift/internal/scanner"
	"github.com/five82/framesift/internal/util"
)

// Run executes the two-phase pipeline: extract frames from inputPath into
// the configured frames directory, then scan that directory and delete
// near-duplicate frames. Extraction completes (or soft-fails) before the
// scan begins; the phases never overlap.
func Run(ctx context.Context, cfg *config.Config, inputPath string, ext extractor.Extractor, rep reporter.Reporter) (*scanner.Summary, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	if ext == nil {
		ext = extractor.NewFFmpeg(rep)
	}

	if !util.FileExists(inputPath) {
		return nil, errors.NewPathError(fmt.Sprintf("input video %s does not exist or is not a regular file", inputPath))
	}

	rep.PipelineStarted(reporter.PipelineInfo{
		InputFile: inputPath,
		FramesDir: cfg.FramesDir,
		FrameRate: cfg.FrameRate,
		Threshold: cfg.Threshold,
	})

	logging.Info("extraction phase starting", "input", inputPath, "dir", cfg.FramesDir)
	if err := ext.ExtractFrames(ctx, inputPath, cfg.FramesDir, cfg.FrameRate); err != nil {
		return nil, err
	}

	// The extractor may have soft-failed; report whatever is on disk.
	names, err := scanner.ListFrames(cfg.FramesDir)
	if err != nil {
		return nil, err
	}
	rep.ExtractionComplete(len(names))

	logging.Info("scan phase starting", "frames", len(names), "threshold", cfg.Threshold)
	summary, err := scanner.New(cfg.Threshold, rep).Scan(cfg.FramesDir)
	if err != nil {
		return nil, err
	}

	rep.ScanComplete(reporter.ScanSummary{
		Scanned:        summary.Scanned,
		Kept:           summary.Kept,
		Deleted:        summary.Deleted,
		BytesReclaimed: summary.BytesReclaimed,
		Elapsed:        summary.Elapsed,
	})
	logging.Info("scan phase complete",
		"scanned", summary.Scanned,
		"kept", summary.Kept,
		"deleted", summary.Deleted)

	return summary, nil
}
