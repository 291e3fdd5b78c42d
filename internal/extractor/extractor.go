// Package extractor extracts still frames from a video into a directory.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/five82/framesift/internal/config"
	"github.com/five82/framesift/internal/errors"
	"github.com/five82/framesift/internal/logging"
	"github.com/five82/framesift/internal/reporter"
	"github.com/five82/framesift/internal/util"
)

// Extractor converts a video file into a numbered sequence of frame images.
// Implementations own the decoding backend; the scan phase only sees the
// files left in outputDir.
type Extractor interface {
	ExtractFrames(ctx context.Context, inputPath, outputDir string, fps int) error
}

// FFmpeg extracts frames by spawning an ffmpeg process.
type FFmpeg struct {
	// Binary is the ffmpeg executable name or path. Tests point this at
	// stub executables.
	Binary string

	rep reporter.Reporter
}

// NewFFmpeg creates an ffmpeg-backed extractor reporting through rep.
func NewFFmpeg(rep reporter.Reporter) *FFmpeg {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	return &FFmpeg{
		Binary: "ffmpeg",
		rep:    rep,
	}
}

// ExtractFrames runs ffmpeg to sample fps frames per second of inputPath
// into outputDir as zero-padded PNG files, waiting for completion.
//
// A failure to create the output directory or to start ffmpeg is returned
// as an error. An ffmpeg run that starts but exits non-zero is reported as
// a warning and ExtractFrames returns nil: the scan phase operates on
// whatever partial output exists.
func (f *FFmpeg) ExtractFrames(ctx context.Context, inputPath, outputDir string, fps int) error {
	if err := util.EnsureDirectory(outputDir); err != nil {
		return errors.NewIOError("cannot create frames directory "+outputDir, err)
	}

	pattern := filepath.Join(outputDir, config.FramePattern)
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", inputPath,
		"-vf", fmt.Sprintf("fps=%d", fps),
		pattern,
	}

	logging.Debug("starting frame extraction",
		"binary", f.Binary,
		"input", inputPath,
		"fps", fps,
		"pattern", pattern)

	cmd := exec.CommandContext(ctx, f.Binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return errors.NewCommandStartError(f.Binary, err)
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// Soft failure: the decoder ran and failed, so the directory
			// holds whatever frames it managed to write. The scan still
			// runs over that partial output.
			msg := fmt.Sprintf("ffmpeg exited with code %d", exitErr.ExitCode())
			if detail := strings.TrimSpace(stderr.String()); detail != "" {
				msg += ": " + detail
			}
			logging.Warn("frame extraction failed", "error", msg)
			f.rep.Warning(msg)
			return nil
		}
		return errors.NewCommandWaitError(f.Binary, err)
	}

	logging.Debug("frame extraction complete", "dir", outputDir)
	return nil
}
