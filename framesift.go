// Package framesift provides a Go library for extracting video frames and
// pruning visual near-duplicates.
//
// Framesift wraps an external FFmpeg process to sample still frames from a
// video at a fixed rate, then walks the extracted frames in sequence order
// and deletes every frame whose pixel-difference ratio against the last
// retained frame is at or below a similarity threshold.
//
// Basic usage:
//
//	sifter, err := framesift.New(
//	    framesift.WithThreshold(0.01),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sifter.Run(ctx, "input.mp4", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("kept %d of %d frames\n", result.KeptFrames, result.ScannedFrames)
package framesift

import (
	"context"

	"github.com/five82/framesift/internal/config"
	"github.com/five82/framesift/internal/extractor"
	"github.com/five82/framesift/internal/processing"
	"github.com/five82/framesift/internal/reporter"
)

// Reporter receives progress events during a run.
type Reporter = reporter.Reporter

// Extractor converts a video into numbered frame images. Supplying a
// custom implementation swaps the decoding backend without touching the
// deduplication logic.
type Extractor = extractor.Extractor

// NewTerminalReporter returns the reporter used by the framesift CLI.
func NewTerminalReporter() Reporter {
	return reporter.NewTerminalReporter()
}

// Sifter is the main entry point for frame extraction and deduplication.
type Sifter struct {
	config    *config.Config
	extractor extractor.Extractor
}

// Result contains the result of a single run.
type Result struct {
	FramesDir      string
	ScannedFrames  int
	KeptFrames     int
	DeletedFrames  int
	BytesReclaimed uint64
}

// Option configures the sifter.
type Option func(*Sifter)

// New creates a new Sifter with the given options.
func New(opts ...Option) (*Sifter, error) {
	s := &Sifter{config: config.NewConfig()}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// WithFrameRate sets the sampling rate in frames per second of video.
func WithFrameRate(fps int) Option {
	return func(s *Sifter) {
		s.config.FrameRate = fps
	}
}

// WithThreshold sets the similarity threshold in [0,1]. Two frames whose
// pixel-difference ratio is at or below the threshold are duplicates.
func WithThreshold(threshold float64) Option {
	return func(s *Sifter) {
		s.config.Threshold = threshold
	}
}

// WithFramesDir sets the working directory frames are extracted into.
func WithFramesDir(dir string) Option {
	return func(s *Sifter) {
		s.config.FramesDir = dir
	}
}

// WithExtractor replaces the default FFmpeg extractor.
func WithExtractor(ext Extractor) Option {
	return func(s *Sifter) {
		s.extractor = ext
	}
}

// Run extracts frames from the input video and deletes near-duplicates,
// leaving only unique frames in the frames directory. If rep is nil,
// progress events are discarded.
func (s *Sifter) Run(ctx context.Context, input string, rep Reporter) (*Result, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	summary, err := processing.Run(ctx, s.config, input, s.extractor, rep)
	if err != nil {
		rep.Error(reporter.ReporterError{
			Title:   "run failed",
			Message: err.Error(),
		})
		return nil, err
	}

	return &Result{
		FramesDir:      s.config.FramesDir,
		ScannedFrames:  summary.Scanned,
		KeptFrames:     summary.Kept,
		DeletedFrames:  summary.Deleted,
		BytesReclaimed: summary.BytesReclaimed,
	}, nil
}
