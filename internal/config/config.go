// Package config provides configuration types and defaults for framesift.
package config

import (
	"fmt"
	"math"
)

// Default constants
const (
	// DefaultFrameRate is the sampling rate in frames per second of source video.
	DefaultFrameRate int = 1

	// DefaultThreshold is the maximum pixel-difference ratio at which two
	// frames are still considered duplicates.
	DefaultThreshold float64 = 0.01

	// DefaultFramesDir is the working directory frames are extracted into,
	// relative to the current directory.
	DefaultFramesDir string = "frames"

	// FramePattern is the ffmpeg output pattern for extracted frames.
	// The zero-padded ordinal makes lexicographic order equal sequence order.
	FramePattern string = "frame_%04d.png"

	// FrameExt is the extension of extracted frame files.
	FrameExt string = ".png"
)

// Config contains the settings for one extract-and-dedup run.
type Config struct {
	// FrameRate is the number of frames sampled per second of video.
	FrameRate int

	// Threshold is the similarity threshold in [0,1]. A frame whose
	// pixel-difference ratio against the baseline is at or below this
	// value is deleted.
	Threshold float64

	// FramesDir is the directory frames are written to and scanned in.
	FramesDir string
}

// NewConfig creates a configuration with default settings.
func NewConfig() *Config {
	return &Config{
		FrameRate: DefaultFrameRate,
		Threshold: DefaultThreshold,
		FramesDir: DefaultFramesDir,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.FrameRate < 1 {
		return fmt.Errorf("%w: %d (must be a positive integer)", ErrInvalidFrameRate, c.FrameRate)
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: %v (must be within [0,1])", ErrInvalidThreshold, c.Threshold)
	}
	if c.FramesDir == "" {
		return ErrEmptyFramesDir
	}
	return nil
}
