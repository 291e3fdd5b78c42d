// Package config provides configuration types and defaults for framesift.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidFrameRate indicates a sampling rate below one frame per second.
	ErrInvalidFrameRate = errors.New("frame rate out of range")

	// ErrInvalidThreshold indicates a similarity threshold outside [0,1].
	ErrInvalidThreshold = errors.New("similarity threshold out of range")

	// ErrEmptyFramesDir indicates no working directory was configured.
	ErrEmptyFramesDir = errors.New("frames directory is empty")
)
