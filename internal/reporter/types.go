// Package reporter provides progress reporting interfaces and implementations.
package reporter

import "time"

// PipelineInfo describes the run before extraction starts.
type PipelineInfo struct {
	InputFile string
	FramesDir string
	FrameRate int
	Threshold float64
}

// FrameResult is the outcome of scanning a single frame.
type FrameResult struct {
	Filename string
	Deleted  bool
	Ratio    float64
	// FirstFrame is set when the frame was retained without comparison.
	FirstFrame bool
}

// ScanSummary contains the final results of a dedup scan.
type ScanSummary struct {
	Scanned        int
	Kept           int
	Deleted        int
	BytesReclaimed uint64
	Elapsed        time.Duration
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}
