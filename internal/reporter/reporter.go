package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	PipelineStarted(info PipelineInfo)
	ExtractionComplete(frameCount int)
	ScanStarted(totalFrames int)
	FrameResult(result FrameResult)
	ScanComplete(summary ScanSummary)
	Warning(message string)
	Error(err ReporterError)
	OperationComplete(message string)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) PipelineStarted(PipelineInfo) {}
func (NullReporter) ExtractionComplete(int)       {}
func (NullReporter) ScanStarted(int)              {}
func (NullReporter) FrameResult(FrameResult)      {}
func (NullReporter) ScanComplete(ScanSummary)     {}
func (NullReporter) Warning(string)               {}
func (NullReporter) Error(ReporterError)          {}
func (NullReporter) OperationComplete(string)     {}
