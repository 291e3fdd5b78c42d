package reporter

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/five82/framesift/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu       sync.Mutex
	progress *progressbar.ProgressBar
	cyan     *color.Color
	green    *color.Color
	yellow   *color.Color
	red      *color.Color
	magenta  *color.Color
	bold     *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}

// printLabel prints a bold label with fixed width padding followed by a value.
// Width is applied to the plain text before styling to ensure proper alignment.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) PipelineStarted(info PipelineInfo) {
	fmt.Println()
	_, _ = r.cyan.Println("VIDEO")
	const w = 11
	r.printLabel(w, "File:", info.InputFile)
	r.printLabel(w, "Frames dir:", info.FramesDir)
	r.printLabel(w, "Rate:", fmt.Sprintf("%d fps", info.FrameRate))
	r.printLabel(w, "Threshold:", fmt.Sprintf("%.2f%% differing pixels", info.Threshold*100))

	fmt.Println()
	_, _ = r.cyan.Println("EXTRACTION")
	fmt.Printf("  %s extracting frames with ffmpeg\n", r.magenta.Sprint("›"))
}

func (r *TerminalReporter) ExtractionComplete(frameCount int) {
	fmt.Printf("  %s %d frame(s) on disk\n", r.magenta.Sprint("›"), frameCount)
}

func (r *TerminalReporter) ScanStarted(totalFrames int) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("DEDUPLICATION")

	if totalFrames == 0 {
		fmt.Printf("  %s nothing to scan\n", r.magenta.Sprint("›"))
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = progressbar.NewOptions64(
		int64(totalFrames),
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Scanning [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) FrameResult(result FrameResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}

	_ = r.progress.Add(1)

	switch {
	case result.FirstFrame:
		r.progress.Describe(fmt.Sprintf("%s baseline", result.Filename))
	case result.Deleted:
		r.progress.Describe(fmt.Sprintf("%s deleted (%.2f%%)", result.Filename, result.Ratio*100))
	default:
		r.progress.Describe(fmt.Sprintf("%s kept (%.2f%%)", result.Filename, result.Ratio*100))
	}
}

func (r *TerminalReporter) ScanComplete(summary ScanSummary) {
	r.finishProgress()

	fmt.Println()
	_, _ = r.cyan.Println("RESULTS")
	const w = 10
	r.printLabel(w, "Scanned:", fmt.Sprintf("%d frame(s)", summary.Scanned))
	r.printLabel(w, "Kept:", r.green.Sprintf("%d", summary.Kept))
	r.printLabel(w, "Deleted:", fmt.Sprintf("%d", summary.Deleted))
	r.printLabel(w, "Reclaimed:", util.FormatBytes(summary.BytesReclaimed))
	r.printLabel(w, "Time:", util.FormatDurationFromSecs(int64(summary.Elapsed.Seconds())))
}

func (r *TerminalReporter) Warning(message string) {
	r.finishProgress()
	fmt.Println()
	_, _ = r.yellow.Printf("WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishProgress()
	_, _ = fmt.Fprintln(os.Stderr)
	_, _ = r.red.Fprintf(os.Stderr, "ERROR %s\n", err.Title)
	_, _ = fmt.Fprintf(os.Stderr, "  %s\n", err.Message)
	if err.Context != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Context: %s\n", err.Context)
	}
	if err.Suggestion != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  Suggestion: %s\n", err.Suggestion)
	}
}

func (r *TerminalReporter) OperationComplete(message string) {
	r.finishProgress()
	fmt.Println()
	fmt.Printf("%s %s\n", r.green.Add(color.Bold).Sprint("✓"), r.bold.Sprint(message))
}
