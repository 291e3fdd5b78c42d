package extractor

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/five82/framesift/internal/errors"
	"github.com/five82/framesift/internal/reporter"
)

// recordingReporter captures warnings emitted by the extractor.
type recordingReporter struct {
	reporter.NullReporter
	warnings []string
}

func (r *recordingReporter) Warning(message string) {
	r.warnings = append(r.warnings, message)
}

func TestExtractFramesCreatesOutputDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/true")
	}

	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "frames")

	ext := NewFFmpeg(nil)
	ext.Binary = "true" // exits 0 without touching the args

	if err := ext.ExtractFrames(context.Background(), "input.mp4", outDir, 1); err != nil {
		t.Fatalf("ExtractFrames failed: %v", err)
	}

	info, err := os.Stat(outDir)
	if err != nil {
		t.Fatalf("output directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestExtractFramesOutputDirCollision(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/true")
	}

	tmpDir := t.TempDir()

	// A regular file occupies the output path.
	collision := filepath.Join(tmpDir, "frames")
	if err := os.WriteFile(collision, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ext := NewFFmpeg(nil)
	ext.Binary = "true"

	err := ext.ExtractFrames(context.Background(), "input.mp4", collision, 1)
	if !errors.IsKind(err, errors.KindIO) {
		t.Errorf("expected I/O error, got %v", err)
	}
}

func TestExtractFramesLaunchError(t *testing.T) {
	ext := NewFFmpeg(nil)
	ext.Binary = "framesift-no-such-binary"

	err := ext.ExtractFrames(context.Background(), "input.mp4", t.TempDir(), 1)
	if !errors.IsKind(err, errors.KindCommand) {
		t.Fatalf("expected command error, got %v", err)
	}

	var cmdErr *errors.CommandError
	if !stderrors.As(err, &cmdErr) {
		t.Fatal("expected CommandError in chain")
	}
	if cmdErr.Kind != errors.CommandStart {
		t.Errorf("expected CommandStart, got %v", cmdErr.Kind)
	}
}

func TestExtractFramesNonZeroExitIsSoft(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/false")
	}

	rec := &recordingReporter{}
	ext := NewFFmpeg(rec)
	ext.Binary = "false" // exits 1

	err := ext.ExtractFrames(context.Background(), "input.mp4", t.TempDir(), 1)
	if err != nil {
		t.Fatalf("non-zero decoder exit must not be an error, got %v", err)
	}
	if len(rec.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(rec.warnings))
	}
}
