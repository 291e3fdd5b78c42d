package framesift

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/framesift/internal/config"
)

func TestNewDefaults(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.config.FrameRate != config.DefaultFrameRate {
		t.Errorf("FrameRate = %d, want %d", s.config.FrameRate, config.DefaultFrameRate)
	}
	if s.config.Threshold != config.DefaultThreshold {
		t.Errorf("Threshold = %v, want %v", s.config.Threshold, config.DefaultThreshold)
	}
	if s.config.FramesDir != config.DefaultFramesDir {
		t.Errorf("FramesDir = %q, want %q", s.config.FramesDir, config.DefaultFramesDir)
	}
}

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		sentinel error
	}{
		{
			name:     "threshold above 1",
			opts:     []Option{WithThreshold(1.5)},
			sentinel: config.ErrInvalidThreshold,
		},
		{
			name:     "zero frame rate",
			opts:     []Option{WithFrameRate(0)},
			sentinel: config.ErrInvalidFrameRate,
		},
		{
			name:     "empty frames dir",
			opts:     []Option{WithFramesDir("")},
			sentinel: config.ErrEmptyFramesDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("New() error = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

type noopExtractor struct{}

func (noopExtractor) ExtractFrames(_ context.Context, _, outputDir string, _ int) error {
	return os.MkdirAll(outputDir, 0755)
}

func TestRunWithCustomExtractor(t *testing.T) {
	input := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(input, []byte("fake video"), 0644); err != nil {
		t.Fatal(err)
	}

	framesDir := filepath.Join(t.TempDir(), "frames")
	s, err := New(
		WithFramesDir(framesDir),
		WithExtractor(noopExtractor{}),
	)
	if err != nil {
		t.Fatal(err)
	}

	result, err := s.Run(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.FramesDir != framesDir {
		t.Errorf("FramesDir = %q, want %q", result.FramesDir, framesDir)
	}
	if result.ScannedFrames != 0 || result.DeletedFrames != 0 {
		t.Errorf("result = %+v, want empty scan", result)
	}
}
