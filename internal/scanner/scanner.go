// Package scanner removes near-duplicate frames from a directory of
// extracted frame images.
package scanner

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/five82/framesift/internal/config"
	"github.com/five82/framesift/internal/errors"
	"github.com/five82/framesift/internal/frame"
	"github.com/five82/framesift/internal/logging"
	"github.com/five82/framesift/internal/reporter"
	"github.com/five82/framesift/internal/util"
)

// Summary contains the results of one dedup scan.
type Summary struct {
	Scanned        int
	Kept           int
	Deleted        int
	BytesReclaimed uint64
	Elapsed        time.Duration
}

// Scanner performs the sequential deduplication pass.
type Scanner struct {
	threshold float64
	rep       reporter.Reporter
}

// New creates a scanner with the given similarity threshold.
func New(threshold float64, rep reporter.Reporter) *Scanner {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	return &Scanner{
		threshold: threshold,
		rep:       rep,
	}
}

// ListFrames returns the frame filenames in dir in sequence order.
// Only regular files with the frame extension are considered. The sort is
// load-bearing: directory listing order is not guaranteed, and the
// zero-padded ordinals make lexicographic order equal sequence order.
func ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIOError("cannot read frames directory "+dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), config.FrameExt) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Scan walks the frames in dir in sequence order, deleting every frame
// whose pixel-difference ratio against the last retained frame is at or
// below the threshold. The first frame is always retained; a deleted
// frame never becomes the comparison baseline.
func (s *Scanner) Scan(dir string) (*Summary, error) {
	start := time.Now()

	names, err := ListFrames(dir)
	if err != nil {
		return nil, err
	}

	s.rep.ScanStarted(len(names))

	summary := &Summary{}
	var baseline image.Image

	for _, name := range names {
		path := filepath.Join(dir, name)

		current, err := frame.Decode(path)
		if err != nil {
			return nil, err
		}

		summary.Scanned++

		if baseline == nil {
			baseline = current
			summary.Kept++
			logging.Debug("first frame retained", "frame", name)
			s.rep.FrameResult(reporter.FrameResult{Filename: name, FirstFrame: true})
			continue
		}

		ratio := ratioAgainst(baseline, current, s.threshold)
		if ratio.similar {
			size, _ := util.GetFileSize(path)
			if err := os.Remove(path); err != nil {
				return nil, errors.NewIOError("cannot delete duplicate frame "+path, err)
			}
			summary.Deleted++
			summary.BytesReclaimed += size
			logging.Debug("duplicate frame deleted", "frame", name, "ratio", ratio.value)
			s.rep.FrameResult(reporter.FrameResult{Filename: name, Deleted: true, Ratio: ratio.value})
			continue
		}

		baseline = current
		summary.Kept++
		logging.Debug("frame retained", "frame", name, "ratio", ratio.value)
		s.rep.FrameResult(reporter.FrameResult{Filename: name, Ratio: ratio.value})
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

type comparison struct {
	similar bool
	value   float64
}

// ratioAgainst evaluates one candidate against the baseline. A dimension
// mismatch short-circuits to "not similar" without computing a ratio.
func ratioAgainst(baseline, current image.Image, threshold float64) comparison {
	if !baseline.Bounds().Size().Eq(current.Bounds().Size()) {
		return comparison{similar: false, value: 1}
	}
	ratio := frame.DiffRatio(baseline, current)
	return comparison{similar: ratio <= threshold, value: ratio}
}
