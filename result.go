package filemagic

import (
	"fmt"
	"math"
	"time"

	"github.com/gobeaver/filemagic/magic"
)

// Result describes the detection of a single file
type Result struct {
	// Path is the file path, or the name given to DetectReader
	Path string

	// Kind is the detected format, magic.Unknown on no match
	Kind magic.Kind

	// MIME and Extension are Kind's MIME type and conventional extension
	MIME      string
	Extension string

	// BytesRead is the header length actually classified
	BytesRead int

	// ReadSize is the header length that was requested
	ReadSize int

	// Checksum fingerprints the header (empty when disabled)
	Checksum string

	// Duration is how long reading and matching took
	Duration time.Duration

	// Err is set when the header could not be read
	Err error
}

// Known reports whether detection succeeded with a known kind.
func (r *Result) Known() bool {
	return r.Err == nil && !r.Kind.IsUnknown()
}

// Truncated reports whether the file ended before ReadSize bytes.
func (r *Result) Truncated() bool {
	return r.Err == nil && r.BytesRead < r.ReadSize
}

// Summary returns a human-readable summary of the detection
func (r *Result) Summary() string {
	if r.Err != nil {
		return fmt.Sprintf("✗ %s failed: %v", r.Path, r.Err)
	}
	if r.Kind.IsUnknown() {
		return fmt.Sprintf("? %s unknown (%s read) in %v",
			r.Path,
			formatSize(int64(r.BytesRead)),
			r.Duration.Round(time.Microsecond),
		)
	}
	return fmt.Sprintf("✓ %s %s (%s, %s read) in %v",
		r.Path,
		r.Kind,
		r.MIME,
		formatSize(int64(r.BytesRead)),
		r.Duration.Round(time.Microsecond),
	)
}

// Size constants
const (
	KB = 1024
	MB = 1024 * KB
)

// formatSize returns a human-readable byte count
func formatSize(size int64) string {
	if size < KB {
		return fmt.Sprintf("%d B", size)
	}
	unit, suffix := float64(KB), "KB"
	if size >= MB {
		unit, suffix = float64(MB), "MB"
	}
	rounded := math.Round(float64(size)/unit*10) / 10
	if rounded == float64(int64(rounded)) {
		return fmt.Sprintf("%.0f %s", rounded, suffix)
	}
	return fmt.Sprintf("%.1f %s", rounded, suffix)
}
