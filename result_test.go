package filemagic

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gobeaver/filemagic/magic"
)

func TestResultSummary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   []string
	}{
		{
			name: "known",
			result: Result{
				Path: "a.png", Kind: magic.PNG, MIME: "image/png",
				BytesRead: 2048, Duration: 1500 * time.Nanosecond,
			},
			want: []string{"✓ a.png png", "image/png", "2 KB read"},
		},
		{
			name:   "unknown",
			result: Result{Path: "b.bin", BytesRead: 12},
			want:   []string{"? b.bin unknown", "12 B read"},
		},
		{
			name:   "failed",
			result: Result{Path: "c", Err: errors.New("boom")},
			want:   []string{"✗ c failed: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.Summary()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Summary() = %q, want it to contain %q", got, w)
				}
			}
		})
	}
}

func TestResultFlags(t *testing.T) {
	r := Result{Kind: magic.GIF, BytesRead: 10, ReadSize: 2048}
	if !r.Known() {
		t.Error("Known() = false, want true")
	}
	if !r.Truncated() {
		t.Error("Truncated() = false, want true")
	}

	r = Result{Kind: magic.Unknown, BytesRead: 2048, ReadSize: 2048}
	if r.Known() || r.Truncated() {
		t.Errorf("Known() = %v, Truncated() = %v; want false, false", r.Known(), r.Truncated())
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{36870, "36 KB"},
		{5 * MB, "5 MB"},
	}

	for _, tt := range tests {
		if got := formatSize(tt.size); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
