package filemagic

import (
	"github.com/gobeaver/filemagic/magic"
	"github.com/rs/zerolog"
)

// Option configures a Detector
type Option func(*Detector)

// WithSource sets where Detect opens paths. The default opens them directly
// from the local filesystem.
func WithSource(src HeaderSource) Option {
	return func(d *Detector) {
		d.source = src
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// WithRules replaces the built-in signature table. Rules are consulted in
// order and the default read size becomes their largest MaxBytesRead.
func WithRules(rules []magic.Rule) Option {
	return func(d *Detector) {
		d.rules = append([]magic.Rule(nil), rules...)
	}
}
