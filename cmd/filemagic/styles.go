package main

import (
	"github.com/fatih/color"
	"github.com/gobeaver/filemagic"
)

// styles holds color formatters for detection output
type styles struct {
	path    *color.Color
	kind    *color.Color
	unknown *color.Color
	failed  *color.Color
	detail  *color.Color
}

// newStyles creates color formatters
// enabled=false respects --no-color flag and NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		path:    color.New(color.Bold),
		kind:    color.New(color.FgHiGreen),
		unknown: color.New(color.FgYellow),
		failed:  color.New(color.FgHiRed),
		detail:  color.New(color.FgHiBlue),
	}

	if !enabled {
		s.path.DisableColor()
		s.kind.DisableColor()
		s.unknown.DisableColor()
		s.failed.DisableColor()
		s.detail.DisableColor()
	}

	return s
}

func colorEnabled() bool {
	return !noColor && !color.NoColor
}

// line renders one result as "path  kind  mime  bytes".
func (s *styles) line(res *filemagic.Result) string {
	switch {
	case res.Err != nil:
		return s.path.Sprint(res.Path) + "  " + s.failed.Sprintf("error: %v", res.Err)
	case res.Kind.IsUnknown():
		return s.path.Sprint(res.Path) + "  " + s.unknown.Sprint(res.Kind.String()) +
			"  " + s.detail.Sprintf("%d bytes", res.BytesRead)
	default:
		return s.path.Sprint(res.Path) + "  " + s.kind.Sprint(res.Kind.String()) +
			"  " + s.detail.Sprintf("%s  %d bytes", res.MIME, res.BytesRead)
	}
}
