package filemagic

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Watcher detects files as they are created or written in a directory.
type Watcher struct {
	detector  *Detector
	root      string
	pattern   string
	filter    glob.Glob
	recursive bool
}

// NewWatcher creates a watcher over dir. Only files whose path relative to dir,
// or whose base name, matches pattern are detected. A pattern containing "**"
// also watches every subdirectory, including ones created later.
// An empty pattern means "**".
func NewWatcher(d *Detector, dir, pattern string) (*Watcher, error) {
	if pattern == "" {
		pattern = "**"
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, &PathError{Op: "watch", Path: pattern, Err: err}
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, &PathError{Op: "watch", Path: dir, Err: err}
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, osPathError("watch", dir, err)
	}
	if !info.IsDir() {
		return nil, &PathError{Op: "watch", Path: dir, Err: errors.New("not a directory")}
	}

	return &Watcher{
		detector:  d,
		root:      root,
		pattern:   pattern,
		filter:    g,
		recursive: strings.Contains(pattern, "**"),
	}, nil
}

// Watch starts watching and returns a channel receiving one Result per
// create or write event on a matching file. A file written several times is
// reported several times. The channel is closed once ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan *Result, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &PathError{Op: "watch", Path: w.root, Err: err}
	}

	if err := w.addTree(fw, w.root); err != nil {
		fw.Close()
		return nil, &PathError{Op: "watch", Path: w.root, Err: err}
	}

	out := make(chan *Result)
	log := w.detector.logger

	go func() {
		defer close(out)
		defer fw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}

				info, err := os.Stat(event.Name)
				if err != nil {
					// Removed again before we got to it
					continue
				}
				if info.IsDir() {
					if w.recursive && event.Has(fsnotify.Create) {
						if err := w.addTree(fw, event.Name); err != nil {
							log.Warn().Err(err).Str("dir", event.Name).Msg("cannot watch directory")
						}
					}
					continue
				}

				if !w.matches(event.Name) {
					continue
				}

				res, err := w.detector.detectFrom(ctx, osSource{}, event.Name)
				if err != nil {
					res = &Result{Path: event.Name, ReadSize: w.detector.readSize, Err: err}
				}

				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				// Log error but continue watching
				log.Warn().Err(err).Str("root", w.root).Msg("watch error")
			}
		}
	}()

	log.Debug().Str("root", w.root).Str("pattern", w.pattern).Msg("watching")
	return out, nil
}

// addTree watches dir and, for recursive patterns, every directory below it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	if !w.recursive {
		return fw.Add(dir)
	}
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}

// matches checks the path relative to the root, then the base name.
func (w *Watcher) matches(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	return w.filter.Match(rel) || w.filter.Match(filepath.Base(path))
}
