package filemagic

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// HeaderSource opens files whose headers are to be classified.
type HeaderSource interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// osSource opens paths as given, relative to the working directory.
type osSource struct{}

func (osSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return openRegular(path, path)
}

// LocalSource opens files below a root directory.
// Paths that resolve outside the root are refused with ErrNotAllowed.
type LocalSource struct {
	root string
}

// NewLocalSource creates a source rooted at root, which must be an existing directory.
func NewLocalSource(root string) (*LocalSource, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, osPathError("open", root, err)
	}
	if !info.IsDir() {
		return nil, &PathError{Op: "open", Path: root, Err: os.ErrInvalid}
	}

	return &LocalSource{root: absRoot}, nil
}

// Root returns the absolute root directory.
func (s *LocalSource) Root() string {
	return s.root
}

// Open implements HeaderSource
func (s *LocalSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fullPath := filepath.Join(s.root, filepath.Clean(path))

	// Check if the path is under the root
	if !isPathUnderRoot(s.root, fullPath) {
		return nil, &PathError{
			Op:   "open",
			Path: path,
			Err:  ErrNotAllowed,
		}
	}

	return openRegular(fullPath, path)
}

// openRegular opens fullPath and refuses directories. Errors report name.
func openRegular(fullPath, name string) (io.ReadCloser, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, osPathError("open", name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, osPathError("open", name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, &PathError{Op: "open", Path: name, Err: ErrIsDir}
	}

	return f, nil
}

// isPathUnderRoot checks if a path is under a given root directory
func isPathUnderRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return !filepath.IsAbs(rel) && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// MemorySource serves headers from memory.
// Useful for testing and for classifying data that never touches disk.
type MemorySource struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySource creates an empty in-memory source
func NewMemorySource() *MemorySource {
	return &MemorySource{files: make(map[string][]byte)}
}

// Put stores data under path, replacing any previous content.
func (s *MemorySource) Put(path string, data []byte) error {
	path = normalizePath(path)
	if !isValidPath(path) {
		return &PathError{Op: "put", Path: path, Err: ErrNotAllowed}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = bytes.Clone(data)
	return nil
}

// Remove deletes path. Removing a missing path is not an error.
func (s *MemorySource) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, normalizePath(path))
}

// Open implements HeaderSource
func (s *MemorySource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path = normalizePath(path)
	if !isValidPath(path) {
		return nil, &PathError{Op: "open", Path: path, Err: ErrNotAllowed}
	}

	s.mu.RLock()
	data, ok := s.files[path]
	s.mu.RUnlock()
	if !ok {
		return nil, &PathError{Op: "open", Path: path, Err: ErrNotExist}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Paths returns the stored paths matching pattern, sorted.
// An empty pattern matches everything.
func (s *MemorySource) Paths(pattern string) ([]string, error) {
	var g glob.Glob
	if pattern != "" {
		var err error
		if g, err = glob.Compile(pattern, '/'); err != nil {
			return nil, &PathError{Op: "glob", Path: pattern, Err: err}
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		if g == nil || g.Match(p) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// normalizePath strips the leading slash and cleans the path
func normalizePath(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" || path == "." {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(path))
}

// isValidPath rejects empty paths and parent references
func isValidPath(path string) bool {
	if path == "" {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

// Ensure sources implement HeaderSource
var (
	_ HeaderSource = osSource{}
	_ HeaderSource = (*LocalSource)(nil)
	_ HeaderSource = (*MemorySource)(nil)
)
