package filemagic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ReadHeader reads at most max bytes from the start of the file at path.
// It stops early at end of file, and the returned slice holds exactly the
// bytes read, so a file shorter than max yields a shorter header.
//
// Size max with magic.RecommendedReadSize to give high offset formats such as
// ISO 9660 a chance to match.
func ReadHeader(path string, max int) ([]byte, error) {
	if max < 0 {
		return nil, &PathError{Op: "read", Path: path, Err: ErrInvalidSize}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, osPathError("read", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, osPathError("read", path, err)
	}
	if info.IsDir() {
		return nil, &PathError{Op: "read", Path: path, Err: ErrIsDir}
	}

	header, err := ReadHeaderFrom(f, max)
	if err != nil {
		return nil, osPathError("read", path, err)
	}
	return header, nil
}

// ReadHeaderFrom reads at most max bytes from r, stopping early at EOF.
func ReadHeaderFrom(r io.Reader, max int) ([]byte, error) {
	if max < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, max)
	}

	buf := make([]byte, max)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:n], nil
}

// ReadHeaderContext opens path through src and reads at most max bytes.
func ReadHeaderContext(ctx context.Context, src HeaderSource, path string, max int) ([]byte, error) {
	if max < 0 {
		return nil, &PathError{Op: "read", Path: path, Err: ErrInvalidSize}
	}

	rc, err := src.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	header, err := ReadHeaderFrom(rc, max)
	if err != nil {
		return nil, &PathError{Op: "read", Path: path, Err: err}
	}
	return header, nil
}

// osPathError maps an os error onto the package sentinels.
func osPathError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &PathError{Op: op, Path: path, Err: ErrNotExist}
	case errors.Is(err, fs.ErrPermission):
		return &PathError{Op: op, Path: path, Err: ErrPermission}
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return err
	}
	return &PathError{Op: op, Path: path, Err: err}
}
