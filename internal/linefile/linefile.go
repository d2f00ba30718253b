// Package linefile manages newline-delimited record files.
//
// Files are never created implicitly: every operation expects the file to
// exist already. Each operation holds an advisory flock on the file for its
// duration, and rewrites go through a temp file that is renamed into place.
package linefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
)

const maxLineBytes = 1024 * 1024

// ErrIndexOutOfBounds is returned when a line index is outside the file.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// Append writes line plus a trailing newline to the end of the file at path.
func Append(path, line string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	if err := lock(f, syscall.LOCK_EX); err != nil {
		return err
	}
	defer unlock(f)

	if _, err := io.WriteString(f, line+"\n"); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}

// ReadAll returns every line in the file at path. An empty file yields no lines.
func ReadAll(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := lock(f, syscall.LOCK_SH); err != nil {
		return nil, err
	}
	defer unlock(f)

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// RemoveAt deletes the line at index and rewrites the file from the remaining
// lines. It returns the removed line. An out-of-range index leaves the file
// untouched and returns ErrIndexOutOfBounds.
func RemoveAt(path string, index int) (string, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := lock(f, syscall.LOCK_EX); err != nil {
		return "", err
	}
	defer unlock(f)

	lines, err := readLines(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if index < 0 || index >= len(lines) {
		return "", fmt.Errorf("%w: index %d, %d lines in %s", ErrIndexOutOfBounds, index, len(lines), path)
	}

	removed := lines[index]
	remaining := append(lines[:index:index], lines[index+1:]...)
	if err := writeLines(path, remaining); err != nil {
		return "", err
	}
	return removed, nil
}

// Rewrite replaces the contents of the existing file at path with lines.
func Rewrite(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := lock(f, syscall.LOCK_EX); err != nil {
		return err
	}
	defer unlock(f)

	return writeLines(path, lines)
}

// Truncate empties the existing file at path.
func Truncate(path string) error {
	return Rewrite(path, nil)
}

func readLines(reader io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// writeLines writes lines to a temp file next to path and renames it over path.
func writeLines(path string, lines []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	writer := bufio.NewWriter(f)
	if len(lines) > 0 {
		if _, err := writer.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("write temp file: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flush temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func lock(f *os.File, how int) error {
	if err := syscall.Flock(int(f.Fd()), how); err != nil {
		return fmt.Errorf("lock %s: %w", f.Name(), err)
	}
	return nil
}

func unlock(f *os.File) {
	_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
}
