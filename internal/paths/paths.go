package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTodoDirNotFound is returned when no directory between the start
// directory and the filesystem root holds a todo list.
var ErrTodoDirNotFound = errors.New("no todo list found in this directory or any parent")

// Mode selects where the data directory is looked up.
type Mode int

const (
	// ModeLocal walks upward from the working directory.
	ModeLocal Mode = iota
	// ModeGlobal uses the global directory (the home directory by default).
	ModeGlobal
)

func (m Mode) String() string {
	if m == ModeGlobal {
		return "global"
	}
	return "local"
}

// Resolver locates the data directory. The process-wide lookups it needs are
// injected so tests can run without touching the real filesystem.
type Resolver struct {
	// WorkingDir returns the directory local mode starts from.
	WorkingDir func() (string, error)

	// HomeDir returns the user's home directory.
	HomeDir func() (string, error)

	// Exists reports whether path exists.
	Exists func(path string) bool

	// GlobalDir overrides the home directory in global mode. A leading ~ is
	// expanded against HomeDir.
	GlobalDir string

	// Marker is the file whose presence marks a data directory.
	Marker string
}

// NewResolver returns a Resolver backed by the real process environment.
func NewResolver(marker string) Resolver {
	return Resolver{
		WorkingDir: WorkingDir,
		HomeDir:    HomeDir,
		Exists:     Exists,
		Marker:     marker,
	}
}

// Resolve returns the absolute data directory for mode.
func (r Resolver) Resolve(mode Mode) (string, error) {
	switch mode {
	case ModeGlobal:
		return r.globalDir()
	case ModeLocal:
		start, err := r.WorkingDir()
		if err != nil {
			return "", err
		}
		return FindTodoDir(start, r.Marker, r.Exists)
	default:
		return "", fmt.Errorf("unknown mode %d", mode)
	}
}

// Start returns the directory a new list would be created in for mode: the
// working directory in local mode, the global directory otherwise.
func (r Resolver) Start(mode Mode) (string, error) {
	if mode == ModeGlobal {
		return r.globalDir()
	}
	return r.WorkingDir()
}

func (r Resolver) globalDir() (string, error) {
	home, err := r.HomeDir()
	if err != nil {
		return "", err
	}
	if r.GlobalDir == "" {
		return home, nil
	}
	dir := ExpandHome(r.GlobalDir, home)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(home, dir)
	}
	return filepath.Clean(dir), nil
}

// FindTodoDir walks from start toward the filesystem root and returns the
// first directory containing marker. The root itself is checked too.
func FindTodoDir(start, marker string, exists func(string) bool) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", start, err)
	}

	for {
		if exists(filepath.Join(dir, marker)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched upward from %s)", ErrTodoDirNotFound, start)
		}
		dir = parent
	}
}

// ExpandHome replaces a leading ~ in path with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// HomeDir returns the user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ResolveWithDefault returns override when it is non-empty, otherwise the
// result of defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultFn()
}
