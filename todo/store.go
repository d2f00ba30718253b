package todo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// TodosFile holds open todos. Its presence marks a data directory.
	TodosFile = ".todo.todo"

	// FinishedFile holds finished todos.
	FinishedFile = ".todo.finished"

	// DeletedFile holds deleted todos kept under PolicyKeep.
	DeletedFile = ".todo.deleted"

	// ConfigFile holds the owner name and deletion policy.
	ConfigFile = ".todo.config"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Logger receives diagnostics from store operations.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(interface{}, ...interface{}) {}
func (noopLogger) Warn(interface{}, ...interface{})  {}

// Store provides access to the todo list in one data directory.
type Store struct {
	dir    string
	logger Logger
	now    func() time.Time
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Logger receives warnings such as a missing config. If nil, nothing is logged.
	Logger Logger

	// Now supplies the current time for due-date parsing and creation stamps.
	// If nil, time.Now is used.
	Now func() time.Time
}

// Open opens the todo list in dir. It returns ErrNoTodoStore if dir has no
// open-todos file.
func Open(dir string, opts OpenOptions) (*Store, error) {
	store := newStore(dir, opts)

	if _, err := os.Stat(store.path(TodosFile)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s (run `todo create` first)", ErrNoTodoStore, dir)
		}
		return nil, fmt.Errorf("stat todo file: %w", err)
	}

	return store, nil
}

func newStore(dir string, opts OpenOptions) *Store {
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{dir: dir, logger: opts.Logger, now: opts.Now}
}

// Dir returns the data directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// SectionPath returns the file backing section.
func (s *Store) SectionPath(section Section) (string, error) {
	if err := ValidateSection(section); err != nil {
		return "", err
	}
	return s.path(sectionFile(section)), nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func sectionFile(section Section) string {
	switch section {
	case SectionFinished:
		return FinishedFile
	case SectionDeleted:
		return DeletedFile
	default:
		return TodosFile
	}
}

// CreateOptions configures Create.
type CreateOptions struct {
	// Config is written when the directory has no config file yet.
	Config Config
}

// CreateResult reports which files Create wrote and which already existed.
type CreateResult struct {
	Created  []string
	Existing []string
}

// Create bootstraps a data directory: the three record files (empty) and the
// config file. Files that already exist are left untouched.
func Create(dir string, opts CreateOptions) (CreateResult, error) {
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return CreateResult{}, err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return CreateResult{}, fmt.Errorf("create data dir %q: %w", dir, err)
	}

	files := []struct {
		name    string
		content string
	}{
		{name: ConfigFile, content: cfg.String()},
		{name: TodosFile},
		{name: FinishedFile},
		{name: DeletedFile},
	}

	var result CreateResult
	for _, file := range files {
		created, err := createExclusive(filepath.Join(dir, file.name), file.content)
		if err != nil {
			return result, err
		}
		if created {
			result.Created = append(result.Created, file.name)
		} else {
			result.Existing = append(result.Existing, file.name)
		}
	}

	return result, nil
}

func createExclusive(path, content string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", path, err)
	}
	return true, nil
}
