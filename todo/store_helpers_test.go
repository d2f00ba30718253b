package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.October, 19, 14, 30, 0, 0, time.UTC)

type recordingLogger struct {
	warnings []string
	debug    []string
}

func (l *recordingLogger) Debug(msg interface{}, keyvals ...interface{}) {
	l.debug = append(l.debug, fmt.Sprint(msg))
}

func (l *recordingLogger) Warn(msg interface{}, keyvals ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprint(msg))
}

// setupTestStore creates a data directory with the given config and opens it
// with a fixed clock.
func setupTestStore(t *testing.T, cfg Config) (*Store, *recordingLogger) {
	t.Helper()

	dir := t.TempDir()
	if _, err := Create(dir, CreateOptions{Config: cfg}); err != nil {
		t.Fatalf("create store: %v", err)
	}

	logger := &recordingLogger{}
	store, err := Open(dir, OpenOptions{
		Logger: logger,
		Now:    func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, logger
}

func addTodos(t *testing.T, store *Store, descriptions ...string) {
	t.Helper()

	for _, description := range descriptions {
		if _, err := store.Add(AddOptions{Description: description, DueDate: "today", DueTime: "12"}); err != nil {
			t.Fatalf("add %q: %v", description, err)
		}
	}
}

func readStoreFile(t *testing.T, store *Store, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func descriptions(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Todo.Description)
	}
	return out
}

func joined(values []string) string {
	return strings.Join(values, ",")
}
