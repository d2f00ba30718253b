package todo

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOpen_NoTodoFile(t *testing.T) {
	_, err := Open(t.TempDir(), OpenOptions{})
	if !errors.Is(err, ErrNoTodoStore) {
		t.Fatalf("expected ErrNoTodoStore, got %v", err)
	}
}

func TestCreate_WritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "list")

	result, err := Create(dir, CreateOptions{Config: Config{Name: "alice", Policy: PolicyDiscard}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created := append([]string(nil), result.Created...)
	sort.Strings(created)
	want := []string{ConfigFile, DeletedFile, FinishedFile, TodosFile}
	sort.Strings(want)
	if joined(created) != joined(want) {
		t.Fatalf("expected created %v, got %v", want, created)
	}
	if len(result.Existing) != 0 {
		t.Fatalf("expected nothing existing, got %v", result.Existing)
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "alice\ndiscard\n" {
		t.Fatalf("unexpected config %q", data)
	}

	for _, name := range []string{TodosFile, FinishedFile, DeletedFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() != 0 {
			t.Fatalf("expected %s to be empty", name)
		}
	}
}

func TestCreate_DefaultConfig(t *testing.T) {
	dir := t.TempDir()

	if _, err := Create(dir, CreateOptions{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(data) != "default-name\nkeep\n" {
		t.Fatalf("unexpected config %q", data)
	}
}

func TestCreate_LeavesExistingFiles(t *testing.T) {
	store, _ := setupTestStore(t, Config{Name: "alice", Policy: PolicyKeep})
	addTodos(t, store, "Buy milk")

	result, err := Create(store.Dir(), CreateOptions{Config: Config{Name: "bob", Policy: PolicyDiscard}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(result.Created) != 0 {
		t.Fatalf("expected nothing created, got %v", result.Created)
	}
	if len(result.Existing) != 4 {
		t.Fatalf("expected 4 existing files, got %v", result.Existing)
	}

	if got := readStoreFile(t, store, ConfigFile); got != "alice\nkeep\n" {
		t.Fatalf("expected config untouched, got %q", got)
	}
	entries, err := store.List(SectionOpen, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected todo to survive, got %d entries", len(entries))
	}
}

func TestCreate_RejectsInvalidName(t *testing.T) {
	_, err := Create(t.TempDir(), CreateOptions{Config: Config{Name: "a\tb", Policy: PolicyKeep}})
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestSectionPath(t *testing.T) {
	store, _ := setupTestStore(t, DefaultConfig())

	path, err := store.SectionPath(SectionFinished)
	if err != nil {
		t.Fatalf("section path: %v", err)
	}
	if path != filepath.Join(store.Dir(), FinishedFile) {
		t.Fatalf("unexpected path %s", path)
	}

	if _, err := store.SectionPath(Section("trash")); !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("expected ErrInvalidSection, got %v", err)
	}
}
