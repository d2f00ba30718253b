package todo

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/dottodo/due"
	"github.com/amonks/dottodo/internal/linefile"
)

// AddOptions configures Add.
type AddOptions struct {
	Description string

	// DueDate is a free-form due-date expression such as "tomorrow" or "week 21".
	DueDate string

	// DueTime is a free-form due-time expression such as "1240" or "in 30 min".
	DueTime string
}

// Add normalizes the due date and time, stamps the creation time, and
// appends the todo to the open list.
func (s *Store) Add(opts AddOptions) (Todo, error) {
	if err := ValidateDescription(opts.Description); err != nil {
		return Todo{}, err
	}
	if err := ValidateField("due date", opts.DueDate); err != nil {
		return Todo{}, err
	}
	if err := ValidateField("due time", opts.DueTime); err != nil {
		return Todo{}, err
	}

	owner, err := s.ownerName()
	if err != nil {
		return Todo{}, err
	}

	now := s.now()
	item := Todo{
		Owner:       owner,
		Description: opts.Description,
		DueDate:     due.ParseDate(opts.DueDate, now),
		DueTime:     due.ParseTime(opts.DueTime, now),
		CreatedTime: now.Format(CreatedTimeLayout),
		CreatedDate: now.Format(CreatedDateLayout),
	}

	if item.DueDate == opts.DueDate && opts.DueDate != "" {
		s.logger.Debug("due date kept verbatim", "input", opts.DueDate)
	}
	if item.DueTime == opts.DueTime && opts.DueTime != "" {
		s.logger.Debug("due time kept verbatim", "input", opts.DueTime)
	}

	if err := linefile.Append(s.path(TodosFile), item.Line()); err != nil {
		return Todo{}, err
	}
	return item, nil
}

// List returns the todos in section that match filter, with their indexes
// in the section file. A nil filter matches everything.
func (s *Store) List(section Section, filter Filter) ([]Entry, error) {
	path, err := s.SectionPath(section)
	if err != nil {
		return nil, err
	}

	lines, err := linefile.ReadAll(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		entries = append(entries, Entry{Index: i, Todo: ParseLine(line)})
	}
	return FilterEntries(entries, filter), nil
}

// Get returns the open todo at index.
func (s *Store) Get(index int) (Todo, error) {
	lines, err := linefile.ReadAll(s.path(TodosFile))
	if err != nil {
		return Todo{}, err
	}
	if err := validateIndex(index, len(lines)); err != nil {
		return Todo{}, err
	}
	return ParseLine(lines[index]), nil
}

// Finish moves the open todo at index to the finished list, unchanged.
func (s *Store) Finish(index int) (Todo, error) {
	line, err := linefile.RemoveAt(s.path(TodosFile), index)
	if err != nil {
		return Todo{}, err
	}

	if err := linefile.Append(s.path(FinishedFile), line); err != nil {
		return Todo{}, fmt.Errorf("archive finished todo %q: %w", line, err)
	}
	return ParseLine(line), nil
}

// DeleteResult reports what Delete did.
type DeleteResult struct {
	Todo   Todo
	Policy DeletionPolicy
	Kept   bool
}

// Delete removes the open todo at index. Under PolicyKeep the line is first
// appended to the deleted list.
func (s *Store) Delete(index int) (DeleteResult, error) {
	cfg, err := s.Config()
	if err != nil {
		return DeleteResult{}, err
	}

	path := s.path(TodosFile)
	lines, err := linefile.ReadAll(path)
	if err != nil {
		return DeleteResult{}, err
	}
	if err := validateIndex(index, len(lines)); err != nil {
		return DeleteResult{}, err
	}

	line := lines[index]
	result := DeleteResult{Todo: ParseLine(line), Policy: cfg.Policy}

	if cfg.Policy == PolicyKeep {
		if err := linefile.Append(s.path(DeletedFile), line); err != nil {
			return DeleteResult{}, fmt.Errorf("archive deleted todo: %w", err)
		}
		result.Kept = true
	}

	if _, err := linefile.RemoveAt(path, index); err != nil {
		return DeleteResult{}, err
	}
	return result, nil
}

// Config reads the list config.
func (s *Store) Config() (Config, error) {
	return readConfigFile(s.path(ConfigFile))
}

// SetPolicy fuzzy-matches token against the deletion policies, stores the
// closest one, and returns it.
func (s *Store) SetPolicy(token string) (DeletionPolicy, error) {
	policy := MatchPolicy(token)
	err := s.updateConfig(func(cfg *Config) {
		cfg.Policy = policy
	})
	if err != nil {
		return "", err
	}
	return policy, nil
}

// SetName stores a new owner name.
func (s *Store) SetName(name string) error {
	if err := ValidateField("name", name); err != nil {
		return err
	}
	return s.updateConfig(func(cfg *Config) {
		cfg.Name = name
	})
}

func (s *Store) updateConfig(update func(*Config)) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	update(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return linefile.Rewrite(s.path(ConfigFile), cfg.Lines())
}

// Clear empties the given sections.
func (s *Store) Clear(sections ...Section) error {
	for _, section := range sections {
		path, err := s.SectionPath(section)
		if err != nil {
			return err
		}
		if err := linefile.Truncate(path); err != nil {
			return err
		}
	}
	return nil
}

// ownerName returns the config owner name, falling back to DefaultName with
// a warning when the list has no config file.
func (s *Store) ownerName() (string, error) {
	cfg, err := s.Config()
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("config file missing, using default name", "dir", s.dir, "name", DefaultName)
		return DefaultName, nil
	}
	if err != nil {
		return "", err
	}
	return cfg.Name, nil
}
