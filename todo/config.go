package todo

import (
	"fmt"
	"os"
	"strings"

	internalstrings "github.com/amonks/dottodo/internal/strings"
)

// DefaultName is the owner name used when a list has no config.
const DefaultName = "default-name"

// Config is the per-list config file: the owner name on line one and the
// deletion policy on line two.
type Config struct {
	Name   string
	Policy DeletionPolicy
}

// DefaultConfig returns the config written by Create when none is given.
func DefaultConfig() Config {
	return Config{Name: DefaultName, Policy: PolicyKeep}
}

// ParseConfig parses config file content. Anything other than exactly two
// lines is ErrConfigCorrupt.
func ParseConfig(content string) (Config, error) {
	lines := configLines(content)
	if len(lines) != 2 {
		return Config{}, fmt.Errorf("%w: expected 2 lines, found %d", ErrConfigCorrupt, len(lines))
	}

	return Config{
		Name:   lines[0],
		Policy: parsePolicy(lines[1]),
	}, nil
}

// Lines returns the config as the two lines stored on disk.
func (c Config) Lines() []string {
	return []string{c.Name, string(c.Policy)}
}

// String renders the config file content.
func (c Config) String() string {
	return strings.Join(c.Lines(), "\n") + "\n"
}

// Validate checks that the config can be written back.
func (c Config) Validate() error {
	if err := ValidateField("name", c.Name); err != nil {
		return err
	}
	return ValidateField("policy", string(c.Policy))
}

func configLines(content string) []string {
	content = internalstrings.NormalizeNewlines(content)
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func readConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
