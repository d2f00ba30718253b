// Package todo implements a flat-file todo list.
//
// A list lives in a data directory holding four files: open todos,
// finished todos, deleted todos, and a two-line config (owner name and
// deletion policy). Records are tab-separated lines addressed by their
// zero-based position, so an index is only valid until the next finish or
// delete; callers should list again before reusing one.
//
// The public API mirrors the CLI commands:
//   - Create to bootstrap a directory
//   - Add, Finish, Delete for the todo lifecycle
//   - List, Get for querying
//   - Config, SetName, SetPolicy, Clear for list maintenance
package todo

import internalstrings "github.com/amonks/dottodo/internal/strings"

// Section names one of the record files in a data directory.
type Section string

const (
	// SectionOpen holds todos awaiting action.
	SectionOpen Section = "open"

	// SectionFinished holds todos moved there by Finish.
	SectionFinished Section = "finished"

	// SectionDeleted holds todos deleted under the keep policy.
	SectionDeleted Section = "deleted"
)

// ValidSections returns all valid section values.
func ValidSections() []Section {
	return []Section{SectionOpen, SectionFinished, SectionDeleted}
}

// IsValid returns true if the section is a known valid value.
func (s Section) IsValid() bool {
	for _, valid := range ValidSections() {
		if s == valid {
			return true
		}
	}
	return false
}

// DeletionPolicy controls whether deleted todos are archived.
type DeletionPolicy string

const (
	// PolicyKeep appends deleted todos to the deleted file.
	PolicyKeep DeletionPolicy = "keep"

	// PolicyDiscard drops deleted todos.
	PolicyDiscard DeletionPolicy = "discard"
)

// legacyPolicies maps tokens written by older versions of the tool.
var legacyPolicies = map[string]DeletionPolicy{
	"in_file": PolicyKeep,
	"delete":  PolicyDiscard,
}

// ValidPolicies returns all valid deletion policies.
func ValidPolicies() []DeletionPolicy {
	return []DeletionPolicy{PolicyKeep, PolicyDiscard}
}

// IsValid returns true if the policy is a known valid value.
func (p DeletionPolicy) IsValid() bool {
	for _, valid := range ValidPolicies() {
		if p == valid {
			return true
		}
	}
	return false
}

// MatchPolicy picks the policy closest to token by edit distance.
// Ties go to PolicyKeep. Legacy tokens map to their current names.
func MatchPolicy(token string) DeletionPolicy {
	normalized := internalstrings.NormalizeLowerTrimSpace(token)
	if policy, ok := legacyPolicies[normalized]; ok {
		return policy
	}
	return DeletionPolicy(internalstrings.Closest(normalized, string(PolicyKeep), string(PolicyDiscard)))
}

// parsePolicy reads a stored policy line, accepting legacy tokens.
// Unknown tokens are kept as is and behave like PolicyDiscard.
func parsePolicy(value string) DeletionPolicy {
	normalized := internalstrings.NormalizeLowerTrimSpace(value)
	if policy, ok := legacyPolicies[normalized]; ok {
		return policy
	}
	return DeletionPolicy(normalized)
}
