package todo

import (
	"errors"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "current tokens",
			content: "alice\nkeep\n",
			want:    Config{Name: "alice", Policy: PolicyKeep},
		},
		{
			name:    "no final newline",
			content: "alice\ndiscard",
			want:    Config{Name: "alice", Policy: PolicyDiscard},
		},
		{
			name:    "crlf",
			content: "alice\r\ndiscard\r\n",
			want:    Config{Name: "alice", Policy: PolicyDiscard},
		},
		{
			name:    "legacy in_file",
			content: "bob\nin_file\n",
			want:    Config{Name: "bob", Policy: PolicyKeep},
		},
		{
			name:    "legacy delete",
			content: "bob\ndelete\n",
			want:    Config{Name: "bob", Policy: PolicyDiscard},
		},
		{
			name:    "name with spaces",
			content: "Alice Example\nkeep\n",
			want:    Config{Name: "Alice Example", Policy: PolicyKeep},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseConfig(tc.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestParseConfigRejectsWrongLineCount(t *testing.T) {
	cases := []string{
		"",
		"alice\n",
		"alice",
		"alice\nkeep\nextra\n",
		"\n",
		"alice\nkeep\n\n\n",
	}

	for _, content := range cases {
		t.Run(content, func(t *testing.T) {
			_, err := ParseConfig(content)
			if !errors.Is(err, ErrConfigCorrupt) {
				t.Fatalf("expected ErrConfigCorrupt, got %v", err)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := Config{Name: "alice", Policy: PolicyDiscard}

	if got := cfg.String(); got != "alice\ndiscard\n" {
		t.Fatalf("unexpected content %q", got)
	}

	parsed, err := ParseConfig(cfg.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, parsed)
	}
}

func TestDefaultConfig(t *testing.T) {
	if got := DefaultConfig(); got != (Config{Name: "default-name", Policy: PolicyKeep}) {
		t.Fatalf("unexpected default config %+v", got)
	}
}
