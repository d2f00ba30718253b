package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/dottodo/internal/strings"
	"github.com/amonks/dottodo/todo"
)

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// DueDate is the free-form due-date expression.
	DueDate string
	// DueTime is the free-form due-time expression.
	DueTime string
	// Description is the todo description.
	Description string
}

// DefaultCreateData returns TodoData with default values for a new todo.
func DefaultCreateData() TodoData {
	return TodoData{DueDate: "today", DueTime: "-"}
}

var todoTemplate = template.Must(template.New("todo").Parse(`due_date = {{ printf "%q" .DueDate }} # today, tomorrow, next week, in 3 days, week 21, 24.12
due_time = {{ printf "%q" .DueTime }} # 18, 1240, 14:39, in 2 hours, in 30 min
---
{{ .Description }}
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the TOML editor output.
type ParsedTodo struct {
	DueDate     string `toml:"due_date"`
	DueTime     string `toml:"due_time"`
	Description string `toml:"-"`
}

// ParseTodoTOML parses the TOML content from the editor. The body below the
// separator becomes the description, joined onto one line.
func ParseTodoTOML(content string) (*ParsedTodo, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var parsed ParsedTodo
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.DueDate = strings.TrimSpace(parsed.DueDate)
	parsed.DueTime = strings.TrimSpace(parsed.DueTime)
	parsed.Description = internalstrings.NormalizeWhitespace(body)

	if err := todo.ValidateDescription(parsed.Description); err != nil {
		return nil, err
	}
	if err := todo.ValidateField("due date", parsed.DueDate); err != nil {
		return nil, err
	}
	if err := todo.ValidateField("due time", parsed.DueTime); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTodoTempFile() (*os.File, error) {
	return os.CreateTemp("", "todo-add-*.md")
}

// EditTodo opens the editor with pre-populated data and returns the parsed result.
func EditTodo(data TodoData) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTodoTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited))
}

// ToAddOptions converts a ParsedTodo to todo.AddOptions.
func (p *ParsedTodo) ToAddOptions() todo.AddOptions {
	return todo.AddOptions{
		Description: p.Description,
		DueDate:     p.DueDate,
		DueTime:     p.DueTime,
	}
}
