package minutes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DefaultTemplateName is looked up in the template directory before falling
// back to the built-in template.
const DefaultTemplateName = "Meeting Minutes Template"

const builtinTemplate = `# {{title}}

Meeting {{meeting_number}} held on {{date}} at {{location}}.

Secretary: {{secretary}}

## Attendees

{{attendees}}

## Tasks

{{tasks}}
`

// Fields are the values substituted into a template.
type Fields struct {
	Title         string
	MeetingNumber string
	Date          string
	Location      string
	Secretary     string
	Attendees     []string
	Tasks         []TaskEntry
}

// TemplateEngine loads and renders note templates.
type TemplateEngine struct {
	TemplateDir string
	now         func() time.Time
}

// NewTemplateEngine creates a TemplateEngine. An empty dir uses only the
// built-in template.
func NewTemplateEngine(templateDir string) *TemplateEngine {
	return &TemplateEngine{
		TemplateDir: templateDir,
		now:         time.Now,
	}
}

// LoadTemplate reads name (".md" optional) from the template directory. A
// missing file yields the built-in template.
func (e *TemplateEngine) LoadTemplate(name string) (string, error) {
	if e.TemplateDir == "" {
		return builtinTemplate, nil
	}
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}

	content, err := os.ReadFile(filepath.Join(e.TemplateDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return builtinTemplate, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", name, err)
	}
	return string(content), nil
}

var dateToken = regexp.MustCompile(`\{\{date:(.*?)\}\}`)

// Render replaces placeholders in content:
//
//	{{title}} {{meeting_number}} {{date}} {{location}} {{secretary}}
//	{{attendees}}     bullet list of names
//	{{tasks}}         checklist of tasks
//	{{date:FORMAT}}   current time, FORMAT in YYYY-MM-DD HH:mm:ss tokens
func (e *TemplateEngine) Render(content string, f Fields) string {
	r := strings.NewReplacer(
		"{{title}}", f.Title,
		"{{meeting_number}}", f.MeetingNumber,
		"{{date}}", f.Date,
		"{{location}}", f.Location,
		"{{secretary}}", f.Secretary,
		"{{attendees}}", bulletList(f.Attendees),
		"{{tasks}}", taskList(f.Tasks),
	)
	content = r.Replace(content)

	return dateToken.ReplaceAllStringFunc(content, func(match string) string {
		parts := dateToken.FindStringSubmatch(match)
		return e.now().Format(goLayout(parts[1]))
	})
}

func goLayout(format string) string {
	return strings.NewReplacer(
		"YYYY", "2006",
		"MM", "01",
		"DD", "02",
		"HH", "15",
		"mm", "04",
		"ss", "05",
	).Replace(format)
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "_none_"
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- " + item)
	}
	return b.String()
}

func taskList(tasks []TaskEntry) string {
	if len(tasks) == 0 {
		return "_none_"
	}
	var b strings.Builder
	for i, t := range tasks {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- [ ] %s (%s, due %s, %s)", t.Description, t.Assignee, t.DueDate, t.ActionType)
	}
	return b.String()
}
