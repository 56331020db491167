package minutes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/shamsi"
	"gopkg.in/yaml.v3"
)

// WriteNote writes front matter and content to note.Path, creating parent
// directories.
func WriteNote(note *Note) error {
	fmData, err := yaml.Marshal(note.Frontmatter)
	if err != nil {
		return fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	content := fmt.Sprintf("---\n%s---\n%s", string(fmData), note.Content)

	if err := os.MkdirAll(filepath.Dir(note.Path), 0755); err != nil {
		return fmt.Errorf("failed to create note directory: %w", err)
	}
	if err := os.WriteFile(note.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}

// Archive writes meeting notes under Dir, one sub-directory per Shamsi
// year and month.
type Archive struct {
	Dir       string
	Templates *TemplateEngine
	now       func() time.Time
}

// NewArchive creates an Archive rooted at dir.
func NewArchive(dir string, templates *TemplateEngine) *Archive {
	if templates == nil {
		templates = NewTemplateEngine("")
	}
	return &Archive{Dir: dir, Templates: templates, now: time.Now}
}

// WriteMeeting renders and stores the note of meeting m, resolving people
// against contacts. It returns the path written.
func (a *Archive) WriteMeeting(m model.Meeting, tasks []model.Task, contacts []model.Contact) (string, error) {
	tmpl, err := a.Templates.LoadTemplate(DefaultTemplateName)
	if err != nil {
		return "", err
	}

	fm := Frontmatter{
		MeetingNumber: m.MeetingNumber,
		Title:         m.Title,
		Date:          m.Date,
		Company:       m.Company,
		Location:      m.Location,
		Secretary:     contactName(contacts, m.SecretaryID),
		Created:       a.now().Format(time.RFC3339),
	}
	if d, err := shamsi.Parse(m.Date); err == nil {
		fm.GregorianDate = d.Time().Format("2006-01-02")
	}
	for _, id := range m.AttendeeIDs {
		fm.Attendees = append(fm.Attendees, contactName(contacts, id))
	}
	for _, t := range tasks {
		fm.Tasks = append(fm.Tasks, TaskEntry{
			Description: t.Description,
			Assignee:    contactName(contacts, t.AssigneeID),
			DueDate:     t.DueDate,
			ActionType:  string(t.ActionType),
		})
	}

	body := a.Templates.Render(tmpl, Fields{
		Title:         fm.Title,
		MeetingNumber: fm.MeetingNumber,
		Date:          fm.Date,
		Location:      fm.Location,
		Secretary:     fm.Secretary,
		Attendees:     fm.Attendees,
		Tasks:         fm.Tasks,
	})

	note := &Note{
		Path:        a.NotePath(m),
		Frontmatter: fm,
		Content:     body,
	}
	if err := WriteNote(note); err != nil {
		return "", err
	}
	return note.Path, nil
}

// NotePath is where the note of m lives.
func (a *Archive) NotePath(m model.Meeting) string {
	dir := a.Dir
	if month := shamsi.Month(m.Date); month != "" {
		dir = filepath.Join(dir, filepath.FromSlash(month))
	}
	name := SanitizeFilename(m.MeetingNumber + " " + m.Title)
	return filepath.Join(dir, name+".md")
}

// SanitizeFilename replaces characters invalid in file names.
func SanitizeFilename(name string) string {
	return strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-",
	).Replace(name)
}

func contactName(contacts []model.Contact, id int64) string {
	for _, c := range contacts {
		if c.ID == id {
			return c.FullName()
		}
	}
	return "N/A"
}
