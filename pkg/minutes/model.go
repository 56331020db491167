// Package minutes keeps a markdown archive of meeting minutes: one note per
// meeting, YAML front matter followed by a rendered body.
package minutes

// TaskEntry is one task as recorded in a note's front matter.
type TaskEntry struct {
	Description string `yaml:"description"`
	Assignee    string `yaml:"assignee"`
	DueDate     string `yaml:"due_date"`
	ActionType  string `yaml:"action_type"`
}

// Frontmatter is the metadata block of a meeting note.
type Frontmatter struct {
	MeetingNumber string      `yaml:"meeting_number"`
	Title         string      `yaml:"title"`
	Date          string      `yaml:"date"`                     // Shamsi
	GregorianDate string      `yaml:"gregorian_date,omitempty"` // YYYY-MM-DD
	Company       string      `yaml:"company,omitempty"`
	Location      string      `yaml:"location,omitempty"`
	Secretary     string      `yaml:"secretary"`
	Attendees     []string    `yaml:"attendees"`
	Tasks         []TaskEntry `yaml:"tasks,omitempty"`
	Created       string      `yaml:"created"`
}

// Note is a parsed markdown note.
type Note struct {
	Path        string
	Frontmatter Frontmatter
	Content     string // markdown after the front matter
}
