package minutes

import (
	"bufio"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadNote reads a markdown file and parses its front matter and content.
func ReadNote(path string) (*Note, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var frontmatterLines, contentLines []string
	inFrontmatter := false
	lineCount := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineCount++

		if lineCount == 1 && line == "---" {
			inFrontmatter = true
			continue
		}
		if inFrontmatter {
			if line == "---" {
				inFrontmatter = false
				continue
			}
			frontmatterLines = append(frontmatterLines, line)
		} else {
			contentLines = append(contentLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	note := &Note{Path: path, Content: strings.Join(contentLines, "\n")}
	if fm := strings.Join(frontmatterLines, "\n"); fm != "" {
		if err := yaml.Unmarshal([]byte(fm), &note.Frontmatter); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter of %s: %w", path, err)
		}
	}
	return note, nil
}

// List reads every note under the archive, newest meeting date first.
// Unreadable notes are skipped.
func (a *Archive) List() ([]*Note, error) {
	var notes []*Note
	err := filepath.WalkDir(a.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		note, err := ReadNote(path)
		if err != nil {
			log.Printf("minutes: skipping %s: %v", path, err)
			return nil
		}
		notes = append(notes, note)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Frontmatter.Date > notes[j].Frontmatter.Date
	})
	return notes, nil
}
