// Package sync records archive changes in a git repository.
package sync

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// Author signs archive commits.
type Author struct {
	Name  string
	Email string
}

// DefaultAuthor is used when none is configured.
var DefaultAuthor = Author{Name: "Minutes Pilot", Email: "minutes@pilot.local"}

// GitManager commits archive changes and pushes them when a remote exists.
type GitManager struct {
	RepoPath   string
	Author     Author
	SSHKeyPath string
	now        func() time.Time
}

// NewGitManager creates a GitManager for the repository at repoPath.
func NewGitManager(repoPath string) *GitManager {
	return &GitManager{
		RepoPath: repoPath,
		Author:   DefaultAuthor,
		now:      time.Now,
	}
}

// Init opens the repository, creating it when the directory holds none.
func (g *GitManager) Init() error {
	if err := os.MkdirAll(g.RepoPath, 0755); err != nil {
		return fmt.Errorf("failed to create repo dir: %w", err)
	}
	_, err := git.PlainOpen(g.RepoPath)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		if _, err := git.PlainInit(g.RepoPath, false); err != nil {
			return fmt.Errorf("failed to init repo: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open repo: %w", err)
	}
	return nil
}

// Sync stages every change, commits it and pushes to origin if configured.
// A clean worktree produces no commit.
func (g *GitManager) Sync(message string) error {
	r, err := git.PlainOpen(g.RepoPath)
	if err != nil {
		return fmt.Errorf("failed to open repo: %w", err)
	}

	w, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	if err := w.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to add changes: %w", err)
	}

	status, err := w.Status()
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	if message == "" {
		message = fmt.Sprintf("Archive sync: %s", g.now().Format(time.RFC3339))
	}

	_, err = w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  g.Author.Name,
			Email: g.Author.Email,
			When:  g.now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	remotes, err := r.Remotes()
	if err != nil {
		return fmt.Errorf("failed to list remotes: %w", err)
	}
	if len(remotes) == 0 {
		return nil
	}

	err = r.Push(&git.PushOptions{Auth: g.auth()})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}

func (g *GitManager) auth() transport.AuthMethod {
	keyPath := g.SSHKeyPath
	if keyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		keyPath = filepath.Join(home, ".ssh", "id_rsa")
	}
	keys, err := ssh.NewPublicKeysFromFile("git", keyPath, "")
	if err != nil {
		log.Printf("sync: could not load SSH key %s, pushing without explicit auth: %v", keyPath, err)
		return nil
	}
	return keys
}
