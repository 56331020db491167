// Package drive backs up the minutes archive to a Google Drive folder.
package drive

import (
	"context"
	"fmt"
	"os"

	googleauth "github.com/mklimuk/minutes-pilot/pkg/integration/google"
	gdrive "google.golang.org/api/drive/v3"
)

const markdownMimeType = "text/markdown"

// DriveAPI is the interface used by Backup for testability.
type DriveAPI interface {
	UploadFile(ctx context.Context, localPath, fileName, existingFileID string) (string, error)
}

// Service wraps the Google Drive API.
type Service struct {
	srv      *gdrive.Service
	folderID string
}

var _ DriveAPI = (*Service)(nil)

// NewService creates a new Drive service using service account credentials.
func NewService(ctx context.Context, credentialsFile, folderID string) (*Service, error) {
	srv, err := gdrive.NewService(ctx, googleauth.ClientOption(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Service{srv: srv, folderID: folderID}, nil
}

// UploadFile uploads a local file to the Drive folder. If existingFileID is
// non-empty the existing file gets new content; otherwise a file is created.
// Returns the file ID.
func (s *Service) UploadFile(ctx context.Context, localPath, fileName, existingFileID string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open local file: %w", err)
	}
	defer f.Close()

	if existingFileID != "" {
		updated, err := s.srv.Files.Update(existingFileID, &gdrive.File{Name: fileName}).
			Media(f).
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("update file: %w", err)
		}
		return updated.Id, nil
	}

	file := &gdrive.File{
		Name:     fileName,
		MimeType: markdownMimeType,
		Parents:  []string{s.folderID},
	}
	created, err := s.srv.Files.Create(file).
		Media(f).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	return created.Id, nil
}
