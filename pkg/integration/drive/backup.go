package drive

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/mklimuk/minutes-pilot/pkg/db"
)

// SyncStore remembers which archive notes were uploaded and when.
// db.Repository implements it.
type SyncStore interface {
	InsertDriveSync(driveFileID, localPath string, syncedAt time.Time) error
	UpdateDriveSync(driveFileID string, syncedAt time.Time) error
	GetDriveSyncByLocalPath(localPath string) (*db.DriveSyncRecord, error)
}

// Report summarises one backup run.
type Report struct {
	Uploaded  int      `json:"uploaded"`
	Updated   int      `json:"updated"`
	Unchanged int      `json:"unchanged"`
	Failed    []string `json:"failed,omitempty"`
}

// Backup uploads new and modified archive notes to Drive.
type Backup struct {
	service     DriveAPI
	store       SyncStore
	archivePath string
}

// NewBackup creates a new Drive backup.
func NewBackup(service DriveAPI, store SyncStore, archivePath string) *Backup {
	return &Backup{
		service:     service,
		store:       store,
		archivePath: archivePath,
	}
}

// RunOnce walks the archive and uploads every note that is new or modified
// since its last upload. A failure on one note is recorded in the report and
// does not stop the run.
func (b *Backup) RunOnce(ctx context.Context) (Report, error) {
	var report Report
	err := filepath.WalkDir(b.archivePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() && path != b.archivePath && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		relPath, _ := filepath.Rel(b.archivePath, path)
		if err := b.syncFile(ctx, path, relPath, d, &report); err != nil {
			log.Printf("drive: %s: %v", relPath, err)
			report.Failed = append(report.Failed, relPath)
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to back up archive: %w", err)
	}
	log.Printf("drive: backup done, %d uploaded, %d updated, %d unchanged, %d failed",
		report.Uploaded, report.Updated, report.Unchanged, len(report.Failed))
	return report, nil
}

func (b *Backup) syncFile(ctx context.Context, path, relPath string, d fs.DirEntry, report *Report) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	modTime := info.ModTime().Truncate(time.Second)

	rec, err := b.store.GetDriveSyncByLocalPath(relPath)
	if err != nil {
		return err
	}

	switch {
	case rec == nil:
		fileID, err := b.service.UploadFile(ctx, path, filepath.Base(relPath), "")
		if err != nil {
			return err
		}
		if err := b.store.InsertDriveSync(fileID, relPath, modTime); err != nil {
			return err
		}
		report.Uploaded++
	case modTime.After(rec.LastSyncedAt):
		if _, err := b.service.UploadFile(ctx, path, filepath.Base(relPath), rec.DriveFileID); err != nil {
			return err
		}
		if err := b.store.UpdateDriveSync(rec.DriveFileID, modTime); err != nil {
			return err
		}
		report.Updated++
	default:
		report.Unchanged++
	}
	return nil
}
