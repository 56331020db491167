package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Repository handles data access
type Repository struct {
	db *DB
}

// NewRepository creates a new Repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// GetValue returns the value stored under key. The boolean is false when the
// key has never been written.
func (r *Repository) GetValue(key string) (string, bool, error) {
	row := r.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, true, nil
}

// PutValue replaces the value stored under key.
func (r *Repository) PutValue(key, value string) error {
	query := `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}
	return nil
}

// DeleteValue removes key. Deleting a missing key is not an error.
func (r *Repository) DeleteValue(key string) error {
	if _, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// CalendarSyncRecord links a meeting to the calendar event it was published as.
type CalendarSyncRecord struct {
	MeetingID     int64
	EventID       string
	MeetingNumber string
	SyncedAt      time.Time
}

// UpsertCalendarSync records (or re-records) the event of a meeting.
func (r *Repository) UpsertCalendarSync(meetingID int64, eventID, meetingNumber string) error {
	query := `INSERT INTO calendar_sync (meeting_id, event_id, meeting_number, synced_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(meeting_id) DO UPDATE SET event_id = excluded.event_id,
			meeting_number = excluded.meeting_number, synced_at = CURRENT_TIMESTAMP`
	if _, err := r.db.Exec(query, meetingID, eventID, meetingNumber); err != nil {
		return fmt.Errorf("failed to upsert calendar sync: %w", err)
	}
	return nil
}

// GetCalendarSync returns the record of a meeting or nil if it was never published.
func (r *Repository) GetCalendarSync(meetingID int64) (*CalendarSyncRecord, error) {
	query := `SELECT meeting_id, event_id, meeting_number, synced_at FROM calendar_sync WHERE meeting_id = ?`
	row := r.db.QueryRow(query, meetingID)

	var rec CalendarSyncRecord
	err := row.Scan(&rec.MeetingID, &rec.EventID, &rec.MeetingNumber, &rec.SyncedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get calendar sync: %w", err)
	}
	return &rec, nil
}

// DriveSyncRecord tracks one archive note uploaded to Drive.
type DriveSyncRecord struct {
	DriveFileID  string
	LocalPath    string
	LastSyncedAt time.Time
}

// InsertDriveSync records a first upload.
func (r *Repository) InsertDriveSync(driveFileID, localPath string, syncedAt time.Time) error {
	query := `INSERT INTO drive_sync (drive_file_id, local_path, last_synced_at) VALUES (?, ?, ?)`
	if _, err := r.db.Exec(query, driveFileID, localPath, syncedAt.UTC()); err != nil {
		return fmt.Errorf("failed to insert drive sync: %w", err)
	}
	return nil
}

// UpdateDriveSync moves the last-synced mark of an uploaded file.
func (r *Repository) UpdateDriveSync(driveFileID string, syncedAt time.Time) error {
	query := `UPDATE drive_sync SET last_synced_at = ? WHERE drive_file_id = ?`
	if _, err := r.db.Exec(query, syncedAt.UTC(), driveFileID); err != nil {
		return fmt.Errorf("failed to update drive sync: %w", err)
	}
	return nil
}

// GetDriveSyncByLocalPath returns the record for a path relative to the
// archive root, or nil if it was never uploaded.
func (r *Repository) GetDriveSyncByLocalPath(localPath string) (*DriveSyncRecord, error) {
	query := `SELECT drive_file_id, local_path, last_synced_at FROM drive_sync WHERE local_path = ?`
	row := r.db.QueryRow(query, localPath)

	var rec DriveSyncRecord
	err := row.Scan(&rec.DriveFileID, &rec.LocalPath, &rec.LastSyncedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get drive sync: %w", err)
	}
	return &rec, nil
}
