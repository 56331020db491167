package db

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	database, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return NewRepository(database)
}

func TestKeyValue(t *testing.T) {
	repo := setupTestDB(t)

	// Missing key
	_, ok, err := repo.GetValue("contacts")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("expected missing key to report ok=false")
	}

	// Insert
	if err := repo.PutValue("contacts", `[{"id":1}]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, ok, err := repo.GetValue("contacts")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":1}]` {
		t.Errorf("value = %q", v)
	}

	// Overwrite
	if err := repo.PutValue("contacts", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = repo.GetValue("contacts")
	if v != `[]` {
		t.Errorf("expected overwritten value, got %q", v)
	}

	// Delete
	if err := repo.DeleteValue("contacts"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.GetValue("contacts"); ok {
		t.Error("expected key to be gone after delete")
	}
	if err := repo.DeleteValue("contacts"); err != nil {
		t.Errorf("deleting missing key: %v", err)
	}
}

func TestKeyValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "minutes.db")

	database, err := NewDB(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := database.InitSchema(); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if err := NewRepository(database).PutValue("tasks", "[]"); err != nil {
		t.Fatalf("put: %v", err)
	}
	database.Close()

	reopened, err := NewDB(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if err := reopened.InitSchema(); err != nil {
		t.Fatalf("schema on reopen: %v", err)
	}
	v, ok, err := NewRepository(reopened).GetValue("tasks")
	if err != nil || !ok || v != "[]" {
		t.Errorf("after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestCalendarSync(t *testing.T) {
	repo := setupTestDB(t)

	// Not found
	rec, err := repo.GetCalendarSync(42)
	if err != nil {
		t.Fatalf("get nonexistent: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil, got %+v", rec)
	}

	// Insert
	if err := repo.UpsertCalendarSync(42, "evt-1", "14030510-42"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	rec, err = repo.GetCalendarSync(42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.EventID != "evt-1" || rec.MeetingNumber != "14030510-42" {
		t.Fatalf("unexpected record %+v", rec)
	}

	// Update
	if err := repo.UpsertCalendarSync(42, "evt-2", "14030510-42"); err != nil {
		t.Fatalf("update: %v", err)
	}
	rec, _ = repo.GetCalendarSync(42)
	if rec.EventID != "evt-2" {
		t.Errorf("expected updated event evt-2, got %q", rec.EventID)
	}
}

func TestDriveSync(t *testing.T) {
	repo := setupTestDB(t)

	now := time.Now().Truncate(time.Second)

	// Insert
	if err := repo.InsertDriveSync("drv-1", "1403/14030510-7.md", now); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Get by local path
	rec, err := repo.GetDriveSyncByLocalPath("1403/14030510-7.md")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record, got nil")
	}
	if rec.DriveFileID != "drv-1" {
		t.Errorf("drive file ID = %q", rec.DriveFileID)
	}
	if !rec.LastSyncedAt.Equal(now) {
		t.Errorf("last synced = %v, want %v", rec.LastSyncedAt, now)
	}

	// Update
	later := now.Add(time.Hour)
	if err := repo.UpdateDriveSync("drv-1", later); err != nil {
		t.Fatalf("update: %v", err)
	}
	rec, _ = repo.GetDriveSyncByLocalPath("1403/14030510-7.md")
	if !rec.LastSyncedAt.Equal(later) {
		t.Errorf("last synced after update = %v, want %v", rec.LastSyncedAt, later)
	}

	// Not found
	rec2, err := repo.GetDriveSyncByLocalPath("/nonexistent")
	if err != nil {
		t.Fatalf("get nonexistent: %v", err)
	}
	if rec2 != nil {
		t.Errorf("expected nil, got %+v", rec2)
	}
}
