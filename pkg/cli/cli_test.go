package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mklimuk/minutes-pilot/pkg/minutes"
	"github.com/mklimuk/minutes-pilot/pkg/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "minutes.db")
}

func TestVersion(t *testing.T) {
	origVersion, origCommit, origDate := appVersion, appCommit, appDate
	defer func() { appVersion, appCommit, appDate = origVersion, origCommit, origDate }()
	SetVersionInfo("1.2.3", "abc1234", "2026-02-13")

	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "minutes 1.2.3") || !strings.Contains(out, "abc1234") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "nonexistent-command")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v", err)
	}
}

func TestResetAndTasks(t *testing.T) {
	db := testDB(t)

	out, err := run(t, "--db", db, "reset")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "5 contacts, 2 meetings, 7 tasks") {
		t.Errorf("reset output %q", out)
	}

	out, err = run(t, "--db", db, "tasks", "--filter", "campaign", "--sort", "dueDate", "--desc")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Q1 sales") || strings.Contains(out, "final sales report") {
		t.Errorf("filter kept an unrelated task:\n%s", out)
	}
	landing := strings.Index(out, "Build the campaign landing page")
	banners := strings.Index(out, "Design the campaign banners")
	if landing < 0 || banners < 0 || landing > banners {
		t.Errorf("expected due-date descending order:\n%s", out)
	}

	if _, err := run(t, "--db", db, "tasks", "--sort", "color"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestDashboard(t *testing.T) {
	db := testDB(t)

	out, err := run(t, "--db", db, "dashboard", "--as", "BABAK.RASTEGAR@company.com")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Rastegar") || strings.Contains(out, "Zangeneh") {
		t.Errorf("normal user should only see own tasks:\n%s", out)
	}
	if !strings.Contains(out, "Months: 1403/05, 1403/04") {
		t.Errorf("missing months:\n%s", out)
	}

	out, err = run(t, "--db", db, "dashboard", "--month", "1403/04")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Khoshtinat") {
		t.Errorf("admin view should include every assignee of the month:\n%s", out)
	}

	if _, err := run(t, "--db", db, "dashboard", "--as", "nobody@company.com"); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestArchiveList(t *testing.T) {
	db := testDB(t)
	if _, err := run(t, "--db", db, "archive", "list"); err == nil {
		t.Error("expected error without archive.dir")
	}

	archiveDir := t.TempDir()
	archive := minutes.NewArchive(archiveDir, nil)
	m := model.Meeting{ID: 9, Title: "Budget review", SecretaryID: 2, Date: "1403/05/10", MeetingNumber: "14030510-9", AttendeeIDs: []int64{1}}
	if _, err := archive.WriteMeeting(m, nil, nil); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(t.TempDir(), "minutes.yaml")
	cfg := "db:\n  path: " + db + "\narchive:\n  dir: " + archiveDir + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", cfgPath, "archive", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "14030510-9") || !strings.Contains(out, "Budget review") {
		t.Errorf("archive list output:\n%s", out)
	}

	if _, err := run(t, "--config", cfgPath, "archive", "backup"); err == nil {
		t.Error("expected error without drive settings")
	}
}
