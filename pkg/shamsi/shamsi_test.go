package shamsi

import (
	"testing"
	"time"
)

func TestFromTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"nowruz 1403", time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC), "1403/01/01"},
		{"last day of 1402", time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC), "1402/12/29"},
		{"mid year", time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC), "1403/05/10"},
		{"nowruz 1404", time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), "1404/01/01"},
		{"leap day 1403", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), "1403/12/30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTime(tt.in).String(); got != tt.want {
				t.Errorf("FromTime(%s) = %s, want %s", tt.in.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDateTime(t *testing.T) {
	d, err := Parse("1403/05/10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := d.Time()
	want := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Time() = %s, want %s", got, want)
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("IRST", 3*3600+1800)
	// 22:00 UTC on 2024-03-19 is already 2024-03-20 in Tehran.
	now := time.Date(2024, 3, 19, 22, 0, 0, 0, time.UTC)
	if got := Today(now, loc); got != "1403/01/01" {
		t.Errorf("Today = %s, want 1403/01/01", got)
	}
	if got := Today(now, nil); got == "" {
		t.Error("Today with nil location returned empty string")
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("1403/5/7")
	if err != nil {
		t.Fatalf("parse unpadded: %v", err)
	}
	if d.String() != "1403/05/07" {
		t.Errorf("String() = %s", d.String())
	}

	for _, bad := range []string{"", "1403-05-10", "1403/13/01", "1403/07/31", "1403/aa/01"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) expected error", bad)
		}
	}
}

func TestCompactAndMonth(t *testing.T) {
	if Compact("1403/05/10") != "14030510" {
		t.Errorf("Compact = %s", Compact("1403/05/10"))
	}
	if Month("1403/05/10") != "1403/05" {
		t.Errorf("Month = %s", Month("1403/05/10"))
	}
	if Month("1403") != "" {
		t.Errorf("Month of short string = %q", Month("1403"))
	}
}
