package model

import "testing"

func TestMeetingNumber(t *testing.T) {
	if got := MeetingNumber("1403/05/10", 9999999); got != "14030510-9999999" {
		t.Errorf("MeetingNumber = %q, want 14030510-9999999", got)
	}
}

func TestEffectiveStatus(t *testing.T) {
	task := Task{Status: StatusInProgress}
	if task.EffectiveStatus() != StatusInProgress {
		t.Errorf("expected authoritative status, got %q", task.EffectiveStatus())
	}
	task.ClaimedStatus = StatusDone
	if task.EffectiveStatus() != StatusDone {
		t.Errorf("expected claimed status, got %q", task.EffectiveStatus())
	}
}

func TestEnumValidation(t *testing.T) {
	if !RoleSecretary.Valid() || Role("boss").Valid() {
		t.Error("role validation mismatch")
	}
	if !StatusWaiting.Valid() || TaskStatus("blocked").Valid() {
		t.Error("status validation mismatch")
	}
	if !ActionForInfo.Valid() || ActionType("").Valid() {
		t.Error("action type validation mismatch")
	}
	if !GenderFemale.Valid() || Gender("x").Valid() {
		t.Error("gender validation mismatch")
	}
}

func TestContactNames(t *testing.T) {
	c := Contact{FirstName: "Babak", LastName: "Rastegar", Role: RoleNormal}
	if c.FullName() != "Babak Rastegar" {
		t.Errorf("FullName = %q", c.FullName())
	}
	if c.IsAdminOrSecretary() {
		t.Error("normal contact must not have elevated access")
	}
	c.Role = RoleSecretary
	if !c.IsAdminOrSecretary() {
		t.Error("secretary must have elevated access")
	}
}
