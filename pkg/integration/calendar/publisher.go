package calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/mklimuk/minutes-pilot/pkg/db"
	"github.com/mklimuk/minutes-pilot/pkg/model"
	"github.com/mklimuk/minutes-pilot/pkg/shamsi"
)

// SyncStore remembers which event a meeting was published as.
// db.Repository implements it.
type SyncStore interface {
	UpsertCalendarSync(meetingID int64, eventID, meetingNumber string) error
	GetCalendarSync(meetingID int64) (*db.CalendarSyncRecord, error)
}

// Publisher creates or updates the calendar event of a meeting.
type Publisher struct {
	api   CalendarAPI
	store SyncStore
}

// NewPublisher creates a Publisher.
func NewPublisher(api CalendarAPI, store SyncStore) *Publisher {
	return &Publisher{api: api, store: store}
}

// Publish writes m to the calendar. A meeting published before has its
// event updated instead of duplicated. It returns the event id.
func (p *Publisher) Publish(ctx context.Context, m model.Meeting, contacts []model.Contact) (string, error) {
	e, err := BuildEvent(m, contacts)
	if err != nil {
		return "", err
	}

	rec, err := p.store.GetCalendarSync(m.ID)
	if err != nil {
		return "", fmt.Errorf("calendar: %w", err)
	}

	eventID := ""
	if rec != nil {
		eventID = rec.EventID
		if err := p.api.UpdateEvent(ctx, eventID, e); err != nil {
			return "", fmt.Errorf("calendar: meeting %s: %w", m.MeetingNumber, err)
		}
	} else {
		eventID, err = p.api.CreateEvent(ctx, e)
		if err != nil {
			return "", fmt.Errorf("calendar: meeting %s: %w", m.MeetingNumber, err)
		}
	}

	if err := p.store.UpsertCalendarSync(m.ID, eventID, m.MeetingNumber); err != nil {
		return "", fmt.Errorf("calendar: %w", err)
	}
	return eventID, nil
}

// BuildEvent describes m as an all-day event on the Gregorian equivalent of
// its Shamsi date.
func BuildEvent(m model.Meeting, contacts []model.Contact) (Event, error) {
	d, err := shamsi.Parse(m.Date)
	if err != nil {
		return Event{}, fmt.Errorf("calendar: meeting %s: %w", m.MeetingNumber, err)
	}

	names := make(map[int64]string, len(contacts))
	for _, c := range contacts {
		names[c.ID] = c.FullName()
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "Meeting %s (%s)\n", m.MeetingNumber, m.Date)
	if m.Company != "" {
		fmt.Fprintf(&desc, "Company: %s\n", m.Company)
	}
	if sec, ok := names[m.SecretaryID]; ok {
		fmt.Fprintf(&desc, "Secretary: %s\n", sec)
	}
	desc.WriteString("Attendees:\n")
	for _, id := range m.AttendeeIDs {
		name, ok := names[id]
		if !ok {
			name = "N/A"
		}
		fmt.Fprintf(&desc, "- %s\n", name)
	}

	return Event{
		Summary:     m.Title,
		Description: desc.String(),
		Location:    m.Location,
		Day:         d.Time(),
	}, nil
}
