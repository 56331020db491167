// Package calendar publishes meetings to Google Calendar as all-day events.
package calendar

import (
	"context"
	"fmt"
	"time"

	googleauth "github.com/mklimuk/minutes-pilot/pkg/integration/google"
	gcal "google.golang.org/api/calendar/v3"
)

const dateLayout = "2006-01-02"

// Event is an all-day calendar event.
type Event struct {
	Summary     string
	Description string
	Location    string
	Day         time.Time // Gregorian date; time of day ignored
}

// CalendarAPI is the interface used by Publisher for testability.
type CalendarAPI interface {
	CreateEvent(ctx context.Context, e Event) (string, error)
	UpdateEvent(ctx context.Context, eventID string, e Event) error
}

// Service wraps the Google Calendar API.
type Service struct {
	srv        *gcal.Service
	calendarID string
}

var _ CalendarAPI = (*Service)(nil)

// NewService creates a new Calendar service using service account credentials.
func NewService(ctx context.Context, credentialsFile, calendarID string) (*Service, error) {
	srv, err := gcal.NewService(ctx, googleauth.ClientOption(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Service{srv: srv, calendarID: calendarID}, nil
}

// CreateEvent creates a new event and returns its ID.
func (s *Service) CreateEvent(ctx context.Context, e Event) (string, error) {
	created, err := s.srv.Events.Insert(s.calendarID, toGCalEvent(e)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return created.Id, nil
}

// UpdateEvent updates an existing event by ID.
func (s *Service) UpdateEvent(ctx context.Context, eventID string, e Event) error {
	_, err := s.srv.Events.Update(s.calendarID, eventID, toGCalEvent(e)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// toGCalEvent builds an all-day event. The end date is exclusive.
func toGCalEvent(e Event) *gcal.Event {
	return &gcal.Event{
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Start:       &gcal.EventDateTime{Date: e.Day.Format(dateLayout)},
		End:         &gcal.EventDateTime{Date: e.Day.AddDate(0, 0, 1).Format(dateLayout)},
	}
}
