package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

// fakeEventStore keeps events in memory and applies the same capacity
// rule the SQL claim enforces: a seat is taken only while the event is
// active and below its cap.
type fakeEventStore struct {
	events        map[string]*models.Event
	registrations []models.EventRegistration
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[string]*models.Event)}
}

func (f *fakeEventStore) Create(ctx context.Context, event *models.Event) error {
	event.ID = fmt.Sprintf("event-%d", len(f.events)+1)
	event.IsActive = true
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventStore) GetAll(ctx context.Context, activeOnly bool) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.events {
		if activeOnly && !e.IsActive {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copy := *e
	return &copy, nil
}

func (f *fakeEventStore) Update(ctx context.Context, event *models.Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventStore) Deactivate(ctx context.Context, id string) error {
	e, ok := f.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	e.IsActive = false
	return nil
}

func (f *fakeEventStore) RegisterAttendee(ctx context.Context, registration *models.EventRegistration) error {
	e, ok := f.events[registration.EventID]
	if !ok || !e.IsActive {
		return apperrors.ErrEventNotFound
	}
	if e.MaxAttendees != nil && e.CurrentAttendees >= *e.MaxAttendees {
		return apperrors.ErrEventFull
	}
	for _, r := range f.registrations {
		if r.EventID == registration.EventID && r.AttendeeEmail == registration.AttendeeEmail {
			return apperrors.NewConflictError("Already registered for this event")
		}
	}
	e.CurrentAttendees++
	registration.ID = fmt.Sprintf("reg-%d", len(f.registrations)+1)
	registration.RegistrationDate = time.Now()
	f.registrations = append(f.registrations, *registration)
	return nil
}

func (f *fakeEventStore) GetRegistrations(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	var out []models.EventRegistration
	for _, r := range f.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newEventServiceForTest(store EventStore) EventService {
	return NewEventService(store, nil, zerolog.Nop())
}

func seedEvent(t *testing.T, store *fakeEventStore, maxAttendees *int) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:        "Community Outreach",
		Description:  "Quarterly outreach day",
		EventDate:    time.Now().Add(48 * time.Hour),
		MaxAttendees: maxAttendees,
	}
	if err := store.Create(context.Background(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func registration(n int) *dto.RegisterForEventRequest {
	return &dto.RegisterForEventRequest{
		AttendeeName:  fmt.Sprintf("Attendee %d", n),
		AttendeeEmail: fmt.Sprintf("attendee%d@example.com", n),
	}
}

func TestRegisterForEventCapacity(t *testing.T) {
	store := newFakeEventStore()
	svc := newEventServiceForTest(store)
	cap := 3
	event := seedEvent(t, store, &cap)

	for i := 1; i <= cap; i++ {
		if _, err := svc.RegisterForEvent(context.Background(), event.ID, nil, registration(i)); err != nil {
			t.Fatalf("registration %d: %v", i, err)
		}
	}

	_, err := svc.RegisterForEvent(context.Background(), event.ID, nil, registration(cap+1))
	if !errors.Is(err, apperrors.ErrEventFull) {
		t.Fatalf("err = %v, want ErrEventFull", err)
	}

	if got := store.events[event.ID].CurrentAttendees; got != cap {
		t.Errorf("CurrentAttendees = %d, want %d", got, cap)
	}
}

func TestRegisterForEventUnlimitedCapacity(t *testing.T) {
	store := newFakeEventStore()
	svc := newEventServiceForTest(store)
	event := seedEvent(t, store, nil)

	for i := 1; i <= 10; i++ {
		if _, err := svc.RegisterForEvent(context.Background(), event.ID, nil, registration(i)); err != nil {
			t.Fatalf("registration %d: %v", i, err)
		}
	}
}

func TestRegisterForEventDuplicateEmail(t *testing.T) {
	store := newFakeEventStore()
	svc := newEventServiceForTest(store)
	event := seedEvent(t, store, nil)

	if _, err := svc.RegisterForEvent(context.Background(), event.ID, nil, registration(1)); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := svc.RegisterForEvent(context.Background(), event.ID, nil, registration(1)); err == nil {
		t.Fatal("duplicate registration accepted")
	}
}

func TestRegisterForEventInactive(t *testing.T) {
	store := newFakeEventStore()
	svc := newEventServiceForTest(store)
	event := seedEvent(t, store, nil)
	if err := store.Deactivate(context.Background(), event.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := svc.RegisterForEvent(context.Background(), event.ID, nil, registration(1))
	if !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestUpdateEventCapBelowRegistrations(t *testing.T) {
	store := newFakeEventStore()
	svc := newEventServiceForTest(store)
	cap := 5
	event := seedEvent(t, store, &cap)

	for i := 1; i <= 3; i++ {
		if _, err := svc.RegisterForEvent(context.Background(), event.ID, nil, registration(i)); err != nil {
			t.Fatalf("registration %d: %v", i, err)
		}
	}

	lower := 2
	_, err := svc.UpdateEvent(context.Background(), event.ID, &dto.UpdateEventRequest{MaxAttendees: &lower})
	if err == nil {
		t.Fatal("cap below current registrations accepted")
	}

	equal := 3
	if _, err := svc.UpdateEvent(context.Background(), event.ID, &dto.UpdateEventRequest{MaxAttendees: &equal}); err != nil {
		t.Errorf("cap equal to current registrations rejected: %v", err)
	}
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	svc := newEventServiceForTest(newFakeEventStore())

	_, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:       "Bad date event",
		Description: "x",
		EventDate:   "next tuesday",
	}, nil)
	if err == nil {
		t.Fatal("invalid date accepted")
	}
}
