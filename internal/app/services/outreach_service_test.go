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

type fakeContactStore struct {
	contacts []*models.Contact
}

func (f *fakeContactStore) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = fmt.Sprintf("contact-%d", len(f.contacts)+1)
	contact.CreatedAt = time.Now()
	f.contacts = append(f.contacts, contact)
	return nil
}

func (f *fakeContactStore) GetAll(ctx context.Context, page, pageSize int) ([]models.Contact, int64, error) {
	var out []models.Contact
	for _, c := range f.contacts {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeContactStore) MarkRead(ctx context.Context, id string) error {
	for _, c := range f.contacts {
		if c.ID == id {
			c.IsRead = true
			return nil
		}
	}
	return apperrors.ErrContactNotFound
}

type fakeNewsletterStore struct {
	subscribers map[string]*models.NewsletterSubscriber
}

func newFakeNewsletterStore() *fakeNewsletterStore {
	return &fakeNewsletterStore{subscribers: make(map[string]*models.NewsletterSubscriber)}
}

func (f *fakeNewsletterStore) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	sub, ok := f.subscribers[email]
	if !ok {
		return nil, apperrors.ErrSubscriberMissing
	}
	clone := *sub
	return &clone, nil
}

func (f *fakeNewsletterStore) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	sub := &models.NewsletterSubscriber{
		ID:           fmt.Sprintf("sub-%d", len(f.subscribers)+1),
		Email:        email,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}
	f.subscribers[email] = sub
	return sub, nil
}

func (f *fakeNewsletterStore) Reactivate(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	sub, ok := f.subscribers[email]
	if !ok {
		return nil, apperrors.ErrSubscriberMissing
	}
	sub.IsActive = true
	sub.UnsubscribedAt = nil
	return sub, nil
}

func (f *fakeNewsletterStore) Unsubscribe(ctx context.Context, email string) error {
	sub, ok := f.subscribers[email]
	if !ok || !sub.IsActive {
		return apperrors.ErrSubscriberMissing
	}
	now := time.Now()
	sub.IsActive = false
	sub.UnsubscribedAt = &now
	return nil
}

func (f *fakeNewsletterStore) GetActive(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	var out []models.NewsletterSubscriber
	for _, sub := range f.subscribers {
		if sub.IsActive {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func newOutreachServiceForTest() (OutreachService, *fakeContactStore, *fakeNewsletterStore) {
	contacts := &fakeContactStore{}
	newsletter := newFakeNewsletterStore()
	return NewOutreachService(contacts, newsletter, zerolog.Nop()), contacts, newsletter
}

func TestSubscribeLifecycle(t *testing.T) {
	svc, _, store := newOutreachServiceForTest()
	email := "reader@example.com"

	sub, err := svc.Subscribe(context.Background(), email)
	if err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	if !sub.IsActive {
		t.Error("new subscription not active")
	}

	_, err = svc.Subscribe(context.Background(), email)
	if !errors.Is(err, apperrors.ErrAlreadySubscribed) {
		t.Fatalf("second subscribe err = %v, want ErrAlreadySubscribed", err)
	}

	if err := svc.Unsubscribe(context.Background(), email); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if store.subscribers[email].IsActive {
		t.Fatal("subscriber still active after unsubscribe")
	}

	sub, err = svc.Subscribe(context.Background(), email)
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if !sub.IsActive {
		t.Error("lapsed subscription not reactivated")
	}
	if sub.UnsubscribedAt != nil {
		t.Error("UnsubscribedAt not cleared on reactivation")
	}
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	svc, _, _ := newOutreachServiceForTest()

	err := svc.Unsubscribe(context.Background(), "nobody@example.com")
	if !errors.Is(err, apperrors.ErrSubscriberMissing) {
		t.Errorf("err = %v, want ErrSubscriberMissing", err)
	}
}

func TestGetSubscribersOnlyActive(t *testing.T) {
	svc, _, _ := newOutreachServiceForTest()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := svc.Subscribe(context.Background(), email); err != nil {
			t.Fatalf("subscribe %s: %v", email, err)
		}
	}
	if err := svc.Unsubscribe(context.Background(), "b@example.com"); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	subs, err := svc.GetSubscribers(context.Background())
	if err != nil {
		t.Fatalf("get subscribers: %v", err)
	}
	if len(subs) != 2 {
		t.Errorf("got %d active subscribers, want 2", len(subs))
	}
}

func TestSubmitContact(t *testing.T) {
	svc, store, _ := newOutreachServiceForTest()

	contact, err := svc.SubmitContact(context.Background(), &dto.CreateContactRequest{
		Name:    "Ngozi Eze",
		Email:   "ngozi@example.com",
		Subject: "Partnership",
		Message: "We would like to support your water program.",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if contact.ID == "" {
		t.Error("contact not assigned an ID")
	}
	if contact.IsRead {
		t.Error("new contact marked read")
	}

	if err := svc.MarkContactRead(context.Background(), contact.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !store.contacts[0].IsRead {
		t.Error("read flag not persisted")
	}
}
