package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wilsonXeem/clong-backend/internal/app/auth"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

type fakeStoryStore struct {
	stories map[string]*models.Story
}

func newFakeStoryStore() *fakeStoryStore {
	return &fakeStoryStore{stories: make(map[string]*models.Story)}
}

func (f *fakeStoryStore) Create(ctx context.Context, story *models.Story) error {
	story.ID = fmt.Sprintf("story-%d", len(f.stories)+1)
	f.stories[story.ID] = story
	return nil
}

func (f *fakeStoryStore) GetPublished(ctx context.Context) ([]models.Story, error) {
	var out []models.Story
	for _, s := range f.stories {
		if s.IsPublished {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStoryStore) GetByAuthor(ctx context.Context, authorID string) ([]models.Story, error) {
	var out []models.Story
	for _, s := range f.stories {
		if s.AuthorID != nil && *s.AuthorID == authorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStoryStore) GetByID(ctx context.Context, id string) (*models.Story, error) {
	s, ok := f.stories[id]
	if !ok {
		return nil, apperrors.ErrStoryNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeStoryStore) Update(ctx context.Context, story *models.Story) error {
	if _, ok := f.stories[story.ID]; !ok {
		return apperrors.ErrStoryNotFound
	}
	f.stories[story.ID] = story
	return nil
}

func (f *fakeStoryStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.stories[id]; !ok {
		return apperrors.ErrStoryNotFound
	}
	delete(f.stories, id)
	return nil
}

func newStoryServiceForTest() (StoryService, *fakeStoryStore) {
	store := newFakeStoryStore()
	return NewStoryService(store, nil, auth.NewAuthorizationService(), zerolog.Nop()), store
}

func seedStory(t *testing.T, svc StoryService, authorID string, published bool) *models.Story {
	t.Helper()
	story, err := svc.CreateStory(context.Background(), authorID, &dto.CreateStoryRequest{
		Title:       "From the Field",
		Content:     "What your support made possible.",
		IsPublished: published,
	}, nil)
	if err != nil {
		t.Fatalf("seed story: %v", err)
	}
	return story
}

func TestGetStoryByIDDraftVisibility(t *testing.T) {
	svc, _ := newStoryServiceForTest()
	draft := seedStory(t, svc, "author-1", false)

	authorID := "author-1"
	strangerID := "user-2"

	t.Run("anonymous caller", func(t *testing.T) {
		_, err := svc.GetStoryByID(context.Background(), draft.ID, nil, "")
		if !errors.Is(err, apperrors.ErrStoryNotFound) {
			t.Errorf("err = %v, want ErrStoryNotFound", err)
		}
	})

	t.Run("other user", func(t *testing.T) {
		_, err := svc.GetStoryByID(context.Background(), draft.ID, &strangerID, models.RoleUser)
		if !errors.Is(err, apperrors.ErrStoryNotFound) {
			t.Errorf("err = %v, want ErrStoryNotFound", err)
		}
	})

	t.Run("author", func(t *testing.T) {
		got, err := svc.GetStoryByID(context.Background(), draft.ID, &authorID, models.RoleUser)
		if err != nil {
			t.Fatalf("author read: %v", err)
		}
		if got.ID != draft.ID {
			t.Errorf("got story %q, want %q", got.ID, draft.ID)
		}
	})

	t.Run("admin", func(t *testing.T) {
		if _, err := svc.GetStoryByID(context.Background(), draft.ID, &strangerID, models.RoleAdmin); err != nil {
			t.Errorf("admin read: %v", err)
		}
	})

	t.Run("published story is open", func(t *testing.T) {
		published := seedStory(t, svc, "author-1", true)
		if _, err := svc.GetStoryByID(context.Background(), published.ID, nil, ""); err != nil {
			t.Errorf("anonymous read of published story: %v", err)
		}
	})
}

func TestUpdateStoryOwnership(t *testing.T) {
	svc, store := newStoryServiceForTest()
	story := seedStory(t, svc, "author-1", true)

	req := &dto.UpdateStoryRequest{Title: "Revised", IsPublished: true}

	_, err := svc.UpdateStory(context.Background(), story.ID, "user-2", models.RoleUser, req, nil)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("stranger update err = %v, want ErrPermissionDenied", err)
	}

	updated, err := svc.UpdateStory(context.Background(), story.ID, "author-1", models.RoleUser, req, nil)
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Title != "Revised" {
		t.Errorf("Title = %q, want Revised", updated.Title)
	}
	if updated.Content != "What your support made possible." {
		t.Errorf("omitted content overwritten: %q", updated.Content)
	}

	if _, err := svc.UpdateStory(context.Background(), story.ID, "admin-1", models.RoleAdmin, req, nil); err != nil {
		t.Errorf("admin update: %v", err)
	}

	if store.stories[story.ID].Title != "Revised" {
		t.Error("update not persisted")
	}
}

func TestDeleteStoryOwnership(t *testing.T) {
	svc, store := newStoryServiceForTest()
	story := seedStory(t, svc, "author-1", true)

	err := svc.DeleteStory(context.Background(), story.ID, "user-2", models.RoleUser)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("stranger delete err = %v, want ErrPermissionDenied", err)
	}
	if _, ok := store.stories[story.ID]; !ok {
		t.Fatal("story deleted by non-author")
	}

	if err := svc.DeleteStory(context.Background(), story.ID, "admin-1", models.RoleAdmin); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, ok := store.stories[story.ID]; ok {
		t.Error("story still present after delete")
	}
}
