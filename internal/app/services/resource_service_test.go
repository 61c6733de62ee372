package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wilsonXeem/clong-backend/internal/app/auth"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
)

type fakeResourceStore struct {
	resources map[string]*models.Resource
}

func newFakeResourceStore() *fakeResourceStore {
	return &fakeResourceStore{resources: make(map[string]*models.Resource)}
}

func (f *fakeResourceStore) Create(ctx context.Context, resource *models.Resource) error {
	resource.ID = fmt.Sprintf("resource-%d", len(f.resources)+1)
	f.resources[resource.ID] = resource
	return nil
}

func (f *fakeResourceStore) GetPublic(ctx context.Context, category *string) ([]models.Resource, error) {
	var out []models.Resource
	for _, r := range f.resources {
		if !r.IsPublic {
			continue
		}
		if category != nil && (r.Category == nil || *r.Category != *category) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeResourceStore) GetByUploader(ctx context.Context, userID string) ([]models.Resource, error) {
	var out []models.Resource
	for _, r := range f.resources {
		if r.UploadedBy != nil && *r.UploadedBy == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeResourceStore) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *fakeResourceStore) Update(ctx context.Context, resource *models.Resource) error {
	if _, ok := f.resources[resource.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	f.resources[resource.ID] = resource
	return nil
}

func (f *fakeResourceStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.resources[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.resources, id)
	return nil
}

type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*imagehost.UploadResult, error) {
	f.uploads++
	return &imagehost.UploadResult{
		URL:      "https://files.example.com/" + folder + "/" + fileHeader.Filename,
		PublicID: folder + "/" + fileHeader.Filename,
	}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, publicID string) error {
	return nil
}

func newResourceServiceForTest() (ResourceService, *fakeResourceStore, *fakeUploader) {
	store := newFakeResourceStore()
	uploader := &fakeUploader{}
	return NewResourceService(store, uploader, auth.NewAuthorizationService(), zerolog.Nop()), store, uploader
}

func fileHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestCreateResourceFileValidation(t *testing.T) {
	svc, _, uploader := newResourceServiceForTest()
	req := &dto.CreateResourceRequest{Title: "Annual Report"}

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.CreateResource(context.Background(), "user-1", req, nil)
		if !errors.Is(err, apperrors.ErrResourceFileMiss) {
			t.Errorf("err = %v, want ErrResourceFileMiss", err)
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		_, err := svc.CreateResource(context.Background(), "user-1", req, fileHeader("report.pdf", 11<<20))
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("err = %v, want bad request", err)
		}
	})

	t.Run("disallowed type", func(t *testing.T) {
		_, err := svc.CreateResource(context.Background(), "user-1", req, fileHeader("payload.exe", 1024))
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("err = %v, want bad request", err)
		}
	})

	if uploader.uploads != 0 {
		t.Errorf("uploader called %d times for rejected files", uploader.uploads)
	}

	t.Run("accepted file", func(t *testing.T) {
		resource, err := svc.CreateResource(context.Background(), "user-1", req, fileHeader("report.PDF", 2<<20))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if resource.FileType != "pdf" {
			t.Errorf("FileType = %q, want pdf", resource.FileType)
		}
		if resource.FileURL == "" {
			t.Error("empty FileURL")
		}
		if !resource.IsPublic {
			t.Error("resource not public by default")
		}
	})
}

func TestGetResourceByIDPrivateVisibility(t *testing.T) {
	svc, store, _ := newResourceServiceForTest()

	uploaderID := "user-1"
	private := false
	resource, err := svc.CreateResource(context.Background(), uploaderID, &dto.CreateResourceRequest{
		Title:    "Board Minutes",
		IsPublic: &private,
	}, fileHeader("minutes.pdf", 1024))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	strangerID := "user-2"

	if _, err := svc.GetResourceByID(context.Background(), resource.ID, nil, ""); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("anonymous read err = %v, want ErrResourceNotFound", err)
	}
	if _, err := svc.GetResourceByID(context.Background(), resource.ID, &strangerID, models.RoleUser); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("stranger read err = %v, want ErrResourceNotFound", err)
	}
	if _, err := svc.GetResourceByID(context.Background(), resource.ID, &uploaderID, models.RoleUser); err != nil {
		t.Errorf("uploader read: %v", err)
	}
	if _, err := svc.GetResourceByID(context.Background(), resource.ID, &strangerID, models.RoleAdmin); err != nil {
		t.Errorf("admin read: %v", err)
	}

	public, err := svc.GetPublicResources(context.Background(), nil)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 0 {
		t.Errorf("private resource surfaced in public listing: %d items", len(public))
	}
	if len(store.resources) != 1 {
		t.Fatalf("store holds %d resources, want 1", len(store.resources))
	}
}
