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
	pkgauth "github.com/wilsonXeem/clong-backend/internal/pkg/auth"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	user.IsActive = true
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeUserStore) GetAll(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, userID string, firstName, lastName string, phone *string) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.Phone = phone
	return nil
}

func (f *fakeUserStore) UpdateRole(ctx context.Context, userID string, role models.Role) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserStore) SetActive(ctx context.Context, userID string, active bool) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func newUserServiceForTest() (UserService, *fakeUserStore) {
	store := newFakeUserStore()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "clong.org",
	})
	return NewUserService(store, jwtService, zerolog.Nop()), store
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     "donor@example.com",
		Password:  "s3cure-pass",
		FirstName: "Ada",
		LastName:  "Obi",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newUserServiceForTest()

	resp, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("role = %q, want user", resp.User.Role)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserServiceForTest()

	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), registerRequest())
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	svc, store := newUserServiceForTest()
	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email: "donor@example.com", Password: "s3cure-pass",
		})
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if resp.Token == "" {
			t.Error("empty token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email: "donor@example.com", Password: "wrong",
		})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email: "nobody@example.com", Password: "s3cure-pass",
		})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		if err := store.SetActive(context.Background(), "user-1", false); err != nil {
			t.Fatalf("deactivate: %v", err)
		}
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email: "donor@example.com", Password: "s3cure-pass",
		})
		if !errors.Is(err, apperrors.ErrAccountDisabled) {
			t.Errorf("err = %v, want ErrAccountDisabled", err)
		}
	})
}

func TestUpdateProfileMergesFields(t *testing.T) {
	svc, _ := newUserServiceForTest()
	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.UpdateProfile(context.Background(), "user-1", &dto.UpdateProfileRequest{
		FirstName: "Amina",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.FirstName != "Amina" {
		t.Errorf("FirstName = %q, want Amina", resp.FirstName)
	}
	if resp.LastName != "Obi" {
		t.Errorf("LastName = %q, want Obi (omitted field must keep its value)", resp.LastName)
	}
}

func TestDeleteUserSelfDeletion(t *testing.T) {
	svc, _ := newUserServiceForTest()
	if _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), "user-1", "user-1"); err == nil {
		t.Error("self deletion accepted")
	}
}
