package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

// fakeDonationStore mirrors the transactional completion semantics: the
// status guard and the program credit happen together, so a repeated
// completion never credits twice.
type fakeDonationStore struct {
	donations map[string]*models.Donation
	programs  *fakeProgramStore
}

func newFakeDonationStore(programs *fakeProgramStore) *fakeDonationStore {
	return &fakeDonationStore{donations: make(map[string]*models.Donation), programs: programs}
}

func (f *fakeDonationStore) Create(ctx context.Context, donation *models.Donation) error {
	donation.ID = fmt.Sprintf("donation-%d", len(f.donations)+1)
	donation.PaymentStatus = models.PaymentPending
	donation.CreatedAt = time.Now()
	f.donations[donation.ID] = donation
	return nil
}

func (f *fakeDonationStore) GetAll(ctx context.Context, programID *string, page, pageSize int) ([]models.Donation, int64, error) {
	var out []models.Donation
	for _, d := range f.donations {
		if programID != nil && (d.ProgramID == nil || *d.ProgramID != *programID) {
			continue
		}
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDonationStore) GetByUserID(ctx context.Context, userID string) ([]models.Donation, error) {
	var out []models.Donation
	for _, d := range f.donations {
		if d.UserID != nil && *d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDonationStore) GetByID(ctx context.Context, id string) (*models.Donation, error) {
	d, ok := f.donations[id]
	if !ok {
		return nil, apperrors.ErrDonationNotFound
	}
	clone := *d
	return &clone, nil
}

func (f *fakeDonationStore) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, reference *string) error {
	d, ok := f.donations[id]
	if !ok {
		return apperrors.ErrDonationNotFound
	}
	if d.PaymentStatus == models.PaymentCompleted {
		return apperrors.ErrDonationAlreadyClosed
	}
	d.PaymentStatus = status
	if reference != nil {
		d.PaymentReference = reference
	}
	return nil
}

func (f *fakeDonationStore) Complete(ctx context.Context, id string, reference *string) (bool, error) {
	d, ok := f.donations[id]
	if !ok {
		return false, apperrors.ErrDonationNotFound
	}
	if d.PaymentStatus == models.PaymentCompleted {
		return false, nil
	}
	d.PaymentStatus = models.PaymentCompleted
	if reference != nil {
		d.PaymentReference = reference
	}
	if d.ProgramID != nil {
		f.programs.credit(*d.ProgramID, d.Amount)
	}
	return true, nil
}

// fakeProgramStore keeps programs in memory, tracking credited totals
type fakeProgramStore struct {
	programs map[string]*models.Program
}

func newFakeProgramStore() *fakeProgramStore {
	return &fakeProgramStore{programs: make(map[string]*models.Program)}
}

func (f *fakeProgramStore) credit(id, amount string) {
	p, ok := f.programs[id]
	if !ok {
		return
	}
	current, _ := strconv.ParseFloat(p.CurrentAmount, 64)
	add, _ := strconv.ParseFloat(amount, 64)
	p.CurrentAmount = strconv.FormatFloat(current+add, 'f', 2, 64)
}

func (f *fakeProgramStore) Create(ctx context.Context, program *models.Program) error {
	program.ID = fmt.Sprintf("program-%d", len(f.programs)+1)
	program.IsActive = true
	if program.CurrentAmount == "" {
		program.CurrentAmount = "0.00"
	}
	f.programs[program.ID] = program
	return nil
}

func (f *fakeProgramStore) GetAll(ctx context.Context, activeOnly bool) ([]models.Program, error) {
	var out []models.Program
	for _, p := range f.programs {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProgramStore) GetByID(ctx context.Context, id string) (*models.Program, error) {
	p, ok := f.programs[id]
	if !ok {
		return nil, apperrors.ErrProgramNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProgramStore) Update(ctx context.Context, program *models.Program) error {
	if _, ok := f.programs[program.ID]; !ok {
		return apperrors.ErrProgramNotFound
	}
	f.programs[program.ID] = program
	return nil
}

func (f *fakeProgramStore) Deactivate(ctx context.Context, id string) error {
	p, ok := f.programs[id]
	if !ok {
		return apperrors.ErrProgramNotFound
	}
	p.IsActive = false
	return nil
}

func donationTestFixture(t *testing.T) (DonationService, *fakeDonationStore, *fakeProgramStore, *models.Program) {
	t.Helper()
	programs := newFakeProgramStore()
	donations := newFakeDonationStore(programs)
	svc := NewDonationService(donations, programs, zerolog.Nop())

	program := &models.Program{Title: "Clean Water", Description: "Boreholes"}
	if err := programs.Create(context.Background(), program); err != nil {
		t.Fatalf("seed program: %v", err)
	}
	return svc, donations, programs, program
}

func TestCreateDonationValidation(t *testing.T) {
	svc, _, _, program := donationTestFixture(t)

	for _, amount := range []string{"0", "-10", "abc", ""} {
		_, err := svc.CreateDonation(context.Background(), nil, &dto.CreateDonationRequest{
			Amount:    amount,
			ProgramID: &program.ID,
		})
		if err == nil {
			t.Errorf("amount %q accepted", amount)
		}
	}
}

func TestCreateDonationInactiveProgram(t *testing.T) {
	svc, _, programs, program := donationTestFixture(t)
	if err := programs.Deactivate(context.Background(), program.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := svc.CreateDonation(context.Background(), nil, &dto.CreateDonationRequest{
		Amount:    "50.00",
		ProgramID: &program.ID,
	})
	if !errors.Is(err, apperrors.ErrProgramNotFound) {
		t.Errorf("err = %v, want ErrProgramNotFound", err)
	}
}

func TestCompleteDonationCreditsProgramOnce(t *testing.T) {
	svc, _, programs, program := donationTestFixture(t)

	donation, err := svc.CreateDonation(context.Background(), nil, &dto.CreateDonationRequest{
		Amount:    "100.00",
		ProgramID: &program.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	complete := &dto.UpdateDonationStatusRequest{PaymentStatus: models.PaymentCompleted}
	for i := 0; i < 3; i++ {
		updated, err := svc.UpdatePaymentStatus(context.Background(), donation.ID, complete)
		if err != nil {
			t.Fatalf("completion %d: %v", i+1, err)
		}
		if updated.PaymentStatus != models.PaymentCompleted {
			t.Fatalf("status = %q, want completed", updated.PaymentStatus)
		}
	}

	if got := programs.programs[program.ID].CurrentAmount; got != "100.00" {
		t.Errorf("CurrentAmount = %q, want 100.00 (credited exactly once)", got)
	}
}

func TestUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := donationTestFixture(t)

	_, err := svc.UpdatePaymentStatus(context.Background(), "donation-1", &dto.UpdateDonationStatusRequest{
		PaymentStatus: models.PaymentStatus("refunded"),
	})
	if !errors.Is(err, apperrors.ErrInvalidPaymentStatus) {
		t.Errorf("err = %v, want ErrInvalidPaymentStatus", err)
	}
}

func TestGetDonationsWithholdsAnonymousDonor(t *testing.T) {
	svc, _, _, program := donationTestFixture(t)

	name := "Ada Obi"
	if _, err := svc.CreateDonation(context.Background(), nil, &dto.CreateDonationRequest{
		Amount:      "25.00",
		ProgramID:   &program.ID,
		DonorName:   &name,
		IsAnonymous: true,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, _, err := svc.GetDonations(context.Background(), nil, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	if items[0].DonorName != nil {
		t.Errorf("anonymous donor name exposed: %q", *items[0].DonorName)
	}
	if !items[0].IsAnonymous {
		t.Error("IsAnonymous flag lost")
	}
}

func TestGetDonationByIDWithholdsAnonymousDonor(t *testing.T) {
	svc, _, _, program := donationTestFixture(t)

	name := "Ada Obi"
	userID := "user-1"
	donation, err := svc.CreateDonation(context.Background(), &userID, &dto.CreateDonationRequest{
		Amount:      "25.00",
		ProgramID:   &program.ID,
		DonorName:   &name,
		IsAnonymous: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// stranger
	got, err := svc.GetDonationByID(context.Background(), donation.ID, nil, models.RoleUser)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DonorName != nil || got.UserID != nil {
		t.Error("anonymous donor identity exposed to stranger")
	}

	// the donor themselves
	got, err = svc.GetDonationByID(context.Background(), donation.ID, &userID, models.RoleUser)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DonorName == nil {
		t.Error("donor cannot see their own donation details")
	}

	// admin
	got, err = svc.GetDonationByID(context.Background(), donation.ID, nil, models.RoleAdmin)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DonorName == nil {
		t.Error("admin cannot see donor details")
	}
}
