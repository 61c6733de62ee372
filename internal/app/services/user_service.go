package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/auth"
)

// UserStore is the subset of user persistence the service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	UpdateProfile(ctx context.Context, userID string, firstName, lastName string, phone *string) error
	UpdateRole(ctx context.Context, userID string, role models.Role) error
	SetActive(ctx context.Context, userID string, active bool) error
	Delete(ctx context.Context, userID string) error
}

// UserService defines the interface for account and profile operations
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context, page, pageSize int) ([]dto.UserResponse, int64, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) error
	SetActive(ctx context.Context, userID string, active bool) error
	DeleteUser(ctx context.Context, actorID, userID string) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *userServiceImpl) issueAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Str("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.AuthResponse{
		User:      dto.ToUserResponse(user),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// Register creates a new account and signs the user in
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return s.issueAuthResponse(user)
}

// Login verifies credentials and signs the user in
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	s.logger.Info().Str("userID", user.ID).Msg("User logged in")
	return s.issueAuthResponse(user)
}

// GetProfile retrieves the current user's profile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile updates the current user's profile fields. Omitted
// fields keep their stored values.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	firstName := user.FirstName
	if req.FirstName != "" {
		firstName = req.FirstName
	}
	lastName := user.LastName
	if req.LastName != "" {
		lastName = req.LastName
	}
	phone := user.Phone
	if req.Phone != nil {
		phone = req.Phone
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, firstName, lastName, phone); err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Phone = phone

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// GetAllUsers retrieves all accounts with pagination
func (s *userServiceImpl) GetAllUsers(ctx context.Context, page, pageSize int) ([]dto.UserResponse, int64, error) {
	users, total, err := s.userRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.ToUserResponse(&users[i]))
	}

	return responses, total, nil
}

// UpdateRole changes an account's role
func (s *userServiceImpl) UpdateRole(ctx context.Context, userID string, role models.Role) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return apperrors.NewBadRequestError("Invalid role")
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	s.logger.Info().Str("userID", userID).Str("role", string(role)).Msg("User role updated")
	return nil
}

// SetActive enables or disables an account
func (s *userServiceImpl) SetActive(ctx context.Context, userID string, active bool) error {
	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return err
	}

	s.logger.Info().Str("userID", userID).Bool("active", active).Msg("User active flag updated")
	return nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (s *userServiceImpl) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return apperrors.NewBadRequestError("Cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Str("userID", userID).Str("deletedBy", actorID).Msg("User deleted")
	return nil
}
