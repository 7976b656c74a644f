package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stockflow/inventory-api/internal/auth"
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/mapper"
	"github.com/stockflow/inventory-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when the username is already taken
var ErrDuplicateUsername = errors.New("username is already taken")

// ErrDuplicateEmail is returned when the email is already registered
var ErrDuplicateEmail = errors.New("email is already registered")

// ErrInvalidCredentials is returned when the username or password is wrong.
// The reason is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidUserRole is returned when an unknown role is provided
var ErrInvalidUserRole = errors.New("invalid user role")

// UserService handles registration, authentication, and user management
type UserService struct {
	userRepo *repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo *repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new user account
func (s *UserService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserDTO, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleStandardUser
	}
	if !role.IsValid() {
		return nil, ErrInvalidUserRole
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	existing, err = s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	dto := mapper.UserToDTO(user)
	return &dto, nil
}

// Authenticate verifies credentials and issues an access token
func (s *UserService) Authenticate(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("failed login attempt", zap.String("username", req.Username))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(domain.TimeFormat),
		User:      mapper.UserToDTO(user),
	}, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	dto := mapper.UserToDTO(user)
	return &dto, nil
}

// List returns a paginated list of users, optionally filtered by username or email substring
func (s *UserService) List(ctx context.Context, page, pageSize int, search string, sort repository.SortConfig) (*domain.PaginatedResponse, error) {
	users, total, err := s.userRepo.ListWithSortConfig(ctx, page, pageSize, search, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return paginate(mapper.UsersToDTOs(users), total, page, pageSize), nil
}

// Delete deletes a user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}
