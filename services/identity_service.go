package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"hotel-booking/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityService owns user records and credential checks.
type IdentityService struct {
	DB *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{DB: db}
}

// Register creates a user with the default role.
func (s *IdentityService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return s.create(ctx, username, email, password, models.RoleUser)
}

func (s *IdentityService) create(ctx context.Context, username, email, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" {
		return nil, &ValidationError{Field: "username", Message: "is required"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "is required"}
	}

	db := s.DB.WithContext(ctx)

	var existing models.User
	err := db.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, &DuplicateError{Field: duplicateField(&existing, username)}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		// lost a race with a concurrent registration
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to create user: %w", ErrDuplicateIdentity)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown user and for a
// wrong password alike.
func (s *IdentityService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *IdentityService) Load(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", id)
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return &user, nil
}

// EnsureAdmin creates an admin account when none exists yet.
func (s *IdentityService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := s.create(ctx, username, email, password, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	log.Printf("Default admin %q created", username)
	return nil
}

// Count is used by the admin dashboard.
func (s *IdentityService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

// duplicateField names the column a colliding row matched on. MySQL's default
// collation compares usernames case-insensitively, so the check does too.
func duplicateField(existing *models.User, username string) string {
	if strings.EqualFold(existing.Username, username) {
		return "username"
	}
	return "email"
}
