package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/models"
	"wisenkap/internal/pagination"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user
func (s *userService) CreateUser(ctx context.Context, email, password string, profile ProfileUpdate) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Storage("check email", err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Currency: "EUR",
		IsActive: true,
	}
	applyProfile(user, profile)

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, apperrors.Storage("insert user", err)
	}

	return user, nil
}

// GetUserByEmail retrieves an active user by email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Storage("get user", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Storage("get user", err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// AttemptLogin checks credentials and records the login time. Unknown emails
// and wrong passwords produce the same error.
func (s *userService) AttemptLogin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.db.WithContext(ctx).Model(user).Update("last_login_at", now).Error; err != nil {
		return nil, apperrors.Storage("record login", err)
	}
	user.LastLoginAt = &now
	return user, nil
}

// UpdateProfile changes the profile fields that are set in update.
func (s *userService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfile(user, update)
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, apperrors.Storage("update profile", err)
	}
	return user, nil
}

// ListUsers returns a page of users ordered by ID.
func (s *userService) ListUsers(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Storage("count users", err)
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Order("id").
		Scopes(pagination.Paginate(page)).
		Find(&users).Error
	if err != nil {
		return nil, apperrors.Storage("list users", err)
	}

	result := pagination.NewPageResponse(users, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// StoreRefreshTokenHash replaces the refresh token hash of a user. An empty
// hash revokes the current refresh token.
func (s *userService) StoreRefreshTokenHash(ctx context.Context, userID uint, tokenHash string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("refresh_token_hash", tokenHash)
	if result.Error != nil {
		return apperrors.Storage("store refresh token", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash of a user.
func (s *userService) GetRefreshTokenHash(ctx context.Context, userID uint) (string, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}

func applyProfile(user *models.User, p ProfileUpdate) {
	if p.Phone != nil {
		user.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.FirstName != nil {
		user.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.Gender != nil {
		user.Gender = strings.TrimSpace(*p.Gender)
	}
	if p.DOB != nil {
		dob := p.DOB.UTC()
		user.DOB = &dob
	}
	if p.Country != nil {
		user.Country = strings.TrimSpace(*p.Country)
	}
	if p.PostalCode != nil {
		user.PostalCode = strings.TrimSpace(*p.PostalCode)
	}
	if p.Currency != nil {
		user.Currency = strings.ToUpper(strings.TrimSpace(*p.Currency))
	}
}
