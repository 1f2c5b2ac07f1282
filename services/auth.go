package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/models"
)

// AuthService owns registration, credentials, sessions and profiles.
type AuthService struct {
	db         *gorm.DB
	log        zerolog.Logger
	bcryptCost int
	sessionTTL time.Duration
}

func NewAuthService(db *gorm.DB, log zerolog.Logger, bcryptCost int, sessionTTL time.Duration) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{db: db, log: log, bcryptCost: bcryptCost, sessionTTL: sessionTTL}
}

type RegisterInput struct {
	Name     string      `json:"name" binding:"required,min=2"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6,max=100"`
	Phone    string      `json:"phone"`
	Role     models.Role `json:"role" binding:"required,oneof=CUSTOMER PROVIDER"`

	// Provider-only fields
	ShopName    string `json:"shop_name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// Register creates a user together with its customer or provider profile
// in one transaction.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Role == models.RoleProvider && (in.ShopName == "" || in.Address == "") {
		return nil, apperr.InvalidRequest("Shop name and address are required for providers")
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("User with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(err, "lookup email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "hash password")
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Phone:        in.Phone,
		IsActive:     true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch in.Role {
		case models.RoleCustomer:
			return tx.Create(&models.Customer{UserID: user.ID}).Error
		case models.RoleProvider:
			return tx.Create(&models.Provider{
				UserID:      user.ID,
				ShopName:    in.ShopName,
				Address:     in.Address,
				Description: in.Description,
			}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")

	if err := s.db.WithContext(ctx).Preload("Customer").Preload("Provider").First(&user, user.ID).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "reload user")
	}
	return &user, nil
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Login verifies credentials and issues an opaque session token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Customer").Preload("Provider").
		Where("email = ?", in.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticated("Invalid email or password")
		}
		return nil, pkgerrors.Wrap(err, "lookup user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}

	if !user.IsActive {
		return nil, apperr.Forbidden("Your account has been deactivated")
	}

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create session")
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return &LoginResult{User: &user, Token: session.Token}, nil
}

// Logout invalidates the presented token by deleting its session row.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	res := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{})
	if res.Error != nil {
		return pkgerrors.Wrap(res.Error, "delete session")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Session not found")
	}
	return nil
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	UserID uint
	Email  string
	Role   models.Role
}

// ResolveSession maps a bearer token to an identity. Pure read: the
// session is never refreshed or extended here.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*Identity, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Preload("User").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticated("Invalid or expired session")
		}
		return nil, pkgerrors.Wrap(err, "lookup session")
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, apperr.Unauthenticated("Invalid or expired session")
	}

	if session.User == nil || !session.User.IsActive {
		return nil, apperr.Forbidden("Account is inactive")
	}

	return &Identity{
		UserID: session.User.ID,
		Email:  session.User.Email,
		Role:   session.User.Role,
	}, nil
}

// ProviderStats is the catalogue/order/review tally shown on a provider's
// own profile.
type ProviderStats struct {
	Menus   int64 `json:"menus"`
	Orders  int64 `json:"orders"`
	Reviews int64 `json:"reviews"`
}

type Profile struct {
	*models.User
	ProviderStats *ProviderStats `json:"provider_stats,omitempty"`
}

// GetProfile returns the user with its role profile attached.
func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Customer").Preload("Provider").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup user")
	}

	profile := &Profile{User: &user}
	if user.Provider != nil {
		stats := &ProviderStats{}
		db := s.db.WithContext(ctx)
		if err := db.Model(&models.Menu{}).Where("provider_id = ?", user.Provider.ID).Count(&stats.Menus).Error; err != nil {
			return nil, pkgerrors.Wrap(err, "count menus")
		}
		if err := db.Model(&models.Order{}).Where("provider_id = ?", user.Provider.ID).Count(&stats.Orders).Error; err != nil {
			return nil, pkgerrors.Wrap(err, "count orders")
		}
		if err := db.Model(&models.Review{}).Where("provider_id = ?", user.Provider.ID).Count(&stats.Reviews).Error; err != nil {
			return nil, pkgerrors.Wrap(err, "count reviews")
		}
		profile.ProviderStats = stats
	}
	return profile, nil
}

type UpdateProfileInput struct {
	Name            string `json:"name" binding:"omitempty,min=2"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"delivery_address"`
}

// UpdateProfile changes the caller's own name/phone, and the delivery
// address for customers.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*Profile, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("Customer").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup user")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if in.Name != "" {
			updates["name"] = in.Name
		}
		if in.Phone != "" {
			updates["phone"] = in.Phone
		}
		if len(updates) > 0 {
			if err := tx.Model(&user).Updates(updates).Error; err != nil {
				return err
			}
		}
		if user.Customer != nil && in.DeliveryAddress != "" {
			return tx.Model(user.Customer).Update("delivery_address", in.DeliveryAddress).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}
