package services

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/models"
)

// AdminService covers the provider approval workflow, user management and
// the dashboard aggregates.
type AdminService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAdminService(db *gorm.DB, log zerolog.Logger) *AdminService {
	return &AdminService{db: db, log: log}
}

type UserFilters struct {
	Role     string
	IsActive *bool
}

// ListUsers returns all users with their profiles, newest first.
func (s *AdminService) ListUsers(ctx context.Context, f UserFilters) ([]models.User, error) {
	var users []models.User
	q := s.db.WithContext(ctx).Preload("Customer").Preload("Provider")
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}
	if err := q.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list users")
	}
	return users, nil
}

// PendingProviders lists providers awaiting approval.
func (s *AdminService) PendingProviders(ctx context.Context) ([]models.Provider, error) {
	var providers []models.Provider
	err := s.db.WithContext(ctx).Preload("User").
		Where("is_approved = ?", false).
		Order("created_at desc").Find(&providers).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list pending providers")
	}
	return providers, nil
}

// ApproveProvider sets a provider's approval flag either way.
func (s *AdminService) ApproveProvider(ctx context.Context, providerID uint, isApproved bool) (*models.Provider, error) {
	var provider models.Provider
	if err := s.db.WithContext(ctx).First(&provider, providerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Provider not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup provider")
	}

	if err := s.db.WithContext(ctx).Model(&provider).Update("is_approved", isApproved).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "update provider approval")
	}
	s.log.Info().Uint("provider_id", provider.ID).Bool("approved", isApproved).Msg("provider approval updated")

	if err := s.db.WithContext(ctx).Preload("User").First(&provider, provider.ID).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "reload provider")
	}
	return &provider, nil
}

// UpdateUserStatus toggles a user's active flag. Admin accounts are
// protected.
func (s *AdminService) UpdateUserStatus(ctx context.Context, userID uint, isActive bool) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup user")
	}

	if user.Role == models.RoleAdmin {
		return nil, apperr.Forbidden("Cannot deactivate admin users")
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("is_active", isActive).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "update user status")
	}
	s.log.Info().Uint("user_id", user.ID).Bool("active", isActive).Msg("user status updated")
	return &user, nil
}

// DeleteUser removes a user and its dependent rows. Admin accounts are
// protected.
func (s *AdminService) DeleteUser(ctx context.Context, userID uint) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return pkgerrors.Wrap(err, "lookup user")
	}

	if user.Role == models.RoleAdmin {
		return apperr.Forbidden("Cannot delete admin users")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Customer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Provider{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return pkgerrors.Wrap(err, "delete user")
	}

	s.log.Info().Uint("user_id", userID).Msg("user deleted")
	return nil
}

type DashboardStats struct {
	Users struct {
		Total     int64 `json:"total"`
		Customers int64 `json:"customers"`
		Providers int64 `json:"providers"`
	} `json:"users"`
	Providers struct {
		Total    int64 `json:"total"`
		Approved int64 `json:"approved"`
		Pending  int64 `json:"pending"`
	} `json:"providers"`
	Orders struct {
		Total        int64   `json:"total"`
		TotalRevenue float64 `json:"total_revenue"`
	} `json:"orders"`
}

// Dashboard gathers the aggregate counts concurrently. The numbers are
// approximately current; no snapshot consistency across counts.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model any, query string, args ...any) func() error {
		return func() error {
			q := s.db.WithContext(gctx).Model(model)
			if query != "" {
				q = q.Where(query, args...)
			}
			return q.Count(dst).Error
		}
	}

	g.Go(count(&stats.Users.Total, &models.User{}, ""))
	g.Go(count(&stats.Users.Customers, &models.Customer{}, ""))
	g.Go(count(&stats.Users.Providers, &models.Provider{}, ""))
	g.Go(count(&stats.Providers.Approved, &models.Provider{}, "is_approved = ?", true))
	g.Go(count(&stats.Providers.Pending, &models.Provider{}, "is_approved = ?", false))
	g.Go(count(&stats.Orders.Total, &models.Order{}, ""))
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&stats.Orders.TotalRevenue).Error
	})

	if err := g.Wait(); err != nil {
		return nil, pkgerrors.Wrap(err, "dashboard aggregates")
	}

	stats.Providers.Total = stats.Users.Providers
	return stats, nil
}
