package services

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/models"
)

// MenuService is the catalogue: menu CRUD scoped to the owning provider,
// plus the public browse surface.
type MenuService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewMenuService(db *gorm.DB, log zerolog.Logger) *MenuService {
	return &MenuService{db: db, log: log}
}

// providerForUser resolves the provider profile owned by a user.
func (s *MenuService) providerForUser(ctx context.Context, userID uint) (*models.Provider, error) {
	var provider models.Provider
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Provider profile not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup provider")
	}
	return &provider, nil
}

type CreateMenuInput struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=2"`
	Image       string  `json:"image" binding:"omitempty,url"`
	IsAvailable *bool   `json:"is_available"`
}

// Create adds a menu item to the caller's own catalogue. Unapproved
// providers are rejected.
func (s *MenuService) Create(ctx context.Context, userID uint, in CreateMenuInput) (*models.Menu, error) {
	provider, err := s.providerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !provider.IsApproved {
		return nil, apperr.Forbidden("Provider is not approved yet")
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	menu := models.Menu{
		ProviderID:  provider.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		IsAvailable: available,
	}
	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "create menu")
	}
	menu.Provider = provider
	return &menu, nil
}

type MenuFilters struct {
	Category    string
	IsAvailable *bool
	Limit       int
	Offset      int
}

// ListAll is the public catalogue. The approved-provider rule is a query
// predicate so limit/offset stay correct.
func (s *MenuService) ListAll(ctx context.Context, f MenuFilters) ([]models.Menu, error) {
	var menus []models.Menu
	q := s.db.WithContext(ctx).Preload("Provider").
		Joins("JOIN providers ON providers.id = menus.provider_id").
		Where("providers.is_approved = ?", true)
	if f.Category != "" {
		q = q.Where("menus.category = ?", f.Category)
	}
	if f.IsAvailable != nil {
		q = q.Where("menus.is_available = ?", *f.IsAvailable)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if err := q.Order("menus.created_at desc").Find(&menus).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list menus")
	}
	return menus, nil
}

// GetByID returns a single menu item with its provider.
func (s *MenuService) GetByID(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := s.db.WithContext(ctx).Preload("Provider").First(&menu, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Menu item not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup menu")
	}
	return &menu, nil
}

// ListByProvider returns a provider's public catalogue.
func (s *MenuService) ListByProvider(ctx context.Context, providerID uint, f MenuFilters) ([]models.Menu, error) {
	var menus []models.Menu
	q := s.db.WithContext(ctx).Preload("Provider").Where("provider_id = ?", providerID)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.IsAvailable != nil {
		q = q.Where("is_available = ?", *f.IsAvailable)
	}
	if err := q.Order("created_at desc").Find(&menus).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "list provider menus")
	}
	return menus, nil
}

// ListMine returns the calling provider's own catalogue.
func (s *MenuService) ListMine(ctx context.Context, userID uint) ([]models.Menu, error) {
	provider, err := s.providerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ListByProvider(ctx, provider.ID, MenuFilters{})
}

type UpdateMenuInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=2"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,min=2"`
	Image       *string  `json:"image" binding:"omitempty,url"`
	IsAvailable *bool    `json:"is_available"`
}

// Update edits a menu item owned by the caller.
func (s *MenuService) Update(ctx context.Context, userID, menuID uint, in UpdateMenuInput) (*models.Menu, error) {
	provider, err := s.providerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var menu models.Menu
	if err := s.db.WithContext(ctx).First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Menu item not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup menu")
	}
	if menu.ProviderID != provider.ID {
		return nil, apperr.Forbidden("You can only update your own menu items")
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&menu).Updates(updates).Error; err != nil {
			return nil, pkgerrors.Wrap(err, "update menu")
		}
	}
	menu.Provider = provider
	return &menu, nil
}

// Delete removes a menu item owned by the caller.
func (s *MenuService) Delete(ctx context.Context, userID, menuID uint) error {
	provider, err := s.providerForUser(ctx, userID)
	if err != nil {
		return err
	}

	var menu models.Menu
	if err := s.db.WithContext(ctx).First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Menu item not found")
		}
		return pkgerrors.Wrap(err, "lookup menu")
	}
	if menu.ProviderID != provider.ID {
		return apperr.Forbidden("You can only delete your own menu items")
	}

	if err := s.db.WithContext(ctx).Delete(&menu).Error; err != nil {
		return pkgerrors.Wrap(err, "delete menu")
	}
	s.log.Info().Uint("menu_id", menu.ID).Uint("provider_id", provider.ID).Msg("menu item deleted")
	return nil
}
