package services

import (
	"context"
	"errors"
	"math"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/models"
)

// ReviewService gates review creation on a delivered order between the
// pair and one review per customer per provider.
type ReviewService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewReviewService(db *gorm.DB, log zerolog.Logger) *ReviewService {
	return &ReviewService{db: db, log: log}
}

func (s *ReviewService) customerForUser(ctx context.Context, userID uint) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Customer profile not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup customer")
	}
	return &customer, nil
}

type CreateReviewInput struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// Create writes a review. The caller must have a DELIVERED order from
// the provider and must not have reviewed them before.
func (s *ReviewService) Create(ctx context.Context, userID uint, in CreateReviewInput) (*models.Review, error) {
	customer, err := s.customerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var review models.Review
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var provider models.Provider
		if err := tx.First(&provider, in.ProviderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Provider not found")
			}
			return pkgerrors.Wrap(err, "lookup provider")
		}

		var delivered int64
		if err := tx.Model(&models.Order{}).
			Where("customer_id = ? AND provider_id = ? AND status = ?",
				customer.ID, provider.ID, models.StatusDelivered).
			Count(&delivered).Error; err != nil {
			return pkgerrors.Wrap(err, "count delivered orders")
		}
		if delivered == 0 {
			return apperr.Forbidden("You can only review providers you have ordered from")
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("customer_id = ? AND provider_id = ?", customer.ID, provider.ID).
			Count(&existing).Error; err != nil {
			return pkgerrors.Wrap(err, "count reviews")
		}
		if existing > 0 {
			return apperr.Conflict("You have already reviewed this provider")
		}

		review = models.Review{
			CustomerID: customer.ID,
			ProviderID: provider.ID,
			Rating:     in.Rating,
			Comment:    in.Comment,
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Preload("Customer.User").Preload("Provider").
		First(&review, review.ID).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "reload review")
	}
	return &review, nil
}

type ProviderReviews struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	TotalReviews  int             `json:"total_reviews"`
}

// ListByProvider returns a provider's reviews with the mean rating
// rounded to one decimal, 0 when there are none.
func (s *ReviewService) ListByProvider(ctx context.Context, providerID uint) (*ProviderReviews, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).Preload("Customer.User").
		Where("provider_id = ?", providerID).
		Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list reviews")
	}

	var avg float64
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return &ProviderReviews{
		Reviews:       reviews,
		AverageRating: avg,
		TotalReviews:  len(reviews),
	}, nil
}

// ListMine returns the calling customer's reviews.
func (s *ReviewService) ListMine(ctx context.Context, userID uint) ([]models.Review, error) {
	customer, err := s.customerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	err = s.db.WithContext(ctx).Preload("Provider").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list customer reviews")
	}
	return reviews, nil
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

// Update edits a review; only its author may.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID uint, in UpdateReviewInput) (*models.Review, error) {
	customer, err := s.customerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Review not found")
		}
		return nil, pkgerrors.Wrap(err, "lookup review")
	}
	if review.CustomerID != customer.ID {
		return nil, apperr.Forbidden("You can only update your own reviews")
	}

	updates := map[string]any{}
	if in.Rating != nil {
		updates["rating"] = *in.Rating
	}
	if in.Comment != nil {
		updates["comment"] = *in.Comment
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&review).Updates(updates).Error; err != nil {
			return nil, pkgerrors.Wrap(err, "update review")
		}
	}

	if err := s.db.WithContext(ctx).Preload("Provider").First(&review, review.ID).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "reload review")
	}
	return &review, nil
}

// Delete removes a review; only its author may.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uint) error {
	customer, err := s.customerForUser(ctx, userID)
	if err != nil {
		return err
	}

	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Review not found")
		}
		return pkgerrors.Wrap(err, "lookup review")
	}
	if review.CustomerID != customer.ID {
		return apperr.Forbidden("You can only delete your own reviews")
	}

	if err := s.db.WithContext(ctx).Delete(&review).Error; err != nil {
		return pkgerrors.Wrap(err, "delete review")
	}
	return nil
}
