package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub-api/models"
)

func TestCreateReviewRequiresDeliveredOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestLogger())
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db, "a@x.com")
	_, provider := seedProvider(t, db, "p@x.com", true)

	// No order at all
	_, err := svc.Create(ctx, custUser.ID, CreateReviewInput{ProviderID: provider.ID, Rating: 5})
	requireStatus(t, err, http.StatusForbidden)

	// A pending order is not enough
	seedOrder(t, db, customer.ID, provider.ID, models.StatusPending)
	_, err = svc.Create(ctx, custUser.ID, CreateReviewInput{ProviderID: provider.ID, Rating: 5})
	requireStatus(t, err, http.StatusForbidden)

	seedOrder(t, db, customer.ID, provider.ID, models.StatusDelivered)
	review, err := svc.Create(ctx, custUser.ID, CreateReviewInput{
		ProviderID: provider.ID, Rating: 5, Comment: "great food",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewOncePerPair(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestLogger())
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db, "a@x.com")
	_, provider := seedProvider(t, db, "p@x.com", true)
	seedOrder(t, db, customer.ID, provider.ID, models.StatusDelivered)

	_, err := svc.Create(ctx, custUser.ID, CreateReviewInput{ProviderID: provider.ID, Rating: 5})
	require.NoError(t, err)

	_, err = svc.Create(ctx, custUser.ID, CreateReviewInput{ProviderID: provider.ID, Rating: 4})
	requireStatus(t, err, http.StatusConflict)
}

func TestCreateReviewUnknownProvider(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestLogger())
	custUser, _ := seedCustomer(t, db, "a@x.com")

	_, err := svc.Create(context.Background(), custUser.ID, CreateReviewInput{ProviderID: 999, Rating: 5})
	requireStatus(t, err, http.StatusNotFound)
}

func TestProviderReviewAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestLogger())
	ctx := context.Background()

	_, provider := seedProvider(t, db, "p@x.com", true)

	// No reviews yet: average is 0, not a division by zero
	empty, err := svc.ListByProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.AverageRating)
	assert.Zero(t, empty.TotalReviews)

	for i, rating := range []int{5, 4, 4} {
		_, customer := seedCustomer(t, db, string(rune('a'+i))+"@x.com")
		require.NoError(t, db.Create(&models.Review{
			CustomerID: customer.ID,
			ProviderID: provider.ID,
			Rating:     rating,
		}).Error)
	}

	result, err := svc.ListByProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalReviews)
	// (5+4+4)/3 = 4.333... rounds to one decimal
	assert.Equal(t, 4.3, result.AverageRating)
}

func TestUpdateReviewAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestLogger())
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db, "a@x.com")
	otherUser, _ := seedCustomer(t, db, "b@x.com")
	_, provider := seedProvider(t, db, "p@x.com", true)

	review := models.Review{CustomerID: customer.ID, ProviderID: provider.ID, Rating: 3}
	require.NoError(t, db.Create(&review).Error)

	rating := 5
	_, err := svc.Update(ctx, otherUser.ID, review.ID, UpdateReviewInput{Rating: &rating})
	requireStatus(t, err, http.StatusForbidden)

	updated, err := svc.Update(ctx, custUser.ID, review.ID, UpdateReviewInput{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	_, err = svc.Update(ctx, custUser.ID, 999, UpdateReviewInput{Rating: &rating})
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteReviewAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestLogger())
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db, "a@x.com")
	otherUser, _ := seedCustomer(t, db, "b@x.com")
	_, provider := seedProvider(t, db, "p@x.com", true)

	review := models.Review{CustomerID: customer.ID, ProviderID: provider.ID, Rating: 3}
	require.NoError(t, db.Create(&review).Error)

	err := svc.Delete(ctx, otherUser.ID, review.ID)
	requireStatus(t, err, http.StatusForbidden)

	require.NoError(t, svc.Delete(ctx, custUser.ID, review.ID))

	err = svc.Delete(ctx, custUser.ID, review.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestListMineReturnsOwnReviews(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, newTestLogger())
	ctx := context.Background()

	custUser, customer := seedCustomer(t, db, "a@x.com")
	_, otherCustomer := seedCustomer(t, db, "b@x.com")
	_, provider := seedProvider(t, db, "p@x.com", true)

	require.NoError(t, db.Create(&models.Review{
		CustomerID: customer.ID, ProviderID: provider.ID, Rating: 4,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		CustomerID: otherCustomer.ID, ProviderID: provider.ID, Rating: 2,
	}).Error)

	reviews, err := svc.ListMine(ctx, custUser.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}
