package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub-api/models"
)

func TestApproveProvider(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestLogger())
	ctx := context.Background()

	_, provider := seedProvider(t, db, "p@x.com", false)

	approved, err := svc.ApproveProvider(ctx, provider.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	require.NotNil(t, approved.User)

	// Approval can be revoked through the same operation
	revoked, err := svc.ApproveProvider(ctx, provider.ID, false)
	require.NoError(t, err)
	assert.False(t, revoked.IsApproved)

	_, err = svc.ApproveProvider(ctx, 999, true)
	requireStatus(t, err, http.StatusNotFound)
}

func TestPendingProviders(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestLogger())

	seedProvider(t, db, "p@x.com", false)
	seedProvider(t, db, "q@x.com", true)

	pending, err := svc.PendingProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.False(t, pending[0].IsApproved)
	assert.Equal(t, "p@x.com", pending[0].User.Email)
}

func TestListUsersFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestLogger())
	ctx := context.Background()

	seedCustomer(t, db, "a@x.com")
	seedProvider(t, db, "p@x.com", true)
	inactive := seedUser(t, db, models.RoleCustomer, "b@x.com")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	all, err := svc.ListUsers(ctx, UserFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	providers, err := svc.ListUsers(ctx, UserFilters{Role: string(models.RoleProvider)})
	require.NoError(t, err)
	require.Len(t, providers, 1)
	require.NotNil(t, providers[0].Provider)

	active := true
	activeUsers, err := svc.ListUsers(ctx, UserFilters{IsActive: &active})
	require.NoError(t, err)
	assert.Len(t, activeUsers, 2)
}

func TestUpdateUserStatusProtectsAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestLogger())
	ctx := context.Background()

	customer := seedUser(t, db, models.RoleCustomer, "a@x.com")
	admin := seedUser(t, db, models.RoleAdmin, "root@x.com")

	updated, err := svc.UpdateUserStatus(ctx, customer.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateUserStatus(ctx, admin.ID, false)
	requireStatus(t, err, http.StatusForbidden)

	_, err = svc.UpdateUserStatus(ctx, 999, false)
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteUserRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestLogger())
	ctx := context.Background()

	user, _ := seedCustomer(t, db, "a@x.com")
	session := models.Session{Token: "tok", UserID: user.ID}
	require.NoError(t, db.Create(&session).Error)

	require.NoError(t, svc.DeleteUser(ctx, user.ID))

	var userCount, customerCount, sessionCount int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Customer{}).Where("user_id = ?", user.ID).Count(&customerCount).Error)
	require.NoError(t, db.Model(&models.Session{}).Where("user_id = ?", user.ID).Count(&sessionCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, customerCount)
	assert.Zero(t, sessionCount)

	err := svc.DeleteUser(ctx, user.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteUserProtectsAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestLogger())

	admin := seedUser(t, db, models.RoleAdmin, "root@x.com")
	err := svc.DeleteUser(context.Background(), admin.ID)
	requireStatus(t, err, http.StatusForbidden)
}

func TestDashboardAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestLogger())

	_, customer := seedCustomer(t, db, "a@x.com")
	_, approved := seedProvider(t, db, "p@x.com", true)
	seedProvider(t, db, "q@x.com", false)
	seedUser(t, db, models.RoleAdmin, "root@x.com")

	order := seedOrder(t, db, customer.ID, approved.ID, models.StatusDelivered)
	require.NoError(t, db.Model(order).Update("total_amount", 25.50).Error)
	cancelled := seedOrder(t, db, customer.ID, approved.ID, models.StatusCancelled)
	require.NoError(t, db.Model(cancelled).Update("total_amount", 10.00).Error)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Users.Total)
	assert.Equal(t, int64(1), stats.Users.Customers)
	assert.Equal(t, int64(2), stats.Users.Providers)
	assert.Equal(t, int64(2), stats.Providers.Total)
	assert.Equal(t, int64(1), stats.Providers.Approved)
	assert.Equal(t, int64(1), stats.Providers.Pending)
	assert.Equal(t, int64(2), stats.Orders.Total)
	// Revenue sums every order regardless of status
	assert.Equal(t, 35.50, stats.Orders.TotalRevenue)
}
