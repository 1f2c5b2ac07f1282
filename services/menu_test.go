package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuRequiresApprovedProvider(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())
	ctx := context.Background()

	user, _ := seedProvider(t, db, "p@x.com", false)
	_, err := svc.Create(ctx, user.ID, CreateMenuInput{
		Name: "Burger", Price: 10, Category: "mains",
	})
	requireStatus(t, err, http.StatusForbidden)

	approvedUser, _ := seedProvider(t, db, "q@x.com", true)
	menu, err := svc.Create(ctx, approvedUser.ID, CreateMenuInput{
		Name: "Burger", Price: 10, Category: "mains",
	})
	require.NoError(t, err)
	assert.True(t, menu.IsAvailable)
	assert.Equal(t, 10.0, menu.Price)
}

func TestCreateMenuWithoutProviderProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())

	user, _ := seedCustomer(t, db, "a@x.com")
	_, err := svc.Create(context.Background(), user.ID, CreateMenuInput{
		Name: "Burger", Price: 10, Category: "mains",
	})
	requireStatus(t, err, http.StatusNotFound)
}

func TestUpdateMenuOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())
	ctx := context.Background()

	ownerUser, provider := seedProvider(t, db, "p@x.com", true)
	otherUser, _ := seedProvider(t, db, "q@x.com", true)
	menu := seedMenu(t, db, provider.ID, "Burger", 10)

	newPrice := 12.5
	_, err := svc.Update(ctx, otherUser.ID, menu.ID, UpdateMenuInput{Price: &newPrice})
	requireStatus(t, err, http.StatusForbidden)

	updated, err := svc.Update(ctx, ownerUser.ID, menu.ID, UpdateMenuInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 12.5, updated.Price)

	_, err = svc.Update(ctx, ownerUser.ID, 999, UpdateMenuInput{Price: &newPrice})
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteMenuOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())
	ctx := context.Background()

	ownerUser, provider := seedProvider(t, db, "p@x.com", true)
	otherUser, _ := seedProvider(t, db, "q@x.com", true)
	menu := seedMenu(t, db, provider.ID, "Burger", 10)

	err := svc.Delete(ctx, otherUser.ID, menu.ID)
	requireStatus(t, err, http.StatusForbidden)

	require.NoError(t, svc.Delete(ctx, ownerUser.ID, menu.ID))

	err = svc.Delete(ctx, ownerUser.ID, menu.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestListAllHidesUnapprovedProviders(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())
	ctx := context.Background()

	_, approved := seedProvider(t, db, "p@x.com", true)
	_, pending := seedProvider(t, db, "q@x.com", false)
	seedMenu(t, db, approved.ID, "Burger", 10)
	seedMenu(t, db, approved.ID, "Fries", 5)
	seedMenu(t, db, pending.ID, "Hidden Pizza", 12)

	menus, err := svc.ListAll(ctx, MenuFilters{})
	require.NoError(t, err)
	require.Len(t, menus, 2)
	for _, m := range menus {
		assert.Equal(t, approved.ID, m.ProviderID)
	}

	// The filter is a query predicate, so limits apply after it
	limited, err := svc.ListAll(ctx, MenuFilters{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, approved.ID, limited[0].ProviderID)
}

func TestListAllCategoryAndAvailabilityFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())
	ctx := context.Background()

	_, provider := seedProvider(t, db, "p@x.com", true)
	seedMenu(t, db, provider.ID, "Burger", 10)
	drink := seedMenu(t, db, provider.ID, "Cola", 3)
	require.NoError(t, db.Model(drink).Updates(map[string]any{
		"category": "drinks", "is_available": false,
	}).Error)

	mains, err := svc.ListAll(ctx, MenuFilters{Category: "mains"})
	require.NoError(t, err)
	require.Len(t, mains, 1)
	assert.Equal(t, "Burger", mains[0].Name)

	unavailable := false
	hidden, err := svc.ListAll(ctx, MenuFilters{IsAvailable: &unavailable})
	require.NoError(t, err)
	require.Len(t, hidden, 1)
	assert.Equal(t, "Cola", hidden[0].Name)
}

func TestListMineReturnsOwnCatalogue(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())
	ctx := context.Background()

	user, provider := seedProvider(t, db, "p@x.com", true)
	_, other := seedProvider(t, db, "q@x.com", true)
	seedMenu(t, db, provider.ID, "Burger", 10)
	seedMenu(t, db, other.ID, "Pizza", 12)

	menus, err := svc.ListMine(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Burger", menus[0].Name)
}

func TestGetMenuByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db, newTestLogger())
	ctx := context.Background()

	_, provider := seedProvider(t, db, "p@x.com", true)
	menu := seedMenu(t, db, provider.ID, "Burger", 10)

	got, err := svc.GetByID(ctx, menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger", got.Name)
	require.NotNil(t, got.Provider)

	_, err = svc.GetByID(ctx, 999)
	requireStatus(t, err, http.StatusNotFound)
}
