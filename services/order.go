package services

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"foodhub-api/apperr"
	"foodhub-api/models"
	"foodhub-api/statemachine"
)

// OrderService owns the order lifecycle: creation with price snapshots,
// role-scoped reads, provider status transitions and customer
// cancellation. Validate-then-write sequences run inside one transaction
// so a menu deleted mid-checkout cannot slip into an order.
type OrderService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewOrderService(db *gorm.DB, log zerolog.Logger) *OrderService {
	return &OrderService{db: db, log: log}
}

func (s *OrderService) customerForUser(ctx context.Context, userID uint) (*models.Customer, error) {
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

type OrderItemInput struct {
	MenuID   uint `json:"menu_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	ProviderID      uint             `json:"provider_id" binding:"required"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string           `json:"delivery_address" binding:"required,min=5"`
	SpecialNotes    string           `json:"special_notes"`
}

// Create places an order. Every referenced menu must belong to the
// provider and be available; the fetched set matching the requested ids
// by count is the whole check; there is no per-item error detail. Line
// prices are snapshotted from the current menu price and never
// recomputed.
func (s *OrderService) Create(ctx context.Context, userID uint, in CreateOrderInput) (*models.Order, error) {
	customer, err := s.customerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var provider models.Provider
		if err := tx.First(&provider, in.ProviderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Provider not found")
			}
			return pkgerrors.Wrap(err, "lookup provider")
		}
		if !provider.IsApproved {
			return apperr.Forbidden("This provider is not yet approved")
		}

		menuIDs := make([]uint, 0, len(in.Items))
		for _, item := range in.Items {
			menuIDs = append(menuIDs, item.MenuID)
		}

		var menus []models.Menu
		if err := tx.Where("id IN ? AND provider_id = ? AND is_available = ?",
			menuIDs, in.ProviderID, true).Find(&menus).Error; err != nil {
			return pkgerrors.Wrap(err, "lookup menus")
		}
		if len(menus) != len(in.Items) {
			return apperr.InvalidRequest("Some menu items are not available")
		}

		menuByID := make(map[uint]models.Menu, len(menus))
		for _, m := range menus {
			menuByID[m.ID] = m
		}

		var total float64
		items := make([]models.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			menu := menuByID[item.MenuID]
			total += menu.Price * float64(item.Quantity)
			items = append(items, models.OrderItem{
				MenuID:   menu.ID,
				Quantity: item.Quantity,
				Price:    menu.Price,
			})
		}

		order = models.Order{
			CustomerID:      customer.ID,
			ProviderID:      provider.ID,
			Status:          models.StatusPending,
			TotalAmount:     total,
			DeliveryAddress: in.DeliveryAddress,
			SpecialNotes:    in.SpecialNotes,
			Items:           items,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("order_id", order.ID).Uint("customer_id", customer.ID).
		Float64("total", order.TotalAmount).Msg("order placed")

	return s.loadGraph(ctx, order.ID)
}

func (s *OrderService) loadGraph(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items.Menu").
		Preload("Provider.User").
		Preload("Customer.User").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found")
		}
		return nil, pkgerrors.Wrap(err, "load order")
	}
	return &order, nil
}

// GetByID returns the full order graph. Only an admin, the owning
// customer or the owning provider may view it.
func (s *OrderService) GetByID(ctx context.Context, ident Identity, orderID uint) (*models.Order, error) {
	order, err := s.loadGraph(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := ident.Role == models.RoleAdmin ||
		(order.Customer != nil && order.Customer.UserID == ident.UserID) ||
		(order.Provider != nil && order.Provider.UserID == ident.UserID)
	if !allowed {
		return nil, apperr.Forbidden("You do not have permission to view this order")
	}
	return order, nil
}

// ListMine lists the caller's orders: own purchases for customers, seller
// orders (optionally filtered by status) for providers.
func (s *OrderService) ListMine(ctx context.Context, ident Identity, status string) ([]models.Order, error) {
	var orders []models.Order

	switch ident.Role {
	case models.RoleCustomer:
		customer, err := s.customerForUser(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		err = s.db.WithContext(ctx).
			Preload("Items.Menu").Preload("Provider").
			Where("customer_id = ?", customer.ID).
			Order("created_at desc").Find(&orders).Error
		if err != nil {
			return nil, pkgerrors.Wrap(err, "list customer orders")
		}

	case models.RoleProvider:
		var provider models.Provider
		err := s.db.WithContext(ctx).Where("user_id = ?", ident.UserID).First(&provider).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Provider profile not found")
			}
			return nil, pkgerrors.Wrap(err, "lookup provider")
		}
		q := s.db.WithContext(ctx).
			Preload("Items.Menu").Preload("Customer.User").
			Where("provider_id = ?", provider.ID)
		if status != "" {
			if !statemachine.IsValid(models.OrderStatus(status)) {
				return nil, apperr.InvalidRequest("Invalid order status filter")
			}
			q = q.Where("status = ?", status)
		}
		if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
			return nil, pkgerrors.Wrap(err, "list provider orders")
		}

	default:
		return nil, apperr.InvalidRequest("Invalid role for viewing orders")
	}

	return orders, nil
}

type UpdateOrderStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=PENDING CONFIRMED PREPARING READY DELIVERED CANCELLED"`
}

// UpdateStatus transitions an order. Ownership is checked only when the
// caller's role is PROVIDER; route guards already restrict the endpoint
// to providers, which leaves the non-provider path unreachable in
// practice. Terminal orders reject every update; any non-terminal status
// may otherwise move to any other.
func (s *OrderService) UpdateStatus(ctx context.Context, ident Identity, orderID uint, in UpdateOrderStatusInput) (*models.Order, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Provider").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Order not found")
			}
			return pkgerrors.Wrap(err, "lookup order")
		}

		if ident.Role == models.RoleProvider &&
			(order.Provider == nil || order.Provider.UserID != ident.UserID) {
			return apperr.Forbidden("You can only update your own orders")
		}

		if statemachine.IsTerminal(order.Status) {
			return apperr.InvalidRequest("Cannot update completed or cancelled orders")
		}

		return tx.Model(&order).Update("status", in.Status).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("order_id", orderID).Str("status", string(in.Status)).Msg("order status updated")
	return s.loadGraph(ctx, orderID)
}

// Cancel sets an order to CANCELLED. Only the owning customer may cancel,
// and only from PENDING or CONFIRMED.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	customer, err := s.customerForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Order not found")
			}
			return pkgerrors.Wrap(err, "lookup order")
		}

		if order.CustomerID != customer.ID {
			return apperr.Forbidden("You can only cancel your own orders")
		}
		if !statemachine.CanCancel(order.Status) {
			return apperr.InvalidRequest("Cannot cancel this order")
		}

		return tx.Model(&order).Update("status", models.StatusCancelled).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("order_id", orderID).Msg("order cancelled by customer")
	return s.loadGraph(ctx, orderID)
}
