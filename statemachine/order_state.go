package statemachine

import "foodhub-api/models"

// validStatuses is the authoritative set of order lifecycle states
var validStatuses = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
	models.StatusPreparing: true,
	models.StatusReady:     true,
	models.StatusDelivered: true,
	models.StatusCancelled: true,
}

// terminalStatuses admit no further transitions
var terminalStatuses = map[models.OrderStatus]bool{
	models.StatusDelivered: true,
	models.StatusCancelled: true,
}

// cancellableStatuses are the only states a customer may cancel from
var cancellableStatuses = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
}

// IsValid reports whether s is a known order status
func IsValid(s models.OrderStatus) bool {
	return validStatuses[s]
}

// IsTerminal reports whether s admits no further status updates.
// Providers may otherwise move an order between any non-terminal states,
// including backwards; only terminal states are locked.
func IsTerminal(s models.OrderStatus) bool {
	return terminalStatuses[s]
}

// CanCancel reports whether a customer may cancel an order in state s
func CanCancel(s models.OrderStatus) bool {
	return cancellableStatuses[s]
}

// AllStatuses returns every known status, in lifecycle order
func AllStatuses() []models.OrderStatus {
	return []models.OrderStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusDelivered,
		models.StatusCancelled,
	}
}
