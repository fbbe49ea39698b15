package ports

import (
	"context"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/order"
)

// OrderGateway defines the remote boundary for order operations against the
// backend store.
type OrderGateway interface {
	// CreateOrder persists a draft and returns the created order with its
	// backend-assigned identifier.
	CreateOrder(ctx context.Context, draft *order.Order) (*order.Order, error)

	// GetOrdersForUser fetches the orders of one user in backend order.
	GetOrdersForUser(ctx context.Context, userID kernel.ID) ([]*order.Order, error)
}
