package queries

import (
	"context"

	"tourcatalog/internal/core/ports"
)

// GetUserOrdersQueryHandler fetches the order history of the signed-in user.
//
// Returns AuthRequiredError when no session record is resolvable and
// RemoteCallFailedError on transport failure.
type GetUserOrdersQueryHandler struct {
	sessions ports.SessionProvider
	orders   ports.OrderGateway
}

// NewGetUserOrdersQueryHandler creates a handler for order history reads.
func NewGetUserOrdersQueryHandler(
	sessions ports.SessionProvider,
	orders ports.OrderGateway,
) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{
		sessions: sessions,
		orders:   orders,
	}
}

// Handle resolves the user identity and fetches the orders in backend order.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	userID, err := h.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}

	userOrders, err := h.orders.GetOrdersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]GetUserOrdersQueryResponse, len(userOrders))
	for i, ord := range userOrders {
		response[i] = GetUserOrdersQueryResponse{
			ID:            ord.ID(),
			PackageID:     ord.PackageID(),
			PackageName:   ord.PackageName(),
			PaymentStatus: ord.Status().String(),
			Paid:          ord.IsPaid(),
		}
	}
	return response, nil
}
