package queries

import (
	"errors"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves the orders of the signed-in user.
// The user identity comes from the session record, not from the query.
type GetUserOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a parameterless query for the current user's
// orders.
func NewGetUserOrdersQuery() GetUserOrdersQuery {
	return GetUserOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// GetUserOrdersQueryResponse is one order row of the user's history.
// Paid is the derived presentation indicator for the payment status.
type GetUserOrdersQueryResponse struct {
	ID            kernel.ID
	PackageID     kernel.ID
	PackageName   string
	PaymentStatus string
	Paid          bool
}
