package tour

import "tourcatalog/internal/core/domain/model/kernel"

// Update carries a partial set of Package fields for an admin edit.
// A nil field means "leave untouched", both remotely and locally.
type Update struct {
	Name        *string
	Description *string
	Price       *kernel.Price
}

// IsEmpty reports whether the update carries no fields at all.
func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil
}
