// Package backendapi implements the JSON-over-HTTP gateways to the catalog
// and order backend. This package handles the conversion between domain
// entities and the wire documents of the REST surface.
package backendapi

import (
	"github.com/shopspring/decimal"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/order"
	"tourcatalog/internal/core/domain/model/tour"
)

// packageDTO is the wire document of a catalog entry. The backend exposes
// identifiers under "_id".
type packageDTO struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// toDomain converts a wire document to a validated catalog entity.
func (d packageDTO) toDomain() (*tour.Package, error) {
	id, err := kernel.NewID(d.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(d.Price)
	if err != nil {
		return nil, err
	}

	return tour.NewPackage(id, d.Name, d.Description, price)
}

// packageUpdateDTO carries a partial edit. Absent fields are omitted from the
// request body entirely so the backend leaves them untouched.
type packageUpdateDTO struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// fromDomainUpdate converts a partial update to its wire form.
func fromDomainUpdate(update tour.Update) packageUpdateDTO {
	dto := packageUpdateDTO{
		Name:        update.Name,
		Description: update.Description,
	}
	if update.Price != nil {
		amount := update.Price.Amount()
		dto.Price = &amount
	}
	return dto
}

// orderDTO is the wire document of a persisted order.
type orderDTO struct {
	ID            string `json:"_id"`
	UserID        string `json:"userId"`
	PackageID     string `json:"package"`
	Name          string `json:"name"`
	PaymentStatus string `json:"paymentStatus"`
}

// toDomain reconstructs an order entity from backend data.
func (d orderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.NewID(d.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(d.UserID)
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.NewID(d.PackageID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParsePaymentStatus(d.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, packageID, d.Name, status)
}

// createOrderDTO is the request body for order creation.
type createOrderDTO struct {
	UserID        string `json:"userId"`
	Package       string `json:"package"`
	PaymentStatus string `json:"paymentStatus"`
	Name          string `json:"name"`
}

// fromDomainDraft converts an order draft to the creation request body.
func fromDomainDraft(draft *order.Order) createOrderDTO {
	return createOrderDTO{
		UserID:        draft.UserID().String(),
		Package:       draft.PackageID().String(),
		PaymentStatus: draft.Status().String(),
		Name:          draft.PackageName(),
	}
}
