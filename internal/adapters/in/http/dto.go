package http

import "github.com/shopspring/decimal"

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PackageResponse is one catalog row.
type PackageResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpdatePackageRequest carries a partial edit; absent fields stay untouched.
type UpdatePackageRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// PurchaseRequest carries the package choice and the payment fields of one
// purchase attempt. The fields are validated by the purchase workflow, never
// stored, and never forwarded to a payment processor.
type PurchaseRequest struct {
	PackageID  string `json:"packageId"`
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// OrderResponse is one order row of the user's history.
type OrderResponse struct {
	ID            string `json:"id"`
	PackageID     string `json:"packageId"`
	Name          string `json:"name"`
	PaymentStatus string `json:"paymentStatus"`
	Paid          bool   `json:"paid"`
}
