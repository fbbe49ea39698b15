package order

import (
	"errors"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a purchase of a tour package by a user.
//
// Order follows these invariants:
//   - The identifier is assigned by the backend: drafts created via NewOrder
//     carry no id until the backend response is restored
//   - Must reference a valid user and a valid package
//   - Carries a snapshot of the package name at purchase time, not a live
//     reference, so later catalog edits never alter historical orders
//   - Payment status follows the Pending -> Paid machine; an order is
//     immutable once created from the core's perspective
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the backend-assigned identifier; zero on unsubmitted drafts
	id kernel.ID

	// userID is the purchasing user's identity
	userID kernel.ID

	// packageID references the purchased tour package
	packageID kernel.ID

	// packageName is the denormalized name snapshot at purchase time
	packageName string

	// status is the payment state
	status PaymentStatus

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a draft order for submission to the backend.
// The draft starts in Pending status and has no identifier yet.
func NewOrder(userID kernel.ID, packageID kernel.ID, packageName string) (*Order, error) {
	ord := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setUserID(userID),
		ord.setPackageID(packageID),
		ord.setPackageName(packageName),
	); err != nil {
		return nil, err
	}

	return ord, nil
}

// RestoreOrder reconstructs an order from backend data, including the
// backend-assigned identifier and persisted payment status.
func RestoreOrder(
	id kernel.ID,
	userID kernel.ID,
	packageID kernel.ID,
	packageName string,
	status PaymentStatus,
) (*Order, error) {
	ord, err := NewOrder(userID, packageID, packageName)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	ord.id = id
	ord.status = status
	return ord, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their backend-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the backend-assigned identifier. Zero for unsubmitted drafts.
func (o *Order) ID() kernel.ID {
	return o.id
}

// UserID returns the purchasing user's identifier.
func (o *Order) UserID() kernel.ID {
	return o.userID
}

// PackageID returns the purchased package's identifier.
func (o *Order) PackageID() kernel.ID {
	return o.packageID
}

// PackageName returns the package name snapshot taken at purchase time.
func (o *Order) PackageName() string {
	return o.packageName
}

// Status returns the current payment status.
func (o *Order) Status() PaymentStatus {
	return o.status
}

// IsPaid reports whether the payment completed. Derived indicator for
// presentation.
func (o *Order) IsPaid() bool {
	return o.status.IsPaid()
}

// MarkPaid transitions the order from Pending to Paid.
//
// No external authorization is modeled: any draft that passed local payment
// validation is marked paid before submission.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setPackageID(packageID kernel.ID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	o.packageID = packageID
	return nil
}

func (o *Order) setPackageName(packageName string) error {
	if packageName == "" {
		return errs.NewValueIsRequiredError("packageName")
	}
	o.packageName = packageName
	return nil
}
