package commands

import (
	"errors"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/pkg/guard"
)

var ErrPurchasePackageCommandIsNotConstructed = errors.New(
	"PurchasePackageCommand must be created via NewPurchasePackageCommand constructor",
)

// PurchasePackageCommand represents a user's request to buy a tour package.
//
// The payment fields are carried as entered; rule checking happens inside the
// purchase workflow so validation failures surface with the exact
// user-visible message of the first failing rule.
type PurchasePackageCommand struct { //nolint:recvcheck //using for validation
	packageID  kernel.ID
	cardNumber string
	cardHolder string
	expiryDate string
	cvv        string

	guard guard.ConstructorGuard
}

// NewPurchasePackageCommand creates a command to purchase the identified
// package with the given payment fields.
func NewPurchasePackageCommand(
	packageID kernel.ID,
	cardNumber string,
	cardHolder string,
	expiryDate string,
	cvv string,
) (PurchasePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return PurchasePackageCommand{}, err
	}

	return PurchasePackageCommand{
		packageID:  packageID,
		cardNumber: cardNumber,
		cardHolder: cardHolder,
		expiryDate: expiryDate,
		cvv:        cvv,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurchasePackageCommand) Validate() error {
	return c.guard.Validate(ErrPurchasePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to purchase.
func (c PurchasePackageCommand) PackageID() kernel.ID {
	return c.packageID
}

// CardNumber returns the card number as entered.
func (c PurchasePackageCommand) CardNumber() string {
	return c.cardNumber
}

// CardHolder returns the card holder name as entered.
func (c PurchasePackageCommand) CardHolder() string {
	return c.cardHolder
}

// ExpiryDate returns the expiry date as entered.
func (c PurchasePackageCommand) ExpiryDate() string {
	return c.expiryDate
}

// CVV returns the CVV as entered.
func (c PurchasePackageCommand) CVV() string {
	return c.cvv
}
