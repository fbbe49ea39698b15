// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// remote mutation, then optimistic local reconciliation.
package commands

import (
	"errors"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/tour"
	"tourcatalog/internal/pkg/guard"
)

var (
	ErrUpdatePackageCommandIsNotConstructed = errors.New(
		"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
	)
	ErrUpdateHasNoFields = errors.New("update must carry at least one field")
)

// UpdatePackageCommand represents an admin request to edit a catalog entry.
// Only the fields carried by the update are changed; everything else is left
// untouched both remotely and locally.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.ID
	update    tour.Update

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand creates a command to edit the identified package.
// Validates that the id is valid and the update carries at least one field.
func NewUpdatePackageCommand(packageID kernel.ID, update tour.Update) (UpdatePackageCommand, error) {
	cmd := UpdatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setUpdate(update),
	); err != nil {
		return UpdatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to edit.
func (c UpdatePackageCommand) PackageID() kernel.ID {
	return c.packageID
}

// Update returns the partial field set to merge.
func (c UpdatePackageCommand) Update() tour.Update {
	return c.update
}

func (c *UpdatePackageCommand) setPackageID(packageID kernel.ID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *UpdatePackageCommand) setUpdate(update tour.Update) error {
	if update.IsEmpty() {
		return ErrUpdateHasNoFields
	}
	c.update = update
	return nil
}
