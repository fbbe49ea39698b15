package commands

import (
	"errors"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand represents an admin request to remove a catalog entry.
// Deletion is the only way a package leaves the catalog.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeletePackageCommand creates a command to remove the identified package.
func NewDeletePackageCommand(packageID kernel.ID) (DeletePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return DeletePackageCommand{}, err
	}

	return DeletePackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to remove.
func (c DeletePackageCommand) PackageID() kernel.ID {
	return c.packageID
}
