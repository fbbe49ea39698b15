package commands

import (
	"context"

	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/ports"
)

// DeletePackageCommandHandler removes a catalog entry remote-then-local, so
// the view is never ahead of the server: the cached entry is dropped only
// after the backend confirmed the delete. Deleting an id the backend does not
// know propagates ObjectNotFoundError and mutates nothing.
type DeletePackageCommandHandler struct {
	gateway ports.PackageGateway
	catalog *store.CatalogStore
}

// NewDeletePackageCommandHandler creates a handler for package removal.
func NewDeletePackageCommandHandler(
	gateway ports.PackageGateway,
	catalog *store.CatalogStore,
) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		gateway: gateway,
		catalog: catalog,
	}
}

// Handle processes the removal.
func (h *DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gateway.DeletePackage(ctx, cmd.PackageID()); err != nil {
		return err
	}

	h.catalog.Remove(cmd.PackageID())
	return nil
}
