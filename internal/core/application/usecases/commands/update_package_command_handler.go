package commands

import (
	"context"

	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/ports"
)

// UpdatePackageCommandHandler applies an admin edit remote-then-local:
// the partial update is sent to the backend first, and only after the backend
// accepted it are the same fields merged into the cached entry. A remote
// failure therefore leaves the local view unchanged.
type UpdatePackageCommandHandler struct {
	gateway ports.PackageGateway
	catalog *store.CatalogStore
}

// NewUpdatePackageCommandHandler creates a handler for package edits.
func NewUpdatePackageCommandHandler(
	gateway ports.PackageGateway,
	catalog *store.CatalogStore,
) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		gateway: gateway,
		catalog: catalog,
	}
}

// Handle processes the edit. Propagates ObjectNotFoundError when the backend
// has no such package and RemoteCallFailedError on transport failure; no
// retry is attempted.
func (h *UpdatePackageCommandHandler) Handle(ctx context.Context, cmd UpdatePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gateway.UpdatePackage(ctx, cmd.PackageID(), cmd.Update()); err != nil {
		return err
	}

	h.catalog.ApplyUpdate(cmd.PackageID(), cmd.Update())
	return nil
}
