package ports

import (
	"context"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/tour"
)

// PackageGateway defines the remote boundary for catalog operations against
// the backend store. All calls are JSON over HTTP; failures surface as
// RemoteCallFailedError, a missing target as ObjectNotFoundError.
type PackageGateway interface {
	// LoadPackages fetches the full package set in backend order.
	// There is no pagination; every call returns the complete catalog.
	LoadPackages(ctx context.Context) ([]*tour.Package, error)

	// UpdatePackage sends a partial update for the identified package.
	// Fields absent from the update are left untouched remotely.
	UpdatePackage(ctx context.Context, id kernel.ID, update tour.Update) error

	// DeletePackage removes the identified package from the backend.
	DeletePackage(ctx context.Context, id kernel.ID) error
}
