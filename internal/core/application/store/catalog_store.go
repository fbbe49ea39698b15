// Package store holds the in-memory catalog working set shared by the admin
// and purchase use cases.
package store

import (
	"context"
	"sync"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/tour"
	"tourcatalog/internal/core/ports"
	"tourcatalog/internal/pkg/errs"
)

// CatalogStore caches the current set of packages between backend loads.
//
// Load replaces the cache entirely; there is no incremental merge and no
// caching across reloads. Mutations rebuild the backing slice and replace
// changed entries with fresh copies, so snapshots handed out earlier are
// never edited underneath a reader.
//
// The cache and the backend store may diverge transiently; there is no
// optimistic-lock conflict detection, and the last local write wins.
type CatalogStore struct {
	gateway ports.PackageGateway

	mu       sync.RWMutex
	packages []*tour.Package
}

// NewCatalogStore creates an empty store backed by the given gateway.
func NewCatalogStore(gateway ports.PackageGateway) *CatalogStore {
	return &CatalogStore{gateway: gateway}
}

// Load fetches the full package set and replaces the cache. On failure the
// previous cache is left untouched and the gateway error propagates.
func (s *CatalogStore) Load(ctx context.Context) error {
	packages, err := s.gateway.LoadPackages(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages = packages
	return nil
}

// Packages returns a snapshot of the cache in load order.
func (s *CatalogStore) Packages() []*tour.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*tour.Package, len(s.packages))
	copy(snapshot, s.packages)
	return snapshot
}

// Get returns the cached package with the given id.
// Returns ObjectNotFoundError when the id is not in the working set.
func (s *CatalogStore) Get(id kernel.ID) (*tour.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, pkg := range s.packages {
		if pkg.ID().IsEqual(id) {
			return pkg, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("packageId", id.String())
}

// ApplyUpdate merges the partial update into the matching cache entry,
// replacing it with a fresh copy. Entries without a matching id are left
// untouched; a missing id is tolerated, mirroring the map semantics of the
// optimistic local update.
func (s *CatalogStore) ApplyUpdate(id kernel.ID, update tour.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rebuilt := make([]*tour.Package, len(s.packages))
	for i, pkg := range s.packages {
		if pkg.ID().IsEqual(id) {
			rebuilt[i] = pkg.Apply(update)
		} else {
			rebuilt[i] = pkg
		}
	}
	s.packages = rebuilt
}

// Remove drops the matching cache entry. A missing id is tolerated, mirroring
// the filter semantics of the optimistic local update.
func (s *CatalogStore) Remove(id kernel.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rebuilt := make([]*tour.Package, 0, len(s.packages))
	for _, pkg := range s.packages {
		if !pkg.ID().IsEqual(id) {
			rebuilt = append(rebuilt, pkg)
		}
	}
	s.packages = rebuilt
}
