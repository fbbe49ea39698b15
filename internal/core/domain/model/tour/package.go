package tour

import (
	"errors"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through the NewPackage factory method.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package represents a tour package in the catalog. It is owned by the backend
// store; the core holds a read/write cache copy per active view.
//
// Package follows these invariants:
//   - Must have a valid backend-assigned identifier
//   - Must have a non-empty name
//   - Price is always a non-negative amount
//   - Can only be created through NewPackage
//
// Instances are treated as immutable once constructed: catalog mutations
// produce fresh copies via Apply rather than editing entries in place, so
// concurrent readers of a catalog snapshot stay consistent.
type Package struct {
	id          kernel.ID
	name        string
	description string
	price       kernel.Price

	isConstructed bool
}

// NewPackage creates a Package with validation. This is the only way to obtain
// a valid Package, whether from user input or from backend data.
func NewPackage(id kernel.ID, name string, description string, price kernel.Price) (*Package, error) {
	pkg := &Package{
		description:   description,
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setName(name),
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Validate ensures the Package was properly constructed through NewPackage.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by their identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the backend-assigned identifier.
func (p *Package) ID() kernel.ID {
	return p.id
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Description returns the package description. May be empty.
func (p *Package) Description() string {
	return p.description
}

// Price returns the package price.
func (p *Package) Price() kernel.Price {
	return p.price
}

// Apply returns a new Package with the set fields of the update merged in.
// Fields not carried by the update keep their current values; the receiver is
// never modified. The merge is field-level, not whole-record replacement.
func (p *Package) Apply(update Update) *Package {
	merged := *p
	if update.Name != nil {
		merged.name = *update.Name
	}
	if update.Description != nil {
		merged.description = *update.Description
	}
	if update.Price != nil {
		merged.price = *update.Price
	}
	return &merged
}

func (p *Package) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
