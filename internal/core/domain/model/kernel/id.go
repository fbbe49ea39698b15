package kernel

import (
	"strings"

	"tourcatalog/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not created through NewID.
// It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object for the opaque string identifiers assigned by the
// backend store. The backend owns identifier generation; the core never
// inspects the contents beyond requiring it to be non-blank.
//
// The zero value of ID is invalid and must be constructed via NewID.
// ID is immutable and safe for concurrent use.
type ID struct {
	value string
}

// NewID creates an ID from the backend-assigned identifier string.
// Returns an error if the string is blank after trimming whitespace.
func NewID(value string) (ID, error) {
	if strings.TrimSpace(value) == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: value}, nil
}

// String returns the raw identifier string.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks that the ID was properly constructed.
// Returns ErrIDIsNotConstructed for zero-value identifiers.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
