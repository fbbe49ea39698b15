package ports

import "tourcatalog/internal/core/domain/model/kernel"

// SessionProvider resolves the current user identity from the locally
// persisted session record. Session issuance is out of scope; the record is
// assumed to already exist when a user is signed in.
type SessionProvider interface {
	// CurrentUser returns the signed-in user's identifier.
	// Returns AuthRequiredError when no session record is resolvable; the
	// absence of a record is an expected condition, not a crash.
	CurrentUser() (kernel.ID, error)
}
