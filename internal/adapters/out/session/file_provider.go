// Package session implements the SessionProvider port on a locally persisted
// JSON session record, the server-side analog of the browser's stored user
// info.
package session

import (
	"encoding/json"
	"os"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/pkg/errs"
)

// sessionRecord is the persisted session document. Only the identifier is
// consumed; any other fields in the record are ignored.
type sessionRecord struct {
	ID string `json:"_id"`
}

// FileProvider reads the user identity from a session file.
//
// The record's absence, an unreadable document, or a blank identifier all
// resolve to AuthRequiredError; a missing session is an expected condition.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading the session record at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// CurrentUser returns the signed-in user's identifier.
func (p *FileProvider) CurrentUser() (kernel.ID, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return kernel.ID{}, errs.NewAuthRequiredErrorWithCause(err)
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return kernel.ID{}, errs.NewAuthRequiredErrorWithCause(err)
	}

	userID, err := kernel.NewID(record.ID)
	if err != nil {
		return kernel.ID{}, errs.NewAuthRequiredErrorWithCause(err)
	}
	return userID, nil
}
