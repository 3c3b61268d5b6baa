package services

import (
	"io"
)

// FileStore abstracts the attachment file layout: staged uploads live in a
// temporary area and move to permanent storage when the attachment row is
// confirmed. Paths are relative date-bucketed paths ("20250131/name.pdf").
type FileStore interface {
	// Stage writes an uploaded file into the temporary area and returns its
	// relative path.
	Stage(originalName string, src io.Reader) (string, error)
	// Promote moves a staged file into permanent storage. A missing staged
	// file is not an error; the move is simply skipped.
	Promote(relPath string) error
	// Remove deletes a file from permanent storage.
	Remove(relPath string) error
}
