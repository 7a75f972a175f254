// Package files defines the drive file repository contract and its
// simulated in-memory implementation.
package files

import (
	"context"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
)

// Repository is the asynchronous store of file and folder records the drive
// core runs against. All operations honor context cancellation and may fail
// with a generic repository error; only GetByID is guaranteed idempotent.
//
// A mutation's effects must be visible to the very next listing call that
// follows it (read-after-write against the backing store).
type Repository interface {
	// ListChildren returns the direct children of parentID.
	ListChildren(ctx context.Context, parentID string) ([]models.FileRecord, error)

	// SearchByName returns every record whose name contains query,
	// case-insensitively, across the entire record space.
	SearchByName(ctx context.Context, query string) ([]models.FileRecord, error)

	// GetByID returns a single record, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.FileRecord, error)

	// CreateFolder creates a folder named name under parentID.
	CreateFolder(ctx context.Context, name string, parentID string) (*models.FileRecord, error)

	// UploadBytes stores a new file under parentID, reporting progress in
	// percent (0..100) through onProgress when it is non-nil.
	UploadBytes(ctx context.Context, meta models.UploadInput, parentID string, onProgress func(percent int)) (*models.FileRecord, error)

	// Rename changes a record's display name. Name is the only field touched.
	Rename(ctx context.Context, id string, newName string) error

	// Delete removes a record.
	Delete(ctx context.Context, id string) error

	// ToggleStar flips a record's starred flag.
	ToggleStar(ctx context.Context, id string) error

	// IssueShareLink returns a shareable URL for the record.
	IssueShareLink(ctx context.Context, id string) (string, error)
}
