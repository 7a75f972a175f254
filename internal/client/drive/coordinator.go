package drive

import (
	"context"
	"fmt"
	"strings"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/client/repositories/files"
	"github.com/RANGASWAMY-MK/my-space/internal/common"
	"github.com/RANGASWAMY-MK/my-space/internal/logging"
)

// Coordinator serializes user-triggered mutations against the repository.
// Every mutation follows the same shape: repository call, then on success a
// listing refresh plus a success notification, on failure an error
// notification with state left unchanged. Name validation happens locally,
// before any repository round trip.
type Coordinator struct {
	repo     files.Repository
	uploads  *UploadTracker
	notifier *Notifier
	refresh  func(ctx context.Context)
	log      logging.Logger
}

// NewCoordinator wires a coordinator to its collaborators. refresh is
// invoked after every successful mutation (and once per upload batch).
func NewCoordinator(repo files.Repository, uploads *UploadTracker, notifier *Notifier, refresh func(ctx context.Context), log logging.Logger) *Coordinator {
	return &Coordinator{repo: repo, uploads: uploads, notifier: notifier, refresh: refresh, log: log}
}

// Rename changes a record's name. Empty or whitespace-only names are
// rejected with common.ErrValidation without contacting the repository.
func (c *Coordinator) Rename(ctx context.Context, id string, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: name must not be empty", common.ErrValidation)
	}

	if err := c.repo.Rename(ctx, id, newName); err != nil {
		c.log.Error(ctx, "rename failed", "id", id, "error", err)
		c.notifier.Error("Failed to rename file")
		return fmt.Errorf("rename: %w", err)
	}

	c.refresh(ctx)
	c.notifier.Success("File renamed successfully")
	return nil
}

// Delete removes a record.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.log.Error(ctx, "delete failed", "id", id, "error", err)
		c.notifier.Error("Failed to delete file")
		return fmt.Errorf("delete: %w", err)
	}

	c.refresh(ctx)
	c.notifier.Success("File deleted successfully")
	return nil
}

// ToggleStar flips a record's starred flag. wasStarred is the flag's value
// before the toggle and only drives the notification wording.
func (c *Coordinator) ToggleStar(ctx context.Context, id string, wasStarred bool) error {
	if err := c.repo.ToggleStar(ctx, id); err != nil {
		c.log.Error(ctx, "star toggle failed", "id", id, "error", err)
		c.notifier.Error("Failed to update starred")
		return fmt.Errorf("toggle star: %w", err)
	}

	c.refresh(ctx)
	if wasStarred {
		c.notifier.Success("Removed from starred")
	} else {
		c.notifier.Success("Added to starred")
	}
	return nil
}

// CreateFolder creates a folder under parentID. Empty or whitespace-only
// names are rejected locally.
func (c *Coordinator) CreateFolder(ctx context.Context, name string, parentID string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: folder name must not be empty", common.ErrValidation)
	}

	if _, err := c.repo.CreateFolder(ctx, name, parentID); err != nil {
		c.log.Error(ctx, "folder creation failed", "name", name, "error", err)
		c.notifier.Error("Failed to create folder")
		return fmt.Errorf("create folder: %w", err)
	}

	c.refresh(ctx)
	c.notifier.Success("Folder created successfully")
	return nil
}

// ShareLink asks the repository for a shareable URL.
func (c *Coordinator) ShareLink(ctx context.Context, id string) (string, error) {
	url, err := c.repo.IssueShareLink(ctx, id)
	if err != nil {
		c.log.Error(ctx, "share link failed", "id", id, "error", err)
		c.notifier.Error("Failed to create share link")
		return "", fmt.Errorf("share link: %w", err)
	}
	return url, nil
}

// Download only simulates a transfer: it acknowledges the intent with a
// notification, matching the demo backend.
func (c *Coordinator) Download(name string) {
	c.notifier.Success(fmt.Sprintf("Downloading %s...", name))
}

// UploadMany uploads the given files into parentID, strictly one after the
// other. Every input gets a pending task up front; each then runs
// pending -> uploading -> complete|error, with repository progress callbacks
// updating the task by its stable id. A failed item stays isolated in its
// task status and does not abort the batch. After the whole batch one
// listing refresh and one aggregate success notification are issued,
// regardless of individual failures.
func (c *Coordinator) UploadMany(ctx context.Context, inputs []models.UploadInput, parentID string) {
	if len(inputs) == 0 {
		return
	}

	taskIDs := make([]string, len(inputs))
	for i, in := range inputs {
		taskIDs[i] = c.uploads.Add(in.Name)
	}

	for i, in := range inputs {
		id := taskIDs[i]
		c.uploads.Start(id)

		_, err := c.repo.UploadBytes(ctx, in, parentID, func(percent int) {
			c.uploads.SetProgress(id, percent)
		})
		if err != nil {
			c.log.Warn(ctx, "upload item failed", "file", in.Name, "error", err)
			c.uploads.Fail(id)
			continue
		}
		c.uploads.Complete(id)
	}

	c.refresh(ctx)
	c.notifier.Success("Files uploaded successfully")
}
