package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/common"
)

// MakeDir creates a folder inside the currently active folder.
func (a *App) MakeDir(ctx context.Context, name string) error {
	if err := a.dashboard.CreateFolder(ctx, name); errors.Is(err, common.ErrValidation) {
		fmt.Fprintln(a.out, "Folder name must not be empty")
		return nil
	}
	a.printNotification()
	return nil
}

// Upload simulates uploading the named files into the active folder. The
// whole batch runs sequentially; per-file outcomes land in the uploads
// panel.
func (a *App) Upload(ctx context.Context, names []string) error {
	inputs := make([]models.UploadInput, 0, len(names))
	for _, name := range names {
		inputs = append(inputs, models.UploadInput{
			Name:      name,
			MimeType:  mimeTypeForName(name),
			SizeBytes: int64(len(name)) * 1024,
		})
	}
	a.dashboard.Upload(ctx, inputs)
	a.Uploads()
	a.printNotification()
	return nil
}

// mimeTypeForName guesses a mime type from the file extension, enough for
// kind classification.
func mimeTypeForName(name string) string {
	switch {
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(name, ".mp4"):
		return "video/mp4"
	case strings.HasSuffix(name, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(name, ".xlsx"):
		return "application/vnd.google-apps.spreadsheet"
	case strings.HasSuffix(name, ".docx"):
		return "application/vnd.google-apps.document"
	case strings.HasSuffix(name, ".pptx"):
		return "application/vnd.google-apps.presentation"
	default:
		return "application/octet-stream"
	}
}

// Uploads prints the upload task panel.
func (a *App) Uploads() error {
	tasks := a.dashboard.Uploads()
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No uploads")
		return nil
	}
	for _, task := range tasks {
		fmt.Fprintf(a.out, "%-30s %3d%% %s\n", task.FileName, task.Progress, task.Status)
	}
	return nil
}

// Rename renames the entry at the given listing position.
func (a *App) Rename(ctx context.Context, arg string, newName string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if err := a.dashboard.Rename(ctx, rec.ID, newName); errors.Is(err, common.ErrValidation) {
		fmt.Fprintln(a.out, "New name must not be empty")
		return nil
	}
	a.printNotification()
	a.renderListing()
	return nil
}

// Remove deletes the entry at the given listing position.
func (a *App) Remove(ctx context.Context, arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	_ = a.dashboard.Delete(ctx, rec.ID)
	a.printNotification()
	a.renderListing()
	return nil
}

// Star toggles the star on the entry at the given listing position.
func (a *App) Star(ctx context.Context, arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	_ = a.dashboard.ToggleStar(ctx, rec)
	a.printNotification()
	return nil
}

// Share prints a share link for the entry at the given listing position.
func (a *App) Share(ctx context.Context, arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	link, err := a.dashboard.ShareLink(ctx, rec.ID)
	if err != nil {
		a.printNotification()
		return nil
	}
	fmt.Fprintln(a.out, link)
	return nil
}

// Download simulates downloading the entry at the given listing position.
func (a *App) Download(ctx context.Context, arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	a.dashboard.Download(rec.Name)
	a.printNotification()
	return nil
}

// Preview prints the details of the entry at the given listing position.
func (a *App) Preview(ctx context.Context, arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	now := time.Now()
	fmt.Fprintf(a.out, "%s %s\n", rec.Kind.Icon(), rec.Name)
	fmt.Fprintf(a.out, "Type: %s\n", rec.MimeType)
	fmt.Fprintf(a.out, "Size: %s\n", models.FormatSize(rec.SizeBytes))
	fmt.Fprintf(a.out, "Modified: %s\n", models.FormatModified(rec.ModifiedAt, now))
	if rec.Starred {
		fmt.Fprintln(a.out, "Starred")
	}
	if rec.Shared {
		fmt.Fprintln(a.out, "Shared")
	}
	return nil
}

// Select marks the entry at the given listing position.
func (a *App) Select(arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	a.dashboard.Select(rec.ID)
	return nil
}

// Deselect unmarks the entry at the given listing position.
func (a *App) Deselect(arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	a.dashboard.Deselect(rec.ID)
	return nil
}

// SelectAll selects every visible entry.
func (a *App) SelectAll() error {
	a.dashboard.SelectAll()
	fmt.Fprintf(a.out, "%d selected\n", len(a.dashboard.SelectedIDs()))
	return nil
}

// ClearSelection empties the selection.
func (a *App) ClearSelection() error {
	a.dashboard.ClearSelection()
	return nil
}

// Storage prints the storage quota indicator.
func (a *App) Storage() error {
	used := a.config.StorageUsedBytes
	total := a.config.StorageTotalBytes
	pct := 0.0
	if total > 0 {
		pct = float64(used) / float64(total) * 100
	}
	fmt.Fprintf(a.out, "%s of %s used (%.0f%%)\n",
		models.FormatSize(&used), models.FormatSize(&total), pct)
	return nil
}
