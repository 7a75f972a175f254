package drive

import (
	"context"
	"sync"
	"time"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/client/repositories/files"
	"github.com/RANGASWAMY-MK/my-space/internal/logging"
)

// ViewMode selects how the listing is rendered.
type ViewMode string

const (
	ModeGrid ViewMode = "grid"
	ModeList ViewMode = "list"
)

// Dashboard is the facade over the drive core. It owns the navigation
// state, the projected listing, the selection, the upload tracker and the
// notifier, and exposes read-only snapshots to the view layer.
//
// Refresh stamps every projection with a monotonically increasing sequence
// number; a result that resolves after a newer request was issued is
// dropped, so the displayed listing always reflects the latest intent.
type Dashboard struct {
	mu sync.Mutex

	nav         *Navigation
	projector   *Projector
	selection   *Selection
	coordinator *Coordinator
	uploads     *UploadTracker
	notifier    *Notifier
	log         logging.Logger

	files    []models.FileRecord
	query    string
	viewMode ViewMode
	loading  bool
	seq      uint64
}

// DashboardOption configures a Dashboard.
type DashboardOption func(*Dashboard)

// WithNotificationTTL overrides the notification auto-dismiss interval.
func WithNotificationTTL(ttl time.Duration) DashboardOption {
	return func(d *Dashboard) {
		d.notifier = NewNotifier(ttl)
	}
}

// NewDashboard wires up the core against repo.
func NewDashboard(repo files.Repository, log logging.Logger, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		nav:       NewNavigation(),
		projector: NewProjector(repo),
		selection: NewSelection(),
		uploads:   NewUploadTracker(),
		notifier:  NewNotifier(DefaultNotificationTTL),
		viewMode:  ModeGrid,
		log:       log,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.coordinator = NewCoordinator(repo, d.uploads, d.notifier, d.Refresh, log)
	return d
}

// Refresh re-projects the visible listing for the current navigation state
// and search query, then reconciles the selection against the result. On
// repository failure the listing comes up empty and a ListingFailed
// notification is raised; the previous listing is never shown as current.
func (d *Dashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	view := d.nav.View()
	folderID := d.nav.FolderID()
	query := d.query
	d.loading = true
	d.mu.Unlock()

	records, err := d.projector.Project(ctx, view, folderID, query)

	d.mu.Lock()
	defer d.mu.Unlock()

	// A newer projection was issued while this one was in flight.
	if seq != d.seq {
		return
	}
	d.loading = false

	if err != nil {
		d.log.Error(ctx, "listing failed", "view", view, "folder", folderID, "error", err)
		d.files = nil
		d.selection.Reconcile(nil)
		d.notifier.Error("Failed to load files")
		return
	}

	d.files = records
	d.selection.Reconcile(recordIDs(records))
}

// EnterFolder descends into rec and refreshes. The view layer must only
// call this for folder records.
func (d *Dashboard) EnterFolder(ctx context.Context, rec models.FileRecord) {
	d.mu.Lock()
	d.nav.EnterFolder(rec.ID, rec.Name)
	d.mu.Unlock()
	d.Refresh(ctx)
}

// SwitchView activates view and refreshes.
func (d *Dashboard) SwitchView(ctx context.Context, view View) {
	d.mu.Lock()
	d.nav.SwitchView(view)
	d.mu.Unlock()
	d.Refresh(ctx)
}

// ClickBreadcrumb jumps to a crumb of the pre-click path and refreshes.
func (d *Dashboard) ClickBreadcrumb(ctx context.Context, targetID string, index int) {
	d.mu.Lock()
	d.nav.ClickBreadcrumb(targetID, index)
	d.mu.Unlock()
	d.Refresh(ctx)
}

// SetQuery updates the search query and refreshes. A non-empty query takes
// absolute precedence over the active view.
func (d *Dashboard) SetQuery(ctx context.Context, query string) {
	d.mu.Lock()
	d.query = query
	d.mu.Unlock()
	d.Refresh(ctx)
}

// SetViewMode switches between grid and list rendering.
func (d *Dashboard) SetViewMode(mode ViewMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewMode = mode
}

// Select marks a visible file id for bulk action.
func (d *Dashboard) Select(id string) { d.selection.Select(id) }

// Deselect unmarks id.
func (d *Dashboard) Deselect(id string) { d.selection.Deselect(id) }

// SelectAll selects every currently visible file.
func (d *Dashboard) SelectAll() {
	d.mu.Lock()
	ids := recordIDs(d.files)
	d.mu.Unlock()
	d.selection.ToggleAll(ids, true)
}

// ClearSelection empties the selection.
func (d *Dashboard) ClearSelection() { d.selection.Clear() }

// Rename delegates to the coordinator.
func (d *Dashboard) Rename(ctx context.Context, id string, newName string) error {
	return d.coordinator.Rename(ctx, id, newName)
}

// Delete delegates to the coordinator.
func (d *Dashboard) Delete(ctx context.Context, id string) error {
	return d.coordinator.Delete(ctx, id)
}

// ToggleStar delegates to the coordinator.
func (d *Dashboard) ToggleStar(ctx context.Context, rec models.FileRecord) error {
	return d.coordinator.ToggleStar(ctx, rec.ID, rec.Starred)
}

// CreateFolder creates a folder in the currently active folder.
func (d *Dashboard) CreateFolder(ctx context.Context, name string) error {
	d.mu.Lock()
	parentID := d.nav.FolderID()
	d.mu.Unlock()
	return d.coordinator.CreateFolder(ctx, name, parentID)
}

// Upload uploads the given files into the currently active folder.
func (d *Dashboard) Upload(ctx context.Context, inputs []models.UploadInput) {
	d.mu.Lock()
	parentID := d.nav.FolderID()
	d.mu.Unlock()
	d.coordinator.UploadMany(ctx, inputs, parentID)
}

// ShareLink delegates to the coordinator.
func (d *Dashboard) ShareLink(ctx context.Context, id string) (string, error) {
	return d.coordinator.ShareLink(ctx, id)
}

// Download delegates to the coordinator.
func (d *Dashboard) Download(name string) { d.coordinator.Download(name) }

// Files returns a copy of the current visible listing.
func (d *Dashboard) Files() []models.FileRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	records := make([]models.FileRecord, len(d.files))
	copy(records, d.files)
	return records
}

// Loading reports whether a projection is outstanding.
func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// View returns the active view selector.
func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nav.View()
}

// FolderID returns the active folder id.
func (d *Dashboard) FolderID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nav.FolderID()
}

// FolderName returns the active folder name.
func (d *Dashboard) FolderName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nav.FolderName()
}

// Breadcrumbs returns a copy of the breadcrumb path.
func (d *Dashboard) Breadcrumbs() []models.Breadcrumb {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nav.Path()
}

// Title returns the heading for the current view.
func (d *Dashboard) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nav.Title()
}

// Query returns the active search query.
func (d *Dashboard) Query() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.query
}

// Mode returns the active view mode.
func (d *Dashboard) Mode() ViewMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewMode
}

// SelectedIDs returns the selected file ids in sorted order.
func (d *Dashboard) SelectedIDs() []string { return d.selection.IDs() }

// Selected reports whether id is selected.
func (d *Dashboard) Selected(id string) bool { return d.selection.Has(id) }

// Uploads returns a snapshot of the upload task list.
func (d *Dashboard) Uploads() []models.UploadTask { return d.uploads.Tasks() }

// ClearUploads drops finished and pending upload tasks from the panel.
func (d *Dashboard) ClearUploads() { d.uploads.Clear() }

// Notification returns the active notification, or nil.
func (d *Dashboard) Notification() *Notification { return d.notifier.Current() }

func recordIDs(records []models.FileRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
