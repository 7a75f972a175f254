// Package drive implements the client-side state core of my-space: the
// navigation state machine, the listing projector, the selection set, the
// mutation coordinator and the dashboard facade tying them together. The
// view layer consumes read-only snapshots and feeds intents back in.
package drive

import (
	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
)

// View selects the top-level derivation rule for the visible listing.
type View string

const (
	ViewMyDrive View = "my-drive"
	ViewStarred View = "starred"
	ViewShared  View = "shared"
	ViewRecent  View = "recent"
	ViewTrash   View = "trash"
)

// ParseView maps a user-supplied string onto a View.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewMyDrive, ViewStarred, ViewShared, ViewRecent, ViewTrash:
		return View(s), true
	default:
		return "", false
	}
}

// Root folder identity. The breadcrumb path is empty exactly when the
// active folder is the root.
const (
	RootFolderID   = "root"
	RootFolderName = "My Drive"
)

// Navigation tracks where the user currently is: the active view, the
// active folder and the breadcrumb path (root-to-parent order, excluding
// the active folder itself).
//
// Only ViewMyDrive uses the folder context meaningfully; the other views
// derive their listings independently of it. All transitions are pure,
// synchronous state transforms and cannot fail.
type Navigation struct {
	view       View
	folderID   string
	folderName string
	path       []models.Breadcrumb
}

// NewNavigation returns navigation positioned at the root of My Drive.
func NewNavigation() *Navigation {
	return &Navigation{
		view:       ViewMyDrive,
		folderID:   RootFolderID,
		folderName: RootFolderName,
	}
}

// EnterFolder descends into the folder identified by id/name, pushing the
// previously active folder onto the breadcrumb path. The caller (the click
// handler) must only invoke this for folder records; kind is not
// re-validated here.
func (n *Navigation) EnterFolder(id, name string) {
	n.path = append(n.path, models.Breadcrumb{ID: n.folderID, Name: n.folderName})
	n.folderID = id
	n.folderName = name
}

// SwitchView activates view. Switching to ViewMyDrive always resets to the
// root, discarding prior folder depth; re-entering "My Drive" starts at the
// top. The other views keep the current folder context.
func (n *Navigation) SwitchView(view View) {
	n.view = view
	if view == ViewMyDrive {
		n.reset()
	}
}

// ClickBreadcrumb jumps to the crumb at index in the pre-click path (the
// root crumb passes the root id and index -1). The resulting path holds
// exactly index ancestors above the new active folder.
func (n *Navigation) ClickBreadcrumb(targetID string, index int) {
	if targetID == RootFolderID {
		n.reset()
		return
	}
	if index < 0 || index >= len(n.path) {
		return
	}
	target := n.path[index]
	n.path = n.path[:index]
	n.folderID = target.ID
	n.folderName = target.Name
}

func (n *Navigation) reset() {
	n.folderID = RootFolderID
	n.folderName = RootFolderName
	n.path = nil
}

// View returns the active view selector.
func (n *Navigation) View() View { return n.view }

// FolderID returns the active folder id.
func (n *Navigation) FolderID() string { return n.folderID }

// FolderName returns the active folder's display name.
func (n *Navigation) FolderName() string { return n.folderName }

// AtRoot reports whether the active folder is the root.
func (n *Navigation) AtRoot() bool { return n.folderID == RootFolderID }

// Path returns a copy of the breadcrumb path.
func (n *Navigation) Path() []models.Breadcrumb {
	path := make([]models.Breadcrumb, len(n.path))
	copy(path, n.path)
	return path
}

// Title returns the heading for the current view: the fixed view names, or
// the active folder name for My Drive.
func (n *Navigation) Title() string {
	switch n.view {
	case ViewStarred:
		return "Starred"
	case ViewShared:
		return "Shared with me"
	case ViewRecent:
		return "Recent"
	case ViewTrash:
		return "Trash"
	default:
		return n.folderName
	}
}
