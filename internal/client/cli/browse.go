package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/RANGASWAMY-MK/my-space/internal/client/drive"
	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
)

// resolveIndex maps a 1-based listing position, as printed by ls, onto the
// underlying record.
func (a *App) resolveIndex(arg string) (models.FileRecord, error) {
	var zero models.FileRecord
	n, err := strconv.Atoi(arg)
	if err != nil {
		return zero, fmt.Errorf("not a listing number: %q", arg)
	}
	listing := a.dashboard.Files()
	if n < 1 || n > len(listing) {
		return zero, fmt.Errorf("no entry %d in the current listing", n)
	}
	return listing[n-1], nil
}

// List renders the current listing in the active view mode.
func (a *App) List(ctx context.Context) error {
	a.renderListing()
	return nil
}

func (a *App) renderListing() {
	listing := a.dashboard.Files()

	if crumbs := a.dashboard.Breadcrumbs(); len(crumbs) > 0 {
		path := ""
		for _, c := range crumbs {
			path += c.Name + " / "
		}
		fmt.Fprintln(a.out, path+a.dashboard.FolderName())
	} else {
		fmt.Fprintln(a.out, a.dashboard.Title())
	}

	if len(listing) == 0 {
		fmt.Fprintln(a.out, "(empty)")
		return
	}

	switch a.dashboard.Mode() {
	case drive.ModeList:
		a.renderTable(listing)
	default:
		a.renderGrid(listing)
	}
}

func (a *App) renderGrid(listing []models.FileRecord) {
	const columns = 3
	for i, rec := range listing {
		marker := " "
		if a.dashboard.Selected(rec.ID) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s%2d %s %-24s", marker, i+1, rec.Kind.Icon(), truncateName(rec.Name, 24))
		if (i+1)%columns == 0 {
			fmt.Fprintln(a.out)
		}
	}
	if len(listing)%columns != 0 {
		fmt.Fprintln(a.out)
	}
}

func (a *App) renderTable(listing []models.FileRecord) {
	now := time.Now()
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  #\t\tName\tOwner\tLast modified\tFile size")
	for i, rec := range listing {
		marker := " "
		if a.dashboard.Selected(rec.ID) {
			marker = "*"
		}
		owner := rec.Owner
		if owner == "" {
			owner = "me"
		}
		fmt.Fprintf(w, "%s %d\t%s\t%s\t%s\t%s\t%s\n",
			marker, i+1, rec.Kind.Icon(), rec.Name, owner,
			models.FormatModified(rec.ModifiedAt, now), models.FormatSize(rec.SizeBytes))
	}
	w.Flush()
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-1] + "…"
}

// Open descends into the folder at the given listing position.
func (a *App) Open(ctx context.Context, arg string) error {
	rec, err := a.resolveIndex(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	if !rec.IsFolder() {
		fmt.Fprintf(a.out, "%s is not a folder\n", rec.Name)
		return nil
	}
	a.dashboard.EnterFolder(ctx, rec)
	a.renderListing()
	return nil
}

// Up moves one breadcrumb level towards the root.
func (a *App) Up(ctx context.Context) error {
	crumbs := a.dashboard.Breadcrumbs()
	if len(crumbs) == 0 {
		fmt.Fprintln(a.out, "Already at the top")
		return nil
	}
	last := len(crumbs) - 1
	a.dashboard.ClickBreadcrumb(ctx, crumbs[last].ID, last)
	a.renderListing()
	return nil
}

// Root jumps straight back to My Drive's top level.
func (a *App) Root(ctx context.Context) error {
	a.dashboard.ClickBreadcrumb(ctx, drive.RootFolderID, 0)
	a.renderListing()
	return nil
}

// Crumb jumps to the 1-based breadcrumb position shown in the listing header.
func (a *App) Crumb(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	crumbs := a.dashboard.Breadcrumbs()
	if err != nil || n < 1 || n > len(crumbs) {
		fmt.Fprintf(a.out, "Usage: crumb <1..%d>\n", len(crumbs))
		return nil
	}
	a.dashboard.ClickBreadcrumb(ctx, crumbs[n-1].ID, n-1)
	a.renderListing()
	return nil
}

// SwitchView activates one of the drive views.
func (a *App) SwitchView(ctx context.Context, arg string) error {
	view, ok := drive.ParseView(arg)
	if !ok {
		fmt.Fprintln(a.out, "Usage: view <my-drive|starred|shared|recent|trash>")
		return nil
	}
	a.dashboard.SwitchView(ctx, view)
	a.renderListing()
	return nil
}

// Search sets the search query; an empty argument clears it.
func (a *App) Search(ctx context.Context, query string) error {
	a.dashboard.SetQuery(ctx, query)
	a.renderListing()
	return nil
}

// SetMode switches between grid and list rendering.
func (a *App) SetMode(arg string) error {
	switch drive.ViewMode(arg) {
	case drive.ModeGrid, drive.ModeList:
		a.dashboard.SetViewMode(drive.ViewMode(arg))
	default:
		fmt.Fprintln(a.out, "Usage: mode <grid|list>")
	}
	return nil
}
