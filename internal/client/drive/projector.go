package drive

import (
	"context"
	"fmt"
	"slices"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/client/repositories/files"
)

// recentLimit caps the Recent view.
const recentLimit = 10

// Projector derives the visible file set from (view, active folder, search
// query) by querying the repository and applying view-specific post-filters.
//
// Resolution order, first match wins:
//
//  1. non-empty query  -> name search across the whole record space
//  2. starred          -> root children, starred only
//  3. shared           -> root children, shared only
//  4. recent           -> root children, newest first, at most 10
//  5. otherwise        -> direct children of the active folder
//
// Starred, shared and recent inspect only root-level children; they never
// recurse into the folder hierarchy.
type Projector struct {
	repo files.Repository
}

// NewProjector returns a projector backed by repo.
func NewProjector(repo files.Repository) *Projector {
	return &Projector{repo: repo}
}

// Project resolves the visible listing. On repository failure it returns an
// empty sequence along with the error; staleness handling (dropping
// superseded results) is the caller's responsibility.
func (p *Projector) Project(ctx context.Context, view View, activeFolderID string, searchQuery string) ([]models.FileRecord, error) {
	if searchQuery != "" {
		records, err := p.repo.SearchByName(ctx, searchQuery)
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
		return records, nil
	}

	switch view {
	case ViewStarred:
		return p.rootFiltered(ctx, func(r *models.FileRecord) bool { return r.Starred })

	case ViewShared:
		return p.rootFiltered(ctx, func(r *models.FileRecord) bool { return r.Shared })

	case ViewRecent:
		records, err := p.repo.ListChildren(ctx, RootFolderID)
		if err != nil {
			return nil, fmt.Errorf("listing failed: %w", err)
		}
		slices.SortStableFunc(records, func(a, b models.FileRecord) int {
			return b.ModifiedAt.Compare(a.ModifiedAt)
		})
		if len(records) > recentLimit {
			records = records[:recentLimit]
		}
		return records, nil

	default:
		records, err := p.repo.ListChildren(ctx, activeFolderID)
		if err != nil {
			return nil, fmt.Errorf("listing failed: %w", err)
		}
		return records, nil
	}
}

func (p *Projector) rootFiltered(ctx context.Context, keep func(*models.FileRecord) bool) ([]models.FileRecord, error) {
	records, err := p.repo.ListChildren(ctx, RootFolderID)
	if err != nil {
		return nil, fmt.Errorf("listing failed: %w", err)
	}
	var result []models.FileRecord
	for _, r := range records {
		if keep(&r) {
			result = append(result, r)
		}
	}
	return result, nil
}
