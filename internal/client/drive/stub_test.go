package drive

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/common"
)

// fakeRepo is a deterministic repository stub that records which operations
// were called. err, when set, makes every operation fail.
type fakeRepo struct {
	mu      sync.Mutex
	records []models.FileRecord

	err          error
	uploadErrFor map[string]error

	listParents   []string
	searchQueries []string
	renameCalls   int
	deleteCalls   int
	starCalls     int
	createCalls   int
	uploadCalls   int
	shareCalls    int
}

func newFakeRepo(records ...models.FileRecord) *fakeRepo {
	return &fakeRepo{records: records}
}

func rec(id, name string, kind models.FileKind, parents ...string) models.FileRecord {
	return models.FileRecord{
		ID:         id,
		Name:       name,
		Kind:       kind,
		ParentIDs:  parents,
		ModifiedAt: time.Now(),
		CreatedAt:  time.Now(),
	}
}

func (f *fakeRepo) ListChildren(ctx context.Context, parentID string) ([]models.FileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listParents = append(f.listParents, parentID)
	if f.err != nil {
		return nil, f.err
	}
	var out []models.FileRecord
	for _, r := range f.records {
		if r.HasParent(parentID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) SearchByName(ctx context.Context, query string) ([]models.FileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchQueries = append(f.searchQueries, query)
	if f.err != nil {
		return nil, f.err
	}
	var out []models.FileRecord
	for _, r := range f.records {
		if containsFold(r.Name, query) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.FileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.records {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRepo) CreateFolder(ctx context.Context, name string, parentID string) (*models.FileRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := rec(fmt.Sprintf("folder-%d", f.createCalls), name, models.KindFolder, parentID)
	f.records = append(f.records, out)
	return &out, nil
}

func (f *fakeRepo) UploadBytes(ctx context.Context, meta models.UploadInput, parentID string, onProgress func(int)) (*models.FileRecord, error) {
	f.mu.Lock()
	f.uploadCalls++
	n := f.uploadCalls
	uploadErr := f.uploadErrFor[meta.Name]
	if f.err != nil {
		uploadErr = f.err
	}
	f.mu.Unlock()

	for percent := 0; percent <= 100; percent += 50 {
		if onProgress != nil {
			onProgress(percent)
		}
	}
	if uploadErr != nil {
		return nil, uploadErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := rec(fmt.Sprintf("upload-%d", n), meta.Name, models.ClassifyKind(meta.MimeType), parentID)
	f.records = append(f.records, out)
	return &out, nil
}

func (f *fakeRepo) Rename(ctx context.Context, id string, newName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renameCalls++
	if f.err != nil {
		return f.err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Name = newName
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.err != nil {
		return f.err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = slices.Delete(f.records, i, i+1)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeRepo) ToggleStar(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starCalls++
	if f.err != nil {
		return f.err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].Starred = !f.records[i].Starred
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeRepo) IssueShareLink(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shareCalls++
	if f.err != nil {
		return "", f.err
	}
	return "https://myspace.example.com/file/" + id + "/view?usp=sharing", nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
