package files

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
	"github.com/RANGASWAMY-MK/my-space/internal/common"
)

// Per-operation latencies mirroring the behavior of a remote drive API.
// Applied only when the repository is constructed with simulated latency.
const (
	listDelay       = 500 * time.Millisecond
	searchDelay     = 300 * time.Millisecond
	getDelay        = 200 * time.Millisecond
	createDelay     = 300 * time.Millisecond
	deleteDelay     = 300 * time.Millisecond
	renameDelay     = 200 * time.Millisecond
	starDelay       = 200 * time.Millisecond
	shareDelay      = 200 * time.Millisecond
	uploadStepDelay = 100 * time.Millisecond
)

const shareLinkFormat = "https://myspace.example.com/file/%s/view?usp=sharing"

// InMemoryRepository is the simulated single-user backing store. It keeps
// records in insertion order and serializes every operation behind one
// mutex, so a mutation is always visible to the next listing call.
type InMemoryRepository struct {
	mu              sync.Mutex
	records         []models.FileRecord
	simulateLatency bool
}

// Option configures an InMemoryRepository.
type Option func(*InMemoryRepository)

// WithRecords seeds the repository with initial records.
func WithRecords(records []models.FileRecord) Option {
	return func(r *InMemoryRepository) {
		r.records = slices.Clone(records)
	}
}

// WithSimulatedLatency makes every operation sleep for a realistic interval
// before completing. Tests leave this off.
func WithSimulatedLatency() Option {
	return func(r *InMemoryRepository) {
		r.simulateLatency = true
	}
}

// NewInMemory constructs an empty repository unless seeded via WithRecords.
func NewInMemory(opts ...Option) *InMemoryRepository {
	r := &InMemoryRepository{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// sleep blocks for d when latency simulation is on, aborting early if ctx
// is cancelled.
func (r *InMemoryRepository) sleep(ctx context.Context, d time.Duration) error {
	if !r.simulateLatency {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *InMemoryRepository) ListChildren(ctx context.Context, parentID string) ([]models.FileRecord, error) {
	if err := r.sleep(ctx, listDelay); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []models.FileRecord
	for _, rec := range r.records {
		if rec.HasParent(parentID) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) SearchByName(ctx context.Context, query string) ([]models.FileRecord, error) {
	if err := r.sleep(ctx, searchDelay); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(query)
	var result []models.FileRecord
	for _, rec := range r.records {
		if strings.Contains(strings.ToLower(rec.Name), lower) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.FileRecord, error) {
	if err := r.sleep(ctx, getDelay); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	rec := r.records[i]
	return &rec, nil
}

func (r *InMemoryRepository) CreateFolder(ctx context.Context, name string, parentID string) (*models.FileRecord, error) {
	if err := r.sleep(ctx, createDelay); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	rec := models.FileRecord{
		ID:         uuid.NewString(),
		Name:       name,
		MimeType:   "application/vnd.google-apps.folder",
		Kind:       models.KindFolder,
		CreatedAt:  now,
		ModifiedAt: now,
		ParentIDs:  []string{parentID},
	}
	r.records = append(r.records, rec)
	return &rec, nil
}

func (r *InMemoryRepository) UploadBytes(ctx context.Context, meta models.UploadInput, parentID string, onProgress func(percent int)) (*models.FileRecord, error) {
	for percent := 0; percent <= 100; percent += 10 {
		if err := r.sleep(ctx, uploadStepDelay); err != nil {
			return nil, err
		}
		if onProgress != nil {
			onProgress(percent)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	size := meta.SizeBytes
	now := time.Now()
	rec := models.FileRecord{
		ID:         uuid.NewString(),
		Name:       meta.Name,
		MimeType:   mimeType,
		Kind:       models.ClassifyKind(mimeType),
		SizeBytes:  &size,
		CreatedAt:  now,
		ModifiedAt: now,
		ParentIDs:  []string{parentID},
	}
	r.records = append(r.records, rec)
	return &rec, nil
}

func (r *InMemoryRepository) Rename(ctx context.Context, id string, newName string) error {
	if err := r.sleep(ctx, renameDelay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return common.ErrNotFound
	}
	r.records[i].Name = newName
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.sleep(ctx, deleteDelay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return common.ErrNotFound
	}
	r.records = slices.Delete(r.records, i, i+1)
	return nil
}

func (r *InMemoryRepository) ToggleStar(ctx context.Context, id string) error {
	if err := r.sleep(ctx, starDelay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return common.ErrNotFound
	}
	r.records[i].Starred = !r.records[i].Starred
	return nil
}

func (r *InMemoryRepository) IssueShareLink(ctx context.Context, id string) (string, error) {
	if err := r.sleep(ctx, shareDelay); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(id) < 0 {
		return "", common.ErrNotFound
	}
	return fmt.Sprintf(shareLinkFormat, id), nil
}

// indexOf returns the position of id in records, or -1. Callers must hold mu.
func (r *InMemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.records, func(rec models.FileRecord) bool {
		return rec.ID == id
	})
}
