package drive

import (
	"sync"

	"github.com/google/uuid"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
)

// UploadTracker owns the upload task list. Tasks are addressed by a
// generated id, never by list position, so batches started while an earlier
// batch is still in flight cannot update each other's tasks.
type UploadTracker struct {
	mu    sync.Mutex
	order []string
	tasks map[string]*models.UploadTask
}

// NewUploadTracker returns an empty tracker.
func NewUploadTracker() *UploadTracker {
	return &UploadTracker{tasks: make(map[string]*models.UploadTask)}
}

// Add registers a pending task for fileName and returns its id.
func (u *UploadTracker) Add(fileName string) string {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := uuid.NewString()
	u.tasks[id] = &models.UploadTask{
		ID:       id,
		FileName: fileName,
		Status:   models.UploadPending,
	}
	u.order = append(u.order, id)
	return id
}

// Start transitions a pending task to uploading.
func (u *UploadTracker) Start(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	t, ok := u.tasks[id]
	if !ok || t.Status != models.UploadPending {
		return
	}
	t.Status = models.UploadUploading
}

// SetProgress updates a task's progress percentage. Progress only moves
// forward and only while the task is uploading.
func (u *UploadTracker) SetProgress(id string, percent int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	t, ok := u.tasks[id]
	if !ok || t.Status != models.UploadUploading {
		return
	}
	if percent < t.Progress {
		return
	}
	if percent > 100 {
		percent = 100
	}
	t.Progress = percent
}

// Complete moves a task to its successful terminal state.
func (u *UploadTracker) Complete(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	t, ok := u.tasks[id]
	if !ok || t.Status.Terminal() {
		return
	}
	t.Status = models.UploadComplete
	t.Progress = 100
}

// Fail moves a task to its failed terminal state.
func (u *UploadTracker) Fail(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	t, ok := u.tasks[id]
	if !ok || t.Status.Terminal() {
		return
	}
	t.Status = models.UploadError
}

// Tasks returns a snapshot of all tasks in creation order.
func (u *UploadTracker) Tasks() []models.UploadTask {
	u.mu.Lock()
	defer u.mu.Unlock()

	tasks := make([]models.UploadTask, 0, len(u.order))
	for _, id := range u.order {
		tasks = append(tasks, *u.tasks[id])
	}
	return tasks
}

// Task returns a snapshot of one task.
func (u *UploadTracker) Task(id string) (models.UploadTask, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	t, ok := u.tasks[id]
	if !ok {
		return models.UploadTask{}, false
	}
	return *t, true
}

// Clear drops all tasks, e.g. when the upload panel is dismissed.
func (u *UploadTracker) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.order = nil
	u.tasks = make(map[string]*models.UploadTask)
}
