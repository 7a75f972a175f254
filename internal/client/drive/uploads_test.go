package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
)

func TestUploadTracker_Lifecycle(t *testing.T) {
	u := NewUploadTracker()

	id := u.Add("report.pdf")
	task, ok := u.Task(id)
	require.True(t, ok)
	assert.Equal(t, models.UploadPending, task.Status)
	assert.Zero(t, task.Progress)

	u.Start(id)
	u.SetProgress(id, 40)
	task, _ = u.Task(id)
	assert.Equal(t, models.UploadUploading, task.Status)
	assert.Equal(t, 40, task.Progress)

	u.Complete(id)
	task, _ = u.Task(id)
	assert.Equal(t, models.UploadComplete, task.Status)
	assert.Equal(t, 100, task.Progress)
}

func TestUploadTracker_ProgressIsMonotonic(t *testing.T) {
	u := NewUploadTracker()
	id := u.Add("a")
	u.Start(id)

	u.SetProgress(id, 60)
	u.SetProgress(id, 30) // stale update, must not move backwards
	task, _ := u.Task(id)
	assert.Equal(t, 60, task.Progress)

	u.SetProgress(id, 250)
	task, _ = u.Task(id)
	assert.Equal(t, 100, task.Progress)
}

func TestUploadTracker_NoProgressBeforeStartOrAfterTerminal(t *testing.T) {
	u := NewUploadTracker()
	id := u.Add("a")

	u.SetProgress(id, 50) // still pending
	task, _ := u.Task(id)
	assert.Zero(t, task.Progress)

	u.Start(id)
	u.Fail(id)
	u.SetProgress(id, 90)
	task, _ = u.Task(id)
	assert.Equal(t, models.UploadError, task.Status)
	assert.Zero(t, task.Progress)

	// Terminal states are final.
	u.Complete(id)
	task, _ = u.Task(id)
	assert.Equal(t, models.UploadError, task.Status)
}

func TestUploadTracker_TasksKeepCreationOrder(t *testing.T) {
	u := NewUploadTracker()
	u.Add("first")
	u.Add("second")
	u.Add("third")

	tasks := u.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].FileName)
	assert.Equal(t, "second", tasks[1].FileName)
	assert.Equal(t, "third", tasks[2].FileName)
}

func TestUploadTracker_ConcurrentBatchesStayIsolated(t *testing.T) {
	u := NewUploadTracker()

	// First batch is mid-flight when a second batch is added.
	a := u.Add("batch1-a")
	u.Start(a)
	u.SetProgress(a, 30)

	b := u.Add("batch2-a")
	u.Start(b)
	u.SetProgress(b, 80)

	taskA, _ := u.Task(a)
	taskB, _ := u.Task(b)
	assert.Equal(t, 30, taskA.Progress)
	assert.Equal(t, 80, taskB.Progress)
	assert.NotEqual(t, a, b)
}

func TestUploadTracker_Clear(t *testing.T) {
	u := NewUploadTracker()
	u.Add("a")
	u.Add("b")

	u.Clear()

	assert.Empty(t, u.Tasks())
	_, ok := u.Task("a")
	assert.False(t, ok)
}
