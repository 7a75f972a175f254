package files

import (
	"time"

	"github.com/RANGASWAMY-MK/my-space/internal/client/models"
)

func sizeOf(v int64) *int64 { return &v }

// DemoRecords returns the demo drive content shown to a fresh session, with
// timestamps laid out relative to now. Kind is classified once here, at
// ingestion.
func DemoRecords(now time.Time) []models.FileRecord {
	day := 24 * time.Hour

	rec := func(id, name, mimeType string, size *int64, modified, created time.Duration, parents []string, starred, shared bool, owner string) models.FileRecord {
		return models.FileRecord{
			ID:         id,
			Name:       name,
			MimeType:   mimeType,
			Kind:       models.ClassifyKind(mimeType),
			SizeBytes:  size,
			ModifiedAt: now.Add(-modified),
			CreatedAt:  now.Add(-created),
			ParentIDs:  parents,
			Starred:    starred,
			Shared:     shared,
			Owner:      owner,
		}
	}

	return []models.FileRecord{
		rec("1", "Project Documents", "application/vnd.google-apps.folder", nil, 0, 30*day, []string{"root"}, true, false, ""),
		rec("2", "Q4 Financial Report.xlsx", "application/vnd.google-apps.spreadsheet", sizeOf(245760), 2*day, 15*day, []string{"root"}, false, true, "John Doe"),
		rec("3", "Meeting Notes.docx", "application/vnd.google-apps.document", sizeOf(52480), 1*day, 7*day, []string{"root"}, true, false, ""),
		rec("4", "Presentation 2024.pptx", "application/vnd.google-apps.presentation", sizeOf(1048576), 5*day, 20*day, []string{"root"}, false, true, ""),
		rec("5", "Company Logo.png", "image/png", sizeOf(524288), 10*day, 60*day, []string{"root"}, false, false, ""),
		rec("6", "Budget Template.xlsx", "application/vnd.google-apps.spreadsheet", sizeOf(102400), 3*day, 45*day, []string{"1"}, false, false, ""),
		rec("7", "Team Photo.jpg", "image/jpeg", sizeOf(2097152), 8*day, 90*day, []string{"1"}, true, true, ""),
		rec("8", "Contract Draft.pdf", "application/pdf", sizeOf(358400), 4*day, 12*day, []string{"root"}, false, false, ""),
		rec("9", "Archives", "application/vnd.google-apps.folder", nil, 60*day, 180*day, []string{"root"}, false, false, ""),
		rec("10", "Training Video.mp4", "video/mp4", sizeOf(52428800), 14*day, 30*day, []string{"root"}, false, true, ""),
	}
}
