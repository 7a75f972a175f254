package models

import (
	"fmt"
	"time"
)

// Icon returns the glyph shown next to records of this kind.
func (k FileKind) Icon() string {
	switch k {
	case KindFolder:
		return "📁"
	case KindDocument:
		return "📄"
	case KindImage:
		return "🖼️"
	case KindVideo:
		return "🎬"
	case KindPDF:
		return "📕"
	default:
		return "📎"
	}
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count as a human-readable string with one
// decimal, e.g. "240.0 KB". A nil size (folders) renders as "-".
func FormatSize(sizeBytes *int64) string {
	if sizeBytes == nil || *sizeBytes == 0 {
		return "-"
	}
	size := float64(*sizeBytes)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}

// FormatModified renders a timestamp relative to now: "Today", "Yesterday",
// "N days ago" within a week, and an absolute date beyond that.
func FormatModified(t time.Time, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}
