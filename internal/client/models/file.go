// Package models defines the drive records and view-facing value types used
// by the my-space client.
package models

import (
	"slices"
	"strings"
	"time"
)

// FileKind is the closed classification of a record, derived once from its
// media type when the record is ingested. Rendering code must switch on
// FileKind instead of re-parsing the media type.
type FileKind string

const (
	KindFolder   FileKind = "folder"
	KindDocument FileKind = "document-like"
	KindImage    FileKind = "image"
	KindVideo    FileKind = "video"
	KindPDF      FileKind = "pdf"
	KindGeneric  FileKind = "generic"
)

// ClassifyKind maps a media-type string onto the FileKind enumeration.
// Office-style documents (spreadsheets, text documents, presentations) all
// collapse into KindDocument.
func ClassifyKind(mimeType string) FileKind {
	switch {
	case strings.Contains(mimeType, "folder"):
		return KindFolder
	case strings.Contains(mimeType, "spreadsheet"),
		strings.Contains(mimeType, "excel"),
		strings.Contains(mimeType, "document"),
		strings.Contains(mimeType, "word"),
		strings.Contains(mimeType, "presentation"),
		strings.Contains(mimeType, "powerpoint"):
		return KindDocument
	case strings.Contains(mimeType, "pdf"):
		return KindPDF
	case strings.HasPrefix(mimeType, "image"):
		return KindImage
	case strings.HasPrefix(mimeType, "video"):
		return KindVideo
	default:
		return KindGeneric
	}
}

// FileRecord represents one file or folder.
//
// ID is immutable once created; Name is the only field a rename may change.
// SizeBytes is nil for folders. ParentIDs is a set of container ids — a
// record may be a member of several folders.
type FileRecord struct {
	ID         string
	Name       string
	MimeType   string
	Kind       FileKind
	SizeBytes  *int64
	CreatedAt  time.Time
	ModifiedAt time.Time
	ParentIDs  []string
	Starred    bool
	Shared     bool
	Owner      string
}

// IsFolder reports whether the record is a folder.
func (f *FileRecord) IsFolder() bool {
	return f.Kind == KindFolder
}

// HasParent reports whether parentID is one of the record's containers.
func (f *FileRecord) HasParent(parentID string) bool {
	return slices.Contains(f.ParentIDs, parentID)
}

// Breadcrumb is one entry of the ancestor chain shown above a listing.
type Breadcrumb struct {
	ID   string
	Name string
}
