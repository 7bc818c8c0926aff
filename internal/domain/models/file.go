package models

import (
	"time"

	"github.com/google/uuid"
)

type FileStatus string

const (
	FileStatusAdded    FileStatus = "added"
	FileStatusModified FileStatus = "modified"
	FileStatusDeleted  FileStatus = "deleted"
)

// PlaceholderFilename marks a file-set refresh for which no per-file
// detail was delivered. Fetching the real listing from the GitHub API
// is out of scope for the ingestion path.
const PlaceholderFilename = "files_updated"

// File is one changed file inside a pull request. Files are owned by
// their pull request and replaced wholesale on synchronize events.
type File struct {
	ID            uuid.UUID
	Filename      string
	Path          string
	Status        FileStatus
	Additions     int
	Deletions     int
	Changes       int
	SHA           string
	BlobURL       string
	RawURL        string
	ContentsURL   string
	Size          int
	Extension     string
	PullRequestID uuid.UUID
	CreatedAt     time.Time
}

// PlaceholderFile builds the stand-in record stored when an event
// signals that files changed without carrying a listing.
func PlaceholderFile() *File {
	return &File{
		Filename: PlaceholderFilename,
		Path:     PlaceholderFilename,
		Status:   FileStatusModified,
	}
}
