package models

import (
	"time"

	"github.com/google/uuid"
)

type PRStatus string

const (
	PRStatusOpen   PRStatus = "open"
	PRStatusClosed PRStatus = "closed"
	PRStatusMerged PRStatus = "merged"
)

// PullRequest is a normalized GitHub pull request. One row exists per
// (Repository, Number) pair; repeated webhook deliveries update the row
// in place instead of creating a new one.
type PullRequest struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Status        PRStatus
	Author        string
	Repository    string
	Number        int
	GitHubID      int64
	HTMLURL       string
	BranchName    string
	BaseBranch    string
	CommitSHA     string
	BaseCommitSHA string
	Additions     int
	Deletions     int
	ChangedFiles  int
	CommitsCount  int
	Draft         bool
	// Mergeable and Rebaseable are tri-state: GitHub reports null while
	// the mergeability check is still running.
	Mergeable      *bool
	Rebaseable     *bool
	MergeableState string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ClosedAt       *time.Time
	MergedAt       *time.Time
}
