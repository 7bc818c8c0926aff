package dto

import (
	"time"

	"pr-webhook-service/internal/domain/models"
)

type PRDTO struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	Author         string     `json:"author"`
	Repository     string     `json:"repository"`
	PRNumber       int        `json:"pr_number"`
	GitHubID       int64      `json:"github_id,omitempty"`
	HTMLURL        string     `json:"html_url,omitempty"`
	BranchName     string     `json:"branch_name,omitempty"`
	BaseBranch     string     `json:"base_branch,omitempty"`
	CommitSHA      string     `json:"commit_sha,omitempty"`
	BaseCommitSHA  string     `json:"base_commit_sha,omitempty"`
	Additions      int        `json:"additions"`
	Deletions      int        `json:"deletions"`
	ChangedFiles   int        `json:"changed_files"`
	CommitsCount   int        `json:"commits_count"`
	Draft          bool       `json:"draft"`
	Mergeable      *bool      `json:"mergeable"`
	Rebaseable     *bool      `json:"rebaseable"`
	MergeableState string     `json:"mergeable_state,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	MergedAt       *time.Time `json:"merged_at,omitempty"`
}

type FileDTO struct {
	ID            string    `json:"id"`
	Filename      string    `json:"filename"`
	Path          string    `json:"file_path"`
	Status        string    `json:"status"`
	Additions     int       `json:"additions"`
	Deletions     int       `json:"deletions"`
	Changes       int       `json:"changes"`
	SHA           string    `json:"sha,omitempty"`
	BlobURL       string    `json:"blob_url,omitempty"`
	RawURL        string    `json:"raw_url,omitempty"`
	ContentsURL   string    `json:"contents_url,omitempty"`
	Size          int       `json:"file_size"`
	Extension     string    `json:"file_extension,omitempty"`
	PullRequestID string    `json:"pull_request_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToPRDTO(pr *models.PullRequest) PRDTO {
	return PRDTO{
		ID:             pr.ID.String(),
		Title:          pr.Title,
		Description:    pr.Description,
		Status:         string(pr.Status),
		Author:         pr.Author,
		Repository:     pr.Repository,
		PRNumber:       pr.Number,
		GitHubID:       pr.GitHubID,
		HTMLURL:        pr.HTMLURL,
		BranchName:     pr.BranchName,
		BaseBranch:     pr.BaseBranch,
		CommitSHA:      pr.CommitSHA,
		BaseCommitSHA:  pr.BaseCommitSHA,
		Additions:      pr.Additions,
		Deletions:      pr.Deletions,
		ChangedFiles:   pr.ChangedFiles,
		CommitsCount:   pr.CommitsCount,
		Draft:          pr.Draft,
		Mergeable:      pr.Mergeable,
		Rebaseable:     pr.Rebaseable,
		MergeableState: pr.MergeableState,
		CreatedAt:      pr.CreatedAt,
		UpdatedAt:      pr.UpdatedAt,
		ClosedAt:       pr.ClosedAt,
		MergedAt:       pr.MergedAt,
	}
}

func ToFileDTO(f *models.File) FileDTO {
	return FileDTO{
		ID:            f.ID.String(),
		Filename:      f.Filename,
		Path:          f.Path,
		Status:        string(f.Status),
		Additions:     f.Additions,
		Deletions:     f.Deletions,
		Changes:       f.Changes,
		SHA:           f.SHA,
		BlobURL:       f.BlobURL,
		RawURL:        f.RawURL,
		ContentsURL:   f.ContentsURL,
		Size:          f.Size,
		Extension:     f.Extension,
		PullRequestID: f.PullRequestID.String(),
		CreatedAt:     f.CreatedAt,
	}
}
