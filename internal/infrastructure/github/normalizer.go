package github

import (
	"encoding/json"
	"strings"
	"time"

	"pr-webhook-service/internal/domain/models"
	ports "pr-webhook-service/internal/domain/ports/output"
	"pr-webhook-service/internal/domain/services"
	"pr-webhook-service/internal/utils"
)

var statusMapping = map[string]models.PRStatus{
	"open":   models.PRStatusOpen,
	"closed": models.PRStatusClosed,
	"merged": models.PRStatusMerged,
}

var fileStatusMapping = map[string]models.FileStatus{
	"added":    models.FileStatusAdded,
	"modified": models.FileStatusModified,
	"deleted":  models.FileStatusDeleted,
}

// Normalizer maps raw pull_request payloads into validated domain
// events.
type Normalizer struct {
	log ports.Logger
}

func NewNormalizer(log ports.Logger) services.EventNormalizer {
	return &Normalizer{log: log}
}

// Normalize decodes body and validates the required field set. It
// returns utils.ErrMissingPullRequestData when the pull_request object
// is absent and a utils.ValidationError naming the first missing
// required field. Optional fields never fail: they normalize to zero
// values, and unparseable created_at/updated_at timestamps fall back to
// the current UTC time.
func (n *Normalizer) Normalize(body []byte) (*models.WebhookEvent, error) {
	var event PullRequestEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, utils.ErrMalformedPayload
	}
	if event.PullRequest == nil {
		return nil, utils.ErrMissingPullRequestData
	}

	payload := event.PullRequest
	if payload.Title == nil || *payload.Title == "" {
		return nil, utils.NewValidationError("title")
	}
	if payload.User.Login == "" {
		return nil, utils.NewValidationError("author")
	}
	if event.Repository.FullName == "" {
		return nil, utils.NewValidationError("repository")
	}
	if payload.Number == nil || *payload.Number <= 0 {
		return nil, utils.NewValidationError("pr_number")
	}

	status, ok := statusMapping[payload.State]
	if !ok {
		status = models.PRStatusOpen
	}

	pr := models.PullRequest{
		Title:          *payload.Title,
		Description:    payload.Body,
		Status:         status,
		Author:         payload.User.Login,
		Repository:     event.Repository.FullName,
		Number:         *payload.Number,
		GitHubID:       payload.ID,
		HTMLURL:        payload.HTMLURL,
		BranchName:     payload.Head.Ref,
		BaseBranch:     payload.Base.Ref,
		CommitSHA:      payload.Head.SHA,
		BaseCommitSHA:  payload.Base.SHA,
		Additions:      payload.Additions,
		Deletions:      payload.Deletions,
		ChangedFiles:   payload.ChangedFiles,
		CommitsCount:   payload.Commits,
		Draft:          payload.Draft,
		Mergeable:      payload.Mergeable,
		Rebaseable:     payload.Rebaseable,
		MergeableState: payload.MergeableState,
		CreatedAt:      n.parseTimeOrNow("created_at", payload.CreatedAt),
		UpdatedAt:      n.parseTimeOrNow("updated_at", payload.UpdatedAt),
		ClosedAt:       parseOptionalTime(payload.ClosedAt),
		MergedAt:       parseOptionalTime(payload.MergedAt),
	}

	return &models.WebhookEvent{
		Action:      event.Action,
		PullRequest: pr,
		Files:       normalizeFiles(event.Files),
	}, nil
}

func normalizeFiles(files []FilePayload) []models.File {
	out := make([]models.File, 0, len(files))
	for _, f := range files {
		status, ok := fileStatusMapping[f.Status]
		if !ok {
			status = models.FileStatusModified
		}
		out = append(out, models.File{
			Filename:    f.Filename,
			Path:        f.Filename,
			Status:      status,
			Additions:   f.Additions,
			Deletions:   f.Deletions,
			Changes:     f.Changes,
			SHA:         f.SHA,
			BlobURL:     f.BlobURL,
			RawURL:      f.RawURL,
			ContentsURL: f.ContentsURL,
			Size:        f.Size,
			Extension:   FileExtension(f.Filename),
		})
	}
	return out
}

// FileExtension derives the extension from the last '.' of a filename.
// Names without one yield an empty string.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return filename[idx+1:]
}

// parseTimeOrNow keeps a delivery alive when GitHub sends an
// unparseable timestamp: it logs and substitutes the current UTC time.
func (n *Normalizer) parseTimeOrNow(field, value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		n.log.Warn("unparseable timestamp, falling back to now", "field", field, "value", value)
		return time.Now().UTC()
	}
	return t.UTC()
}

func parseOptionalTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}
