package github

// Wire types for the pull_request webhook payload. Required fields are
// pointers so that "absent" and "zero" stay distinguishable until
// normalization validates them.

type PullRequestEvent struct {
	Action      string              `json:"action"`
	PullRequest *PullRequestPayload `json:"pull_request"`
	Repository  RepositoryPayload   `json:"repository"`
	// Files is not part of GitHub's own pull_request payload; internal
	// redelivery tooling attaches a listing here when it has one.
	Files []FilePayload `json:"files"`
}

type PullRequestPayload struct {
	ID             int64       `json:"id"`
	Number         *int        `json:"number"`
	Title          *string     `json:"title"`
	Body           string      `json:"body"`
	State          string      `json:"state"`
	HTMLURL        string      `json:"html_url"`
	Draft          bool        `json:"draft"`
	Mergeable      *bool       `json:"mergeable"`
	Rebaseable     *bool       `json:"rebaseable"`
	MergeableState string      `json:"mergeable_state"`
	Additions      int         `json:"additions"`
	Deletions      int         `json:"deletions"`
	ChangedFiles   int         `json:"changed_files"`
	Commits        int         `json:"commits"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
	ClosedAt       string      `json:"closed_at"`
	MergedAt       string      `json:"merged_at"`
	User           UserPayload `json:"user"`
	Head           RefPayload  `json:"head"`
	Base           RefPayload  `json:"base"`
}

type UserPayload struct {
	Login string `json:"login"`
}

type RefPayload struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

type RepositoryPayload struct {
	FullName string `json:"full_name"`
}

type FilePayload struct {
	Filename    string `json:"filename"`
	Status      string `json:"status"`
	Additions   int    `json:"additions"`
	Deletions   int    `json:"deletions"`
	Changes     int    `json:"changes"`
	SHA         string `json:"sha"`
	BlobURL     string `json:"blob_url"`
	RawURL      string `json:"raw_url"`
	ContentsURL string `json:"contents_url"`
	Size        int    `json:"size"`
}
