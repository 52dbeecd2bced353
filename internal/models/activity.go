package models

import (
	"strings"
	"time"
)

// AnalysisWindow is the bounded historical range all activity is scoped to.
// It is computed once per evaluation and never changes afterwards.
type AnalysisWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewAnalysisWindow builds a window reaching back the given number of months
// from now.
func NewAnalysisWindow(now time.Time, months int) AnalysisWindow {
	if months < 1 {
		months = 1
	}
	return AnalysisWindow{
		Start: now.AddDate(0, -months, 0),
		End:   now,
	}
}

// Contains reports whether t falls inside the window.
func (w AnalysisWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Months returns the calendar length of the window, never less than 1.
func (w AnalysisWindow) Months() int {
	years := w.End.Year() - w.Start.Year()
	months := years*12 + int(w.End.Month()) - int(w.Start.Month())
	if months < 1 {
		months = 1
	}
	return months
}

// PRContext identifies the pull request under evaluation and its author.
type PRContext struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	PRNumber int    `json:"pr_number"`
	Author   string `json:"author"`
}

// Repository is the slice of repository metadata the engine cares about.
type Repository struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

// FullName returns the owner/name slug.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Key returns a case-folded identity used for grouping repositories.
func (r Repository) Key() string {
	return strings.ToLower(r.Owner) + "/" + strings.ToLower(r.Name)
}

// IsOwnedBy reports whether login owns the repository, case-insensitively.
func (r Repository) IsOwnedBy(login string) bool {
	return strings.EqualFold(r.Owner, login)
}

// Pull request states as reported by the GitHub GraphQL API.
const (
	PRStateOpen   = "OPEN"
	PRStateClosed = "CLOSED"
	PRStateMerged = "MERGED"
)

// PullRequest is one pull request authored by the contributor.
type PullRequest struct {
	State     string     `json:"state"`
	Merged    bool       `json:"merged"`
	CreatedAt time.Time  `json:"created_at"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	Additions int        `json:"additions"`
	Deletions int        `json:"deletions"`
	MergedBy  string     `json:"merged_by,omitempty"`
	Repo      Repository `json:"repo"`
}

// Reaction is a single emoji reaction on a comment.
type Reaction struct {
	Content string `json:"content"`
}

// IssueComment is one comment the contributor left on an issue or pull
// request. IssueAuthor is the author of the commented-on item, used to tell
// review participation apart from self-replies.
type IssueComment struct {
	CreatedAt     time.Time  `json:"created_at"`
	OnPullRequest bool       `json:"on_pull_request"`
	IssueAuthor   string     `json:"issue_author,omitempty"`
	Repo          Repository `json:"repo"`
	Reactions     []Reaction `json:"reactions,omitempty"`
}

// Issue is one issue the contributor opened.
type Issue struct {
	CreatedAt     time.Time  `json:"created_at"`
	CommentCount  int        `json:"comment_count"`
	ReactionCount int        `json:"reaction_count"`
	Repo          Repository `json:"repo"`
}

// Profile holds the contributor's public account fields.
type Profile struct {
	Login       string    `json:"login"`
	CreatedAt   time.Time `json:"created_at"`
	Bio         string    `json:"bio,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	Followers   int       `json:"followers"`
	PublicRepos int       `json:"public_repos"`
}

// ContributorActivitySnapshot is the fetcher's assembled view of one
// contributor's public activity inside the analysis window. It is handed to
// the extractors as an immutable value; every record's timestamp falls
// inside Window.
type ContributorActivitySnapshot struct {
	Login         string         `json:"login"`
	Window        AnalysisWindow `json:"window"`
	Profile       Profile        `json:"profile"`
	PullRequests  []PullRequest  `json:"pull_requests"`
	IssueComments []IssueComment `json:"issue_comments"`
	Issues        []Issue        `json:"issues"`
}
