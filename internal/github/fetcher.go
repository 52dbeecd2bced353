package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prgate/prgate/internal/models"
)

const (
	// defaultMaxPages caps pagination per collection to bound API usage.
	defaultMaxPages = 5
	defaultPageSize = 100
)

// Fetcher performs the one logical "fetch all contributor activity"
// operation: paginated PR search, issue comments, created issues and the
// account profile, assembled into a single snapshot scoped to the analysis
// window. It owns the RateLimitStatus for the duration of one evaluation and
// replaces it wholesale after every successful call.
type Fetcher struct {
	client   *Client
	governor *Governor
	policy   RetryPolicy
	logger   *logrus.Logger

	status   *RateLimitStatus
	maxPages int
	pageSize int

	// test seams
	sleep func(time.Duration)
	now   func() time.Time
}

// FetcherOption allows configuring the fetcher.
type FetcherOption func(*Fetcher)

// WithMaxPages overrides the hard pagination cap.
func WithMaxPages(n int) FetcherOption {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithPageSize overrides the page size.
func WithPageSize(n int) FetcherOption {
	return func(f *Fetcher) {
		f.pageSize = n
	}
}

// WithRetryPolicy overrides the retry configuration.
func WithRetryPolicy(p RetryPolicy) FetcherOption {
	return func(f *Fetcher) {
		f.policy = p
	}
}

// NewFetcher creates a fetcher on top of the given client.
func NewFetcher(client *Client, logger *logrus.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:   client,
		governor: NewGovernor(),
		policy:   DefaultRetryPolicy(),
		logger:   logger,
		maxPages: defaultMaxPages,
		pageSize: defaultPageSize,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// RateLimit returns the last observed quota snapshot, nil before the first
// successful call.
func (f *Fetcher) RateLimit() *RateLimitStatus {
	return f.status
}

// FetchContributorActivity fetches every activity collection for the login
// and returns them as one immutable snapshot. Records created before the
// window start are dropped even when the server-side query already filtered,
// since filtering is not guaranteed to be consistent across paginated calls.
func (f *Fetcher) FetchContributorActivity(ctx context.Context, login string, window models.AnalysisWindow) (*models.ContributorActivitySnapshot, error) {
	if strings.TrimSpace(login) == "" {
		return nil, NewValidationError("login", "cannot be empty")
	}

	logger := f.logger.WithFields(logrus.Fields{
		"login":        login,
		"window_start": window.Start.Format(time.RFC3339),
		"window_end":   window.End.Format(time.RFC3339),
	})
	logger.Info("Fetching contributor activity")

	profile, issues, err := f.fetchProfileAndIssues(ctx, login, window)
	if err != nil {
		return nil, err
	}

	prs, err := f.fetchPullRequests(ctx, login, window)
	if err != nil {
		return nil, err
	}

	comments, err := f.fetchComments(ctx, login)
	if err != nil {
		return nil, err
	}

	snapshot := &models.ContributorActivitySnapshot{
		Login:         login,
		Window:        window,
		Profile:       profile,
		PullRequests:  filterPullRequests(prs, window),
		IssueComments: filterComments(comments, window),
		Issues:        filterIssues(issues, window),
	}

	logger.WithFields(logrus.Fields{
		"pull_requests": len(snapshot.PullRequests),
		"comments":      len(snapshot.IssueComments),
		"issues":        len(snapshot.Issues),
	}).Info("Assembled contributor activity snapshot")

	return snapshot, nil
}

// do issues one physical call with the pre-call governor gate and the retry
// policy, refreshing the quota snapshot on success.
func (f *Fetcher) do(ctx context.Context, query string, variables map[string]any, out quotaCarrier) error {
	return f.policy.Execute(f.logger, func() error {
		if wait := f.governor.WaitTime(f.status, f.now()); wait > 0 {
			f.logger.WithFields(logrus.Fields{
				"wait":      wait.String(),
				"remaining": f.status.Remaining,
			}).Warn("Rate limit quota low, waiting before next request")
			f.sleepFor(wait)
		}

		if err := f.client.Do(ctx, query, variables, out); err != nil {
			return err
		}

		quota := out.Quota()
		f.status = &quota
		return nil
	})
}

func (f *Fetcher) sleepFor(d time.Duration) {
	if f.sleep != nil {
		f.sleep(d)
		return
	}
	time.Sleep(d)
}

// fetchProfileAndIssues loads the account profile together with the created
// issues connection; the profile fields repeat on every page, so they are
// taken from the first one.
func (f *Fetcher) fetchProfileAndIssues(ctx context.Context, login string, window models.AnalysisWindow) (models.Profile, []models.Issue, error) {
	var (
		profile models.Profile
		issues  []models.Issue
		cursor  string
	)

	for page := 1; page <= f.maxPages; page++ {
		variables := map[string]any{
			"login": login,
			"since": window.Start.Format(time.RFC3339),
			"first": f.pageSize,
		}
		if cursor != "" {
			variables["after"] = cursor
		}

		var data profileData
		if err := f.do(ctx, profileQuery, variables, &data); err != nil {
			return models.Profile{}, nil, err
		}
		if data.User == nil {
			return models.Profile{}, nil, NewPermanentError(http.StatusNotFound, fmt.Sprintf("user %q not found", login), nil)
		}

		if page == 1 {
			profile = models.Profile{
				Login:       data.User.Login,
				CreatedAt:   data.User.CreatedAt,
				Bio:         data.User.Bio,
				Company:     data.User.Company,
				Location:    data.User.Location,
				WebsiteURL:  data.User.WebsiteURL,
				Followers:   data.User.Followers.TotalCount,
				PublicRepos: data.User.Repositories.TotalCount,
			}
		}

		for _, node := range data.User.Issues.Nodes {
			issues = append(issues, models.Issue{
				CreatedAt:     node.CreatedAt,
				CommentCount:  node.Comments.TotalCount,
				ReactionCount: node.Reactions.TotalCount,
				Repo:          convertRepository(node.Repository),
			})
		}

		f.logger.WithFields(logrus.Fields{
			"login":  login,
			"page":   page,
			"issues": len(data.User.Issues.Nodes),
		}).Debug("Fetched issues page")

		if !data.User.Issues.PageInfo.HasNextPage {
			break
		}
		cursor = data.User.Issues.PageInfo.EndCursor
	}

	return profile, issues, nil
}

// fetchPullRequests pages through the PR search connection. Search results
// mix node kinds, so nodes are filtered on the __typename tag.
func (f *Fetcher) fetchPullRequests(ctx context.Context, login string, window models.AnalysisWindow) ([]models.PullRequest, error) {
	searchQuery := fmt.Sprintf("author:%s is:pr created:>=%s", login, window.Start.Format("2006-01-02"))

	var (
		prs    []models.PullRequest
		cursor string
	)

	for page := 1; page <= f.maxPages; page++ {
		variables := map[string]any{
			"searchQuery": searchQuery,
			"first":       f.pageSize,
		}
		if cursor != "" {
			variables["after"] = cursor
		}

		var data prSearchData
		if err := f.do(ctx, prSearchQuery, variables, &data); err != nil {
			return nil, err
		}

		for _, node := range data.Search.Nodes {
			if node.Typename != "PullRequest" {
				continue
			}
			pr := models.PullRequest{
				State:     node.State,
				Merged:    node.State == models.PRStateMerged,
				CreatedAt: node.CreatedAt,
				MergedAt:  node.MergedAt,
				Additions: node.Additions,
				Deletions: node.Deletions,
				Repo:      convertRepository(node.Repository),
			}
			if node.MergedBy != nil {
				pr.MergedBy = node.MergedBy.Login
			}
			prs = append(prs, pr)
		}

		f.logger.WithFields(logrus.Fields{
			"login": login,
			"page":  page,
			"nodes": len(data.Search.Nodes),
			"total": data.Search.IssueCount,
		}).Debug("Fetched pull request page")

		if !data.Search.PageInfo.HasNextPage {
			break
		}
		cursor = data.Search.PageInfo.EndCursor
	}

	return prs, nil
}

// fetchComments pages through the issue comments connection.
func (f *Fetcher) fetchComments(ctx context.Context, login string) ([]models.IssueComment, error) {
	var (
		comments []models.IssueComment
		cursor   string
	)

	for page := 1; page <= f.maxPages; page++ {
		variables := map[string]any{
			"login": login,
			"first": f.pageSize,
		}
		if cursor != "" {
			variables["after"] = cursor
		}

		var data commentsData
		if err := f.do(ctx, commentsQuery, variables, &data); err != nil {
			return nil, err
		}
		if data.User == nil {
			return nil, NewPermanentError(http.StatusNotFound, fmt.Sprintf("user %q not found", login), nil)
		}

		for _, node := range data.User.IssueComments.Nodes {
			comment := models.IssueComment{
				CreatedAt:     node.CreatedAt,
				OnPullRequest: node.PullRequest != nil,
				Repo:          convertRepository(node.Issue.Repository),
			}
			if node.PullRequest != nil && node.PullRequest.Author != nil {
				comment.IssueAuthor = node.PullRequest.Author.Login
			} else if node.Issue.Author != nil {
				comment.IssueAuthor = node.Issue.Author.Login
			}
			for _, r := range node.Reactions.Nodes {
				comment.Reactions = append(comment.Reactions, models.Reaction{Content: r.Content})
			}
			comments = append(comments, comment)
		}

		f.logger.WithFields(logrus.Fields{
			"login":    login,
			"page":     page,
			"comments": len(data.User.IssueComments.Nodes),
		}).Debug("Fetched comments page")

		if !data.User.IssueComments.PageInfo.HasNextPage {
			break
		}
		cursor = data.User.IssueComments.PageInfo.EndCursor
	}

	return comments, nil
}

func convertRepository(node repositoryNode) models.Repository {
	return models.Repository{
		Owner: node.Owner.Login,
		Name:  node.Name,
		Stars: node.StargazerCount,
	}
}

func filterPullRequests(prs []models.PullRequest, window models.AnalysisWindow) []models.PullRequest {
	filtered := make([]models.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.CreatedAt.Before(window.Start) {
			continue
		}
		filtered = append(filtered, pr)
	}
	return filtered
}

func filterComments(comments []models.IssueComment, window models.AnalysisWindow) []models.IssueComment {
	filtered := make([]models.IssueComment, 0, len(comments))
	for _, c := range comments {
		if c.CreatedAt.Before(window.Start) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func filterIssues(issues []models.Issue, window models.AnalysisWindow) []models.Issue {
	filtered := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.CreatedAt.Before(window.Start) {
			continue
		}
		filtered = append(filtered, issue)
	}
	return filtered
}
