package metrics

import (
	"strings"

	"github.com/prgate/prgate/internal/models"
)

// ExtractIssueEngagement summarizes the issues the contributor opened and
// whether anyone engaged with them.
func ExtractIssueEngagement(s *models.ContributorActivitySnapshot) models.IssueEngagementData {
	data := models.IssueEngagementData{IssuesCreated: len(s.Issues)}

	var commentSum int
	for _, issue := range s.Issues {
		if issue.CommentCount > 0 || issue.ReactionCount > 0 {
			data.EngagedIssues++
		}
		commentSum += issue.CommentCount
	}
	if data.IssuesCreated > 0 {
		data.AverageComments = float64(commentSum) / float64(data.IssuesCreated)
	}
	return data
}

// ExtractCodeReviews counts comments the contributor left on pull requests
// authored by somebody else, which is the closest public proxy for review
// participation.
func ExtractCodeReviews(s *models.ContributorActivitySnapshot) models.CodeReviewData {
	var data models.CodeReviewData

	repos := make(map[string]bool)
	for _, comment := range s.IssueComments {
		if !comment.OnPullRequest {
			continue
		}
		if comment.IssueAuthor != "" && strings.EqualFold(comment.IssueAuthor, s.Login) {
			continue
		}
		data.ReviewComments++
		repos[comment.Repo.Key()] = true
	}
	data.ReposReviewedIn = len(repos)

	return data
}
