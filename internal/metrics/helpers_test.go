package metrics

import (
	"time"

	"github.com/prgate/prgate/internal/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testSnapshot(prs ...models.PullRequest) *models.ContributorActivitySnapshot {
	return &models.ContributorActivitySnapshot{
		Login:        "alice",
		Window:       models.NewAnalysisWindow(testNow, 12),
		PullRequests: prs,
	}
}

func mergedPR(mergedBy string, repo models.Repository) models.PullRequest {
	return models.PullRequest{
		State:     models.PRStateMerged,
		Merged:    true,
		CreatedAt: testNow.AddDate(0, -1, 0),
		MergedBy:  mergedBy,
		Repo:      repo,
	}
}

func closedPR(repo models.Repository) models.PullRequest {
	return models.PullRequest{
		State:     models.PRStateClosed,
		CreatedAt: testNow.AddDate(0, -1, 0),
		Repo:      repo,
	}
}

func openPR(repo models.Repository) models.PullRequest {
	return models.PullRequest{
		State:     models.PRStateOpen,
		CreatedAt: testNow.AddDate(0, -1, 0),
		Repo:      repo,
	}
}

func repeatPRs(n int, build func(i int) models.PullRequest) []models.PullRequest {
	prs := make([]models.PullRequest, 0, n)
	for i := 0; i < n; i++ {
		prs = append(prs, build(i))
	}
	return prs
}
