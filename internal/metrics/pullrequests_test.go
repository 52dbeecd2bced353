package metrics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prgate/prgate/internal/models"
)

func TestExtractPRHistory(t *testing.T) {
	repo := models.Repository{Owner: "acme", Name: "lib", Stars: 500}

	t.Run("counts outcomes and excludes open PRs from the merge rate", func(t *testing.T) {
		var prs []models.PullRequest
		prs = append(prs, repeatPRs(8, func(int) models.PullRequest { return mergedPR("maintainer", repo) })...)
		prs = append(prs, repeatPRs(2, func(int) models.PullRequest { return closedPR(repo) })...)
		prs = append(prs, openPR(repo))

		data := ExtractPRHistory(testSnapshot(prs...))
		assert.Equal(t, 11, data.TotalPRs)
		assert.Equal(t, 8, data.MergedPRs)
		assert.Equal(t, 2, data.ClosedPRs)
		assert.Equal(t, 1, data.OpenPRs)
		assert.InDelta(t, 0.8, data.MergeRate, 1e-9)
	})

	t.Run("zero resolved PRs yields rate 0", func(t *testing.T) {
		data := ExtractPRHistory(testSnapshot(openPR(repo)))
		assert.Equal(t, 0.0, data.MergeRate)
	})

	t.Run("empty snapshot yields rate 0", func(t *testing.T) {
		data := ExtractPRHistory(testSnapshot())
		assert.Equal(t, 0, data.TotalPRs)
		assert.Equal(t, 0.0, data.MergeRate)
	})

	t.Run("rate stays within bounds", func(t *testing.T) {
		for merged := 0; merged <= 3; merged++ {
			for closed := 0; closed <= 3; closed++ {
				var prs []models.PullRequest
				prs = append(prs, repeatPRs(merged, func(int) models.PullRequest { return mergedPR("m", repo) })...)
				prs = append(prs, repeatPRs(closed, func(int) models.PullRequest { return closedPR(repo) })...)
				data := ExtractPRHistory(testSnapshot(prs...))
				assert.GreaterOrEqual(t, data.MergeRate, 0.0)
				assert.LessOrEqual(t, data.MergeRate, 1.0)
			}
		}
	})
}

func TestExtractRepoQuality(t *testing.T) {
	big := models.Repository{Owner: "acme", Name: "lib", Stars: 500}
	small := models.Repository{Owner: "alice", Name: "toy", Stars: 2}

	t.Run("quality repos need a merged PR and the star floor", func(t *testing.T) {
		data := ExtractRepoQuality(testSnapshot(
			mergedPR("maintainer", big),
			mergedPR("alice", small),
			closedPR(models.Repository{Owner: "other", Name: "popular", Stars: 9000}),
		), 100)

		assert.Equal(t, 3, data.UniqueRepoCount)
		assert.Equal(t, 1, data.QualityRepoCount) // popular has no merged PR, toy is below the floor
		assert.InDelta(t, (500.0+2.0+9000.0)/3.0, data.AverageRepoStars, 1e-9)
		assert.Equal(t, 1, data.LowQualityMergedPRs)
	})

	t.Run("repository identity is case-insensitive", func(t *testing.T) {
		data := ExtractRepoQuality(testSnapshot(
			mergedPR("m", models.Repository{Owner: "Acme", Name: "Lib", Stars: 500}),
			mergedPR("m", models.Repository{Owner: "acme", Name: "lib", Stars: 500}),
		), 100)
		assert.Equal(t, 1, data.UniqueRepoCount)
	})

	t.Run("top repos are ranked by stars with encounter order ties", func(t *testing.T) {
		var prs []models.PullRequest
		for i := 0; i < 7; i++ {
			stars := 10
			if i == 3 {
				stars = 100
			}
			prs = append(prs, mergedPR("m", models.Repository{Owner: "o", Name: fmt.Sprintf("repo-%d", i), Stars: stars}))
		}
		data := ExtractRepoQuality(testSnapshot(prs...), 100)

		require.Len(t, data.TopRepos, 5)
		assert.Equal(t, "repo-3", data.TopRepos[0].Repo.Name)
		// Remaining slots keep encounter order among equal-star repos.
		assert.Equal(t, "repo-0", data.TopRepos[1].Repo.Name)
		assert.Equal(t, "repo-1", data.TopRepos[2].Repo.Name)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		data := ExtractRepoQuality(testSnapshot(), 100)
		assert.Equal(t, 0, data.UniqueRepoCount)
		assert.Equal(t, 0.0, data.AverageRepoStars)
		assert.Empty(t, data.TopRepos)
	})
}

func TestExtractRepoHistory(t *testing.T) {
	target := models.Repository{Owner: "acme", Name: "lib", Stars: 500}
	other := models.Repository{Owner: "other", Name: "thing", Stars: 50}
	prCtx := models.PRContext{Owner: "acme", Repo: "lib", PRNumber: 7, Author: "alice"}

	t.Run("scopes history to the target repository", func(t *testing.T) {
		data := ExtractRepoHistory(testSnapshot(
			mergedPR("maintainer", target),
			closedPR(target),
			openPR(target),
			mergedPR("maintainer", other),
		), prCtx)

		assert.Equal(t, 3, data.TotalPRs)
		assert.Equal(t, 1, data.MergedPRs)
		assert.Equal(t, 1, data.ClosedPRs)
		assert.InDelta(t, 0.5, data.MergeRate, 1e-9)
		assert.False(t, data.IsFirstTimeContributor)
	})

	t.Run("repository match is case-insensitive", func(t *testing.T) {
		data := ExtractRepoHistory(testSnapshot(
			mergedPR("maintainer", models.Repository{Owner: "Acme", Name: "Lib", Stars: 500}),
		), prCtx)
		assert.Equal(t, 1, data.MergedPRs)
	})

	t.Run("no merged PRs means first-time contributor", func(t *testing.T) {
		data := ExtractRepoHistory(testSnapshot(mergedPR("m", other)), prCtx)
		assert.Equal(t, 0, data.TotalPRs)
		assert.True(t, data.IsFirstTimeContributor)
	})
}
