// Package metrics derives typed per-domain metric data from a contributor
// activity snapshot. Every extractor is a pure function: side-effect free and
// deterministic for identical input, so each one can be tested in isolation.
package metrics

import (
	"sort"
	"strings"

	"github.com/prgate/prgate/internal/models"
)

// lowQualityStars is the star floor below which a repository counts as low
// quality for the self-merge-abuse and repo-spam rules.
const lowQualityStars = 10

// topRepoCount bounds the "top repos by stars" list.
const topRepoCount = 5

// ExtractPRHistory computes pull request outcome counts and the merge rate.
// Open PRs are excluded from the denominator; zero resolved PRs yields a
// merge rate of 0, not NaN.
func ExtractPRHistory(s *models.ContributorActivitySnapshot) models.PRHistoryData {
	data := models.PRHistoryData{TotalPRs: len(s.PullRequests)}

	for _, pr := range s.PullRequests {
		switch {
		case pr.Merged:
			data.MergedPRs++
		case pr.State == models.PRStateOpen:
			data.OpenPRs++
		default:
			data.ClosedPRs++
		}
	}

	if resolved := data.MergedPRs + data.ClosedPRs; resolved > 0 {
		data.MergeRate = float64(data.MergedPRs) / float64(resolved)
	}
	return data
}

// ExtractRepoQuality groups pull requests by repository and scores the
// repositories they target. A repo qualifies when it has at least one merged
// PR and meets the configured star floor. Ties in the top-repos ranking keep
// encounter order.
func ExtractRepoQuality(s *models.ContributorActivitySnapshot, minimumStars int) models.RepoQualityData {
	var (
		order []string
		byKey = make(map[string]*models.RepoActivity)
	)

	for _, pr := range s.PullRequests {
		key := pr.Repo.Key()
		entry, ok := byKey[key]
		if !ok {
			entry = &models.RepoActivity{Repo: pr.Repo}
			byKey[key] = entry
			order = append(order, key)
		}
		entry.TotalPRs++
		if pr.Merged {
			entry.MergedPRs++
		}
	}

	data := models.RepoQualityData{UniqueRepoCount: len(order)}

	var starSum int
	for _, key := range order {
		entry := byKey[key]
		starSum += entry.Repo.Stars
		if entry.MergedPRs > 0 && entry.Repo.Stars >= minimumStars {
			data.QualityRepoCount++
		}
	}
	if len(order) > 0 {
		data.AverageRepoStars = float64(starSum) / float64(len(order))
	}

	for _, pr := range s.PullRequests {
		if pr.Merged && pr.Repo.Stars < lowQualityStars {
			data.LowQualityMergedPRs++
		}
	}

	ranked := make([]models.RepoActivity, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *byKey[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Repo.Stars > ranked[j].Repo.Stars
	})
	if len(ranked) > topRepoCount {
		ranked = ranked[:topRepoCount]
	}
	data.TopRepos = ranked

	return data
}

// ExtractRepoHistory computes the same outcome summary as ExtractPRHistory
// but scoped to the repository receiving the PR under evaluation.
func ExtractRepoHistory(s *models.ContributorActivitySnapshot, prCtx models.PRContext) models.RepoHistoryData {
	data := models.RepoHistoryData{
		Owner: prCtx.Owner,
		Repo:  prCtx.Repo,
	}

	for _, pr := range s.PullRequests {
		if !strings.EqualFold(pr.Repo.Owner, prCtx.Owner) || !strings.EqualFold(pr.Repo.Name, prCtx.Repo) {
			continue
		}
		data.TotalPRs++
		switch {
		case pr.Merged:
			data.MergedPRs++
		case pr.State != models.PRStateOpen:
			data.ClosedPRs++
		}
	}

	if resolved := data.MergedPRs + data.ClosedPRs; resolved > 0 {
		data.MergeRate = float64(data.MergedPRs) / float64(resolved)
	}
	data.IsFirstTimeContributor = data.MergedPRs == 0

	return data
}
