package metrics

import (
	"strings"

	"github.com/prgate/prgate/internal/models"
)

// ExtractMergerDiversity records who merged the contributor's PRs. Login
// comparison is case-insensitive. A self-merge on a repository the
// contributor does not own means somebody granted them merge rights there,
// which is a positive signal; only-self-merges-on-own-repos is the strongest
// negative one.
func ExtractMergerDiversity(s *models.ContributorActivitySnapshot) models.MergerDiversityData {
	var data models.MergerDiversityData

	mergers := make(map[string]bool)
	for _, pr := range s.PullRequests {
		if !pr.Merged {
			continue
		}
		data.TotalMergedPRs++

		if pr.MergedBy != "" && strings.EqualFold(pr.MergedBy, s.Login) {
			data.SelfMerges++
			if pr.Repo.IsOwnedBy(s.Login) {
				data.SelfMergesOnOwnRepos++
			} else {
				data.SelfMergesOnExternalRepos++
			}
			continue
		}

		data.OthersMergeCount++
		if pr.MergedBy != "" {
			mergers[strings.ToLower(pr.MergedBy)] = true
		}
	}

	data.UniqueMergers = len(mergers)
	if data.TotalMergedPRs > 0 {
		data.SelfMergeRate = float64(data.SelfMerges) / float64(data.TotalMergedPRs)
	}
	data.OnlySelfMergesOnOwnRepos = data.TotalMergedPRs > 0 &&
		data.SelfMergesOnOwnRepos == data.TotalMergedPRs &&
		data.OthersMergeCount == 0

	return data
}
