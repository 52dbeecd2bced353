package metrics

import (
	"fmt"

	"github.com/prgate/prgate/internal/models"
)

// Rule thresholds for the suspicious pattern detector. All comparisons are
// strict, so hitting a threshold exactly does not fire the rule.
const (
	spamMaxAccountAgeDays = 30
	spamMinTotalPRs       = 25
	spamMinUniqueRepos    = 10

	highPRRateLimit = 2.0

	selfMergeRateLimit      = 0.5
	lowQualityMergeShare    = 0.5
	repoSpamMinUniqueRepos  = 10
	repoSpamMaxAverageStars = 10.0
)

// DetectSuspiciousPatterns runs the cross-metric rule engine over four
// extractor outputs. Rules are evaluated in a fixed order and each appends at
// most one pattern; all four may fire at once. The computed rate falls back
// to the raw PR count when the account age is zero days; that keeps the
// historical behavior of the rule even though it mixes a count into a
// per-day rate.
func DetectSuspiciousPatterns(
	pr models.PRHistoryData,
	quality models.RepoQualityData,
	account models.AccountData,
	mergers models.MergerDiversityData,
) models.SuspiciousPatternData {
	prRate := float64(pr.TotalPRs)
	if account.AgeInDays > 0 {
		prRate = float64(pr.TotalPRs) / float64(account.AgeInDays)
	}

	data := models.SuspiciousPatternData{
		PRRate:           prRate,
		UniqueRepoCount:  quality.UniqueRepoCount,
		SelfMergeRate:    mergers.SelfMergeRate,
		AccountAgeInDays: account.AgeInDays,
	}

	if account.AgeInDays < spamMaxAccountAgeDays &&
		pr.TotalPRs > spamMinTotalPRs &&
		quality.UniqueRepoCount > spamMinUniqueRepos {
		data.DetectedPatterns = append(data.DetectedPatterns, models.SuspiciousPattern{
			Type:     models.PatternSpam,
			Severity: models.SeverityCritical,
			Description: fmt.Sprintf(
				"account is %d days old with %d PRs across %d repositories",
				account.AgeInDays, pr.TotalPRs, quality.UniqueRepoCount),
			Evidence: map[string]float64{
				"account_age_days":   float64(account.AgeInDays),
				"account_age_limit":  spamMaxAccountAgeDays,
				"total_prs":          float64(pr.TotalPRs),
				"total_prs_limit":    spamMinTotalPRs,
				"unique_repos":       float64(quality.UniqueRepoCount),
				"unique_repos_limit": spamMinUniqueRepos,
			},
		})
	}

	if prRate > highPRRateLimit {
		data.DetectedPatterns = append(data.DetectedPatterns, models.SuspiciousPattern{
			Type:     models.PatternHighPRRate,
			Severity: models.SeverityWarning,
			Description: fmt.Sprintf(
				"pull request rate of %.2f per day exceeds %.1f",
				prRate, highPRRateLimit),
			Evidence: map[string]float64{
				"pr_rate":       prRate,
				"pr_rate_limit": highPRRateLimit,
			},
		})
	}

	if mergers.TotalMergedPRs > 0 && mergers.SelfMergeRate > selfMergeRateLimit {
		lowQualityShare := float64(quality.LowQualityMergedPRs) / float64(mergers.TotalMergedPRs)
		if lowQualityShare > lowQualityMergeShare {
			data.DetectedPatterns = append(data.DetectedPatterns, models.SuspiciousPattern{
				Type:     models.PatternSelfMergeAbuse,
				Severity: models.SeverityCritical,
				Description: fmt.Sprintf(
					"%.0f%% of merges are self-merges and %.0f%% of merged PRs target repositories with fewer than %d stars",
					mergers.SelfMergeRate*100, lowQualityShare*100, lowQualityStars),
				Evidence: map[string]float64{
					"self_merge_rate":         mergers.SelfMergeRate,
					"self_merge_rate_limit":   selfMergeRateLimit,
					"low_quality_share":       lowQualityShare,
					"low_quality_share_limit": lowQualityMergeShare,
					"total_merged_prs":        float64(mergers.TotalMergedPRs),
				},
			})
		}
	}

	if quality.UniqueRepoCount > repoSpamMinUniqueRepos && quality.AverageRepoStars < repoSpamMaxAverageStars {
		data.DetectedPatterns = append(data.DetectedPatterns, models.SuspiciousPattern{
			Type:     models.PatternRepoSpam,
			Severity: models.SeverityWarning,
			Description: fmt.Sprintf(
				"%d repositories targeted with an average of %.1f stars",
				quality.UniqueRepoCount, quality.AverageRepoStars),
			Evidence: map[string]float64{
				"unique_repos":        float64(quality.UniqueRepoCount),
				"unique_repos_limit":  repoSpamMinUniqueRepos,
				"average_stars":       quality.AverageRepoStars,
				"average_stars_limit": repoSpamMaxAverageStars,
			},
		})
	}

	return data
}
