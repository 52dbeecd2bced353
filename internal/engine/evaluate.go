package engine

import (
	"fmt"

	"github.com/prgate/prgate/internal/models"
)

// evaluate compares every extracted metric against its configured threshold,
// in the fixed order of models.AllMetrics. Most checks are floor comparisons;
// negative reactions is a ceiling, and suspicious patterns has no numeric
// threshold at all. States with no data to judge (no resolved PRs, no merged
// PRs, no history in the target repo) pass only when the configured
// threshold is itself zero: absence of data is neutral, not a failure.
func (e *Engine) evaluate(raw models.RawMetrics) []models.MetricCheckResult {
	results := make([]models.MetricCheckResult, 0, len(models.AllMetrics))
	for _, metric := range models.AllMetrics {
		results = append(results, e.check(metric, raw))
	}
	return results
}

func (e *Engine) check(metric models.Metric, raw models.RawMetrics) models.MetricCheckResult {
	threshold := e.cfg.ThresholdFor(metric)
	result := models.MetricCheckResult{
		Name:      metric,
		Threshold: threshold,
	}

	switch metric {
	case models.MetricMergedPRs:
		result.Value = float64(raw.PRHistory.MergedPRs)
		result.Passed = result.Value >= threshold
		result.Details = fmt.Sprintf("%d merged pull requests in window (needs %.0f)", raw.PRHistory.MergedPRs, threshold)
		result.DataPoints = map[string]any{
			"total_prs": raw.PRHistory.TotalPRs,
			"open_prs":  raw.PRHistory.OpenPRs,
		}

	case models.MetricMergeRate:
		result.Value = raw.PRHistory.MergeRate
		resolved := raw.PRHistory.MergedPRs + raw.PRHistory.ClosedPRs
		if resolved == 0 {
			result.Passed = threshold == 0
			result.Details = "no resolved pull requests in window"
		} else {
			result.Passed = result.Value >= threshold
			result.Details = fmt.Sprintf("%.0f%% of resolved PRs were merged (needs %.0f%%)", result.Value*100, threshold*100)
		}
		result.DataPoints = map[string]any{"resolved_prs": resolved}

	case models.MetricQualityRepos:
		result.Value = float64(raw.RepoQuality.QualityRepoCount)
		result.Passed = result.Value >= threshold
		result.Details = fmt.Sprintf("%d repositories with merged PRs meet the star floor (needs %.0f)", raw.RepoQuality.QualityRepoCount, threshold)
		result.DataPoints = map[string]any{
			"unique_repos":  raw.RepoQuality.UniqueRepoCount,
			"average_stars": raw.RepoQuality.AverageRepoStars,
		}

	case models.MetricPositiveReactions:
		result.Value = float64(raw.Reactions.Positive)
		result.Passed = result.Value >= threshold
		result.Details = fmt.Sprintf("%d positive reactions received (needs %.0f)", raw.Reactions.Positive, threshold)
		result.DataPoints = map[string]any{
			"positive_ratio":  raw.Reactions.PositiveRatio,
			"total_reactions": raw.Reactions.Total,
		}

	case models.MetricNegativeReactions:
		result.Value = float64(raw.Reactions.Negative)
		result.Passed = result.Value <= threshold
		result.Details = fmt.Sprintf("%d negative reactions received (allows at most %.0f)", raw.Reactions.Negative, threshold)

	case models.MetricAccountAge:
		result.Value = float64(raw.Account.AgeInDays)
		result.Passed = result.Value >= threshold
		result.Details = fmt.Sprintf("account is %d days old (needs %.0f)", raw.Account.AgeInDays, threshold)

	case models.MetricActivityConsistency:
		result.Value = raw.Account.ConsistencyScore
		if raw.Account.WindowMonths == 0 {
			result.Passed = threshold == 0
			result.Details = "no analysis window to measure consistency over"
		} else {
			result.Passed = result.Value >= threshold
			result.Details = fmt.Sprintf("active in %d of %d window months (needs %.0f%%)",
				raw.Account.ActiveMonths, raw.Account.WindowMonths, threshold*100)
		}

	case models.MetricIssueEngagement:
		result.Value = float64(raw.IssueEngagement.EngagedIssues)
		result.Passed = result.Value >= threshold
		result.Details = fmt.Sprintf("%d of %d created issues drew engagement (needs %.0f)",
			raw.IssueEngagement.EngagedIssues, raw.IssueEngagement.IssuesCreated, threshold)

	case models.MetricCodeReviews:
		result.Value = float64(raw.CodeReview.ReviewComments)
		result.Passed = result.Value >= threshold
		result.Details = fmt.Sprintf("%d comments on other people's pull requests (needs %.0f)",
			raw.CodeReview.ReviewComments, threshold)

	case models.MetricUniqueMergers:
		result.Value = float64(raw.MergerDiversity.UniqueMergers)
		switch {
		case raw.MergerDiversity.OnlySelfMergesOnOwnRepos && threshold > 0:
			result.Passed = false
			result.Details = "every merged PR was self-merged on an author-owned repository"
		case raw.MergerDiversity.TotalMergedPRs == 0:
			result.Passed = threshold == 0
			result.Details = "no merged pull requests to derive mergers from"
		default:
			result.Passed = result.Value >= threshold
			result.Details = fmt.Sprintf("%d distinct people merged this author's PRs (needs %.0f)",
				raw.MergerDiversity.UniqueMergers, threshold)
		}
		result.DataPoints = map[string]any{
			"self_merge_rate":         raw.MergerDiversity.SelfMergeRate,
			"self_merges_on_external": raw.MergerDiversity.SelfMergesOnExternalRepos,
		}

	case models.MetricRepoMergedPRs:
		result.Value = float64(raw.RepoHistory.MergedPRs)
		if raw.RepoHistory.TotalPRs == 0 {
			result.Passed = threshold == 0
			result.Details = fmt.Sprintf("first-time contributor to %s/%s", raw.RepoHistory.Owner, raw.RepoHistory.Repo)
		} else {
			result.Passed = result.Value >= threshold
			result.Details = fmt.Sprintf("%d merged PRs in %s/%s (needs %.0f)",
				raw.RepoHistory.MergedPRs, raw.RepoHistory.Owner, raw.RepoHistory.Repo, threshold)
		}

	case models.MetricProfileScore:
		result.Value = float64(raw.Profile.Score)
		result.Passed = result.Value >= threshold
		result.Details = fmt.Sprintf("profile completeness score %d of 100 (needs %.0f)", raw.Profile.Score, threshold)

	case models.MetricSuspiciousPatterns:
		result.Value = float64(len(raw.Patterns.DetectedPatterns))
		result.Passed = !raw.Patterns.HasCritical()
		if len(raw.Patterns.DetectedPatterns) == 0 {
			result.Details = "no suspicious activity patterns detected"
		} else {
			result.Details = describePatterns(raw.Patterns)
		}
	}

	return result
}

func describePatterns(data models.SuspiciousPatternData) string {
	desc := ""
	for i, p := range data.DetectedPatterns {
		if i > 0 {
			desc += "; "
		}
		desc += fmt.Sprintf("[%s] %s: %s", p.Severity, p.Type, p.Description)
	}
	return desc
}
