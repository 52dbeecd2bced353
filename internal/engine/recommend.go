package engine

import "github.com/prgate/prgate/internal/models"

// newAccountGraceDays suppresses the consistency recommendation for accounts
// too young to have a meaningful activity history.
const newAccountGraceDays = 90

// DeterminePassStatus aggregates per-metric results into the overall verdict.
// With no required metrics configured, every check must pass. Otherwise only
// the named metrics count, and a required name with no matching result passes
// by default so configurations can reference metrics added later.
func DeterminePassStatus(results []models.MetricCheckResult, required []models.Metric) bool {
	if len(required) == 0 {
		for _, r := range results {
			if !r.Passed {
				return false
			}
		}
		return true
	}

	requiredSet := make(map[models.Metric]bool, len(required))
	for _, m := range required {
		requiredSet[m] = true
	}
	for _, r := range results {
		if requiredSet[r.Name] && !r.Passed {
			return false
		}
	}
	return true
}

// recommendationText is the static remediation suggestion per metric.
// Suspicious patterns are handled separately and short-circuit the rest.
var recommendationText = map[models.Metric]string{
	models.MetricMergedPRs:           "Build a track record of merged pull requests in public repositories before submitting here.",
	models.MetricMergeRate:           "Improve the quality of submitted pull requests so more of them are accepted and merged.",
	models.MetricQualityRepos:        "Contribute merged work to established repositories with an existing community.",
	models.MetricPositiveReactions:   "Engage constructively in discussions; positive reactions from others build trust.",
	models.MetricNegativeReactions:   "Review recent interactions that drew negative reactions and adjust tone or content.",
	models.MetricAccountAge:          "This account is very new; continue contributing and re-submit once it has some history.",
	models.MetricActivityConsistency: "Contribute regularly over time rather than in short bursts.",
	models.MetricIssueEngagement:     "Open well-researched issues that invite discussion from maintainers.",
	models.MetricCodeReviews:         "Review and comment on other contributors' pull requests.",
	models.MetricUniqueMergers:       "Have your work reviewed and merged by maintainers other than yourself.",
	models.MetricRepoMergedPRs:       "Start with smaller contributions to this repository to build history with its maintainers.",
	models.MetricProfileScore:        "Complete your profile (bio, affiliation, public repositories) so maintainers can identify you.",
}

const (
	criticalRecommendation = "Suspicious activity patterns were detected on this account. Automated or spam-like contribution behavior must stop before any pull request can be accepted."
	genericRecommendation  = "Increase genuine open-source activity to meet this project's contributor requirements."
)

// GenerateRecommendations produces the priority-ordered remediation list.
// A critical pattern dominates every other failure: it yields a single
// recommendation and nothing else, since per-metric advice is meaningless for
// a spam account. Otherwise failed metrics are walked in result order against
// the static mapping, with one generic fallback when nothing specific
// applied.
func GenerateRecommendations(results []models.MetricCheckResult, raw models.RawMetrics) []string {
	if raw.Patterns.HasCritical() {
		return []string{criticalRecommendation}
	}

	accountAgeFailed := false
	anyFailed := false
	for _, r := range results {
		if r.Passed {
			continue
		}
		anyFailed = true
		if r.Name == models.MetricAccountAge {
			accountAgeFailed = true
		}
	}
	if !anyFailed {
		return nil
	}

	suppressConsistency := accountAgeFailed && raw.Account.AgeInDays < newAccountGraceDays

	var recommendations []string
	for _, r := range results {
		if r.Passed {
			continue
		}
		if r.Name == models.MetricActivityConsistency && suppressConsistency {
			continue
		}
		if text, ok := recommendationText[r.Name]; ok {
			recommendations = append(recommendations, text)
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, genericRecommendation)
	}
	return recommendations
}
