package models

import "time"

// Metric identifies one evaluated check. Keeping this a closed set means the
// threshold comparison, recommendation mapping and display code all dispatch
// on the same identifiers instead of loose strings.
type Metric string

const (
	MetricMergedPRs           Metric = "mergedPRs"
	MetricMergeRate           Metric = "mergeRate"
	MetricQualityRepos        Metric = "qualityRepos"
	MetricPositiveReactions   Metric = "positiveReactions"
	MetricNegativeReactions   Metric = "negativeReactions"
	MetricAccountAge          Metric = "accountAge"
	MetricActivityConsistency Metric = "activityConsistency"
	MetricIssueEngagement     Metric = "issueEngagement"
	MetricCodeReviews         Metric = "codeReviews"
	MetricUniqueMergers       Metric = "uniqueMergers"
	MetricRepoMergedPRs       Metric = "repoMergedPRs"
	MetricProfileScore        Metric = "profileScore"
	MetricSuspiciousPatterns  Metric = "suspiciousPatterns"
)

// AllMetrics is the fixed evaluation and reporting order. Result ordering is
// driven by this list, never by map iteration.
var AllMetrics = []Metric{
	MetricMergedPRs,
	MetricMergeRate,
	MetricQualityRepos,
	MetricPositiveReactions,
	MetricNegativeReactions,
	MetricAccountAge,
	MetricActivityConsistency,
	MetricIssueEngagement,
	MetricCodeReviews,
	MetricUniqueMergers,
	MetricRepoMergedPRs,
	MetricProfileScore,
	MetricSuspiciousPatterns,
}

// ParseMetric maps a configured metric name to its identifier.
func ParseMetric(name string) (Metric, bool) {
	for _, m := range AllMetrics {
		if string(m) == name {
			return m, true
		}
	}
	return "", false
}

// MetricCheckResult is the outcome of comparing one metric against its
// configured threshold.
type MetricCheckResult struct {
	Name       Metric         `json:"name"`
	Value      float64        `json:"value"`
	Threshold  float64        `json:"threshold"`
	Passed     bool           `json:"passed"`
	Details    string         `json:"details"`
	DataPoints map[string]any `json:"data_points,omitempty"`
}

// RawMetrics bundles every extractor output plus the detector output, kept on
// the result so renderers can show the underlying numbers.
type RawMetrics struct {
	PRHistory       PRHistoryData         `json:"pr_history"`
	RepoQuality     RepoQualityData       `json:"repo_quality"`
	Reactions       ReactionData          `json:"reactions"`
	Account         AccountData           `json:"account"`
	CommentActivity CommentActivityData   `json:"comment_activity"`
	IssueEngagement IssueEngagementData   `json:"issue_engagement"`
	CodeReview      CodeReviewData        `json:"code_review"`
	MergerDiversity MergerDiversityData   `json:"merger_diversity"`
	RepoHistory     RepoHistoryData       `json:"repo_history"`
	Profile         ProfileData           `json:"profile"`
	Patterns        SuspiciousPatternData `json:"patterns"`
}

// AnalysisResult is the engine's sole output: the verdict, every per-metric
// result, and ranked remediation suggestions. It is immutable once returned.
type AnalysisResult struct {
	Passed          bool                `json:"passed"`
	PassedCount     int                 `json:"passed_count"`
	TotalMetrics    int                 `json:"total_metrics"`
	Metrics         []MetricCheckResult `json:"metrics"`
	FailedMetrics   []Metric            `json:"failed_metrics"`
	Recommendations []string            `json:"recommendations"`
	IsNewAccount    bool                `json:"is_new_account"`
	HasLimitedData  bool                `json:"has_limited_data"`
	DataWindowStart time.Time           `json:"data_window_start"`
	DataWindowEnd   time.Time           `json:"data_window_end"`
	Raw             RawMetrics          `json:"raw_metrics"`
}
