package models

import "time"

// PRHistoryData summarizes the contributor's pull request outcomes.
type PRHistoryData struct {
	TotalPRs  int     `json:"total_prs"`
	OpenPRs   int     `json:"open_prs"`
	MergedPRs int     `json:"merged_prs"`
	ClosedPRs int     `json:"closed_prs"` // closed without merge
	MergeRate float64 `json:"merge_rate"` // merged / (merged + closed), 0 when no resolved PRs
}

// RepoActivity is per-repository aggregation used by the quality extractor.
type RepoActivity struct {
	Repo      Repository `json:"repo"`
	TotalPRs  int        `json:"total_prs"`
	MergedPRs int        `json:"merged_prs"`
}

// RepoQualityData summarizes the repositories the contributor's PRs target.
type RepoQualityData struct {
	UniqueRepoCount     int            `json:"unique_repo_count"`
	AverageRepoStars    float64        `json:"average_repo_stars"`
	QualityRepoCount    int            `json:"quality_repo_count"`
	LowQualityMergedPRs int            `json:"low_quality_merged_prs"`
	TopRepos            []RepoActivity `json:"top_repos"` // top 5 by stars, encounter order on ties
}

// ReactionData classifies reactions received on the contributor's comments.
type ReactionData struct {
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	Neutral       int     `json:"neutral"`
	Total         int     `json:"total"`
	PositiveRatio float64 `json:"positive_ratio"` // 0.5 when no reactions exist
}

// AccountData captures account age and activity consistency.
type AccountData struct {
	CreatedAt        time.Time `json:"created_at"`
	AgeInDays        int       `json:"age_in_days"`
	ActiveMonths     int       `json:"active_months"`
	WindowMonths     int       `json:"window_months"`
	ConsistencyScore float64   `json:"consistency_score"`
	IsNewAccount     bool      `json:"is_new_account"`
}

// CommentActivityData summarizes overall commenting volume and reception.
type CommentActivityData struct {
	TotalComments         int     `json:"total_comments"`
	CommentsWithReactions int     `json:"comments_with_reactions"`
	AverageReactions      float64 `json:"average_reactions"`
}

// IssueEngagementData summarizes issues the contributor opened and whether
// anyone engaged with them.
type IssueEngagementData struct {
	IssuesCreated   int     `json:"issues_created"`
	EngagedIssues   int     `json:"engaged_issues"`
	AverageComments float64 `json:"average_comments"`
}

// CodeReviewData counts participation in other people's pull requests.
type CodeReviewData struct {
	ReviewComments  int `json:"review_comments"`
	ReposReviewedIn int `json:"repos_reviewed_in"`
}

// MergerDiversityData records who merged the contributor's PRs. A self-merge
// on an external repository indicates merge privilege earned elsewhere and is
// a positive signal; only-self-merges-on-own-repos is the strongest negative
// one.
type MergerDiversityData struct {
	TotalMergedPRs            int     `json:"total_merged_prs"`
	UniqueMergers             int     `json:"unique_mergers"` // distinct non-self mergers
	SelfMerges                int     `json:"self_merges"`
	SelfMergesOnOwnRepos      int     `json:"self_merges_on_own_repos"`
	SelfMergesOnExternalRepos int     `json:"self_merges_on_external_repos"`
	OthersMergeCount          int     `json:"others_merge_count"`
	SelfMergeRate             float64 `json:"self_merge_rate"`
	OnlySelfMergesOnOwnRepos  bool    `json:"only_self_merges_on_own_repos"`
}

// RepoHistoryData is PR history scoped to the repository receiving the PR
// under evaluation.
type RepoHistoryData struct {
	Owner                  string  `json:"owner"`
	Repo                   string  `json:"repo"`
	TotalPRs               int     `json:"total_prs"`
	MergedPRs              int     `json:"merged_prs"`
	ClosedPRs              int     `json:"closed_prs"`
	MergeRate              float64 `json:"merge_rate"`
	IsFirstTimeContributor bool    `json:"is_first_time_contributor"`
}

// ProfileData is the additive 0-100 profile completeness score plus the
// fields that fed it. Location and website are tracked but score nothing.
type ProfileData struct {
	Followers   int  `json:"followers"`
	PublicRepos int  `json:"public_repos"`
	HasBio      bool `json:"has_bio"`
	HasCompany  bool `json:"has_company"`
	HasLocation bool `json:"has_location"`
	HasWebsite  bool `json:"has_website"`
	Score       int  `json:"score"`
}

// PatternSeverity grades a detected suspicious pattern.
type PatternSeverity string

const (
	SeverityCritical PatternSeverity = "CRITICAL"
	SeverityWarning  PatternSeverity = "WARNING"
)

// PatternType identifies one of the behavioral rules.
type PatternType string

const (
	PatternSpam           PatternType = "SPAM_PATTERN"
	PatternHighPRRate     PatternType = "HIGH_PR_RATE"
	PatternSelfMergeAbuse PatternType = "SELF_MERGE_ABUSE"
	PatternRepoSpam       PatternType = "REPO_SPAM"
)

// SuspiciousPattern is one fired rule with the literal values that fired it.
type SuspiciousPattern struct {
	Type        PatternType        `json:"type"`
	Severity    PatternSeverity    `json:"severity"`
	Description string             `json:"description"`
	Evidence    map[string]float64 `json:"evidence"`
}

// SuspiciousPatternData is the detector's full output.
type SuspiciousPatternData struct {
	DetectedPatterns []SuspiciousPattern `json:"detected_patterns"`
	PRRate           float64             `json:"pr_rate"`
	UniqueRepoCount  int                 `json:"unique_repo_count"`
	SelfMergeRate    float64             `json:"self_merge_rate"`
	AccountAgeInDays int                 `json:"account_age_in_days"`
}

// HasCritical reports whether any detected pattern is CRITICAL. A critical
// pattern forces the overall verdict to fail regardless of thresholds.
func (d SuspiciousPatternData) HasCritical() bool {
	for _, p := range d.DetectedPatterns {
		if p.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
