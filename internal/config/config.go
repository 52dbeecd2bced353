package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prgate/prgate/internal/models"
)

// Thresholds holds the configured floor (or ceiling, for negative reactions)
// of every evaluated metric.
type Thresholds struct {
	MergedPRs           int
	MergeRate           float64
	QualityRepos        int
	PositiveReactions   int
	NegativeReactions   int // maximum allowed
	AccountAgeDays      int
	ActivityConsistency float64
	IssueEngagement     int
	CodeReviews         int
	UniqueMergers       int
	RepoMergedPRs       int
	ProfileScore        int
}

// Config is the full evaluation configuration, loaded from the environment.
type Config struct {
	GitHubToken     string
	Port            string
	WindowMonths    int
	NewAccountDays  int
	MinimumStars    int
	SpamDetection   bool
	RequiredMetrics []models.Metric
	Thresholds      Thresholds
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
		Port:        getEnv("PORT", "8080"),
	}

	var err error
	if cfg.WindowMonths, err = getEnvInt("ANALYSIS_WINDOW_MONTHS", 12); err != nil {
		return nil, err
	}
	if cfg.NewAccountDays, err = getEnvInt("NEW_ACCOUNT_DAYS", 90); err != nil {
		return nil, err
	}
	if cfg.MinimumStars, err = getEnvInt("MINIMUM_STARS", 100); err != nil {
		return nil, err
	}
	if cfg.SpamDetection, err = getEnvBool("SPAM_DETECTION", true); err != nil {
		return nil, err
	}

	t := &cfg.Thresholds
	if t.MergedPRs, err = getEnvInt("MIN_MERGED_PRS", 2); err != nil {
		return nil, err
	}
	if t.MergeRate, err = getEnvFloat("MIN_MERGE_RATE", 0.5); err != nil {
		return nil, err
	}
	if t.QualityRepos, err = getEnvInt("MIN_QUALITY_REPOS", 1); err != nil {
		return nil, err
	}
	if t.PositiveReactions, err = getEnvInt("MIN_POSITIVE_REACTIONS", 0); err != nil {
		return nil, err
	}
	if t.NegativeReactions, err = getEnvInt("MAX_NEGATIVE_REACTIONS", 5); err != nil {
		return nil, err
	}
	if t.AccountAgeDays, err = getEnvInt("MIN_ACCOUNT_AGE_DAYS", 30); err != nil {
		return nil, err
	}
	if t.ActivityConsistency, err = getEnvFloat("MIN_ACTIVITY_CONSISTENCY", 0.25); err != nil {
		return nil, err
	}
	if t.IssueEngagement, err = getEnvInt("MIN_ISSUE_ENGAGEMENT", 0); err != nil {
		return nil, err
	}
	if t.CodeReviews, err = getEnvInt("MIN_CODE_REVIEWS", 0); err != nil {
		return nil, err
	}
	if t.UniqueMergers, err = getEnvInt("MIN_UNIQUE_MERGERS", 1); err != nil {
		return nil, err
	}
	if t.RepoMergedPRs, err = getEnvInt("MIN_REPO_MERGED_PRS", 0); err != nil {
		return nil, err
	}
	if t.ProfileScore, err = getEnvInt("MIN_PROFILE_SCORE", 20); err != nil {
		return nil, err
	}

	cfg.RequiredMetrics, err = parseRequiredMetrics(getEnv("REQUIRED_METRICS", ""))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ThresholdFor returns the configured threshold for a metric. The switch is
// exhaustive over the metric set; suspicious patterns carry no numeric
// threshold and report 0.
func (c *Config) ThresholdFor(m models.Metric) float64 {
	t := c.Thresholds
	switch m {
	case models.MetricMergedPRs:
		return float64(t.MergedPRs)
	case models.MetricMergeRate:
		return t.MergeRate
	case models.MetricQualityRepos:
		return float64(t.QualityRepos)
	case models.MetricPositiveReactions:
		return float64(t.PositiveReactions)
	case models.MetricNegativeReactions:
		return float64(t.NegativeReactions)
	case models.MetricAccountAge:
		return float64(t.AccountAgeDays)
	case models.MetricActivityConsistency:
		return t.ActivityConsistency
	case models.MetricIssueEngagement:
		return float64(t.IssueEngagement)
	case models.MetricCodeReviews:
		return float64(t.CodeReviews)
	case models.MetricUniqueMergers:
		return float64(t.UniqueMergers)
	case models.MetricRepoMergedPRs:
		return float64(t.RepoMergedPRs)
	case models.MetricProfileScore:
		return float64(t.ProfileScore)
	case models.MetricSuspiciousPatterns:
		return 0
	}
	return 0
}

func parseRequiredMetrics(raw string) ([]models.Metric, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var required []models.Metric
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		m, ok := models.ParseMetric(name)
		if !ok {
			return nil, fmt.Errorf("unknown required metric %q", name)
		}
		required = append(required, m)
	}
	return required, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
