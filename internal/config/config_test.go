package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prgate/prgate/internal/models"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 12, cfg.WindowMonths)
		assert.Equal(t, 90, cfg.NewAccountDays)
		assert.Equal(t, 100, cfg.MinimumStars)
		assert.True(t, cfg.SpamDetection)
		assert.Empty(t, cfg.RequiredMetrics)

		assert.Equal(t, 2, cfg.Thresholds.MergedPRs)
		assert.Equal(t, 0.5, cfg.Thresholds.MergeRate)
		assert.Equal(t, 1, cfg.Thresholds.QualityRepos)
		assert.Equal(t, 5, cfg.Thresholds.NegativeReactions)
		assert.Equal(t, 30, cfg.Thresholds.AccountAgeDays)
		assert.Equal(t, 0.25, cfg.Thresholds.ActivityConsistency)
		assert.Equal(t, 1, cfg.Thresholds.UniqueMergers)
		assert.Equal(t, 20, cfg.Thresholds.ProfileScore)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "ghp_test")
		t.Setenv("ANALYSIS_WINDOW_MONTHS", "6")
		t.Setenv("MIN_MERGE_RATE", "0.75")
		t.Setenv("SPAM_DETECTION", "false")
		t.Setenv("MAX_NEGATIVE_REACTIONS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "ghp_test", cfg.GitHubToken)
		assert.Equal(t, 6, cfg.WindowMonths)
		assert.Equal(t, 0.75, cfg.Thresholds.MergeRate)
		assert.False(t, cfg.SpamDetection)
		assert.Equal(t, 0, cfg.Thresholds.NegativeReactions)
	})

	t.Run("required metrics parse from a comma list", func(t *testing.T) {
		t.Setenv("REQUIRED_METRICS", "mergedPRs, accountAge ,suspiciousPatterns")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []models.Metric{
			models.MetricMergedPRs,
			models.MetricAccountAge,
			models.MetricSuspiciousPatterns,
		}, cfg.RequiredMetrics)
	})

	t.Run("unknown required metric is rejected", func(t *testing.T) {
		t.Setenv("REQUIRED_METRICS", "mergedPRs,notAMetric")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notAMetric")
	})

	t.Run("malformed numeric values are rejected", func(t *testing.T) {
		t.Setenv("MIN_MERGED_PRS", "two")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MIN_MERGED_PRS")
	})

	t.Run("malformed boolean values are rejected", func(t *testing.T) {
		t.Setenv("SPAM_DETECTION", "enabled")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestThresholdFor(t *testing.T) {
	cfg := &Config{Thresholds: Thresholds{
		MergedPRs:           2,
		MergeRate:           0.5,
		NegativeReactions:   5,
		ActivityConsistency: 0.25,
	}}

	assert.Equal(t, 2.0, cfg.ThresholdFor(models.MetricMergedPRs))
	assert.Equal(t, 0.5, cfg.ThresholdFor(models.MetricMergeRate))
	assert.Equal(t, 5.0, cfg.ThresholdFor(models.MetricNegativeReactions))
	assert.Equal(t, 0.25, cfg.ThresholdFor(models.MetricActivityConsistency))
	assert.Equal(t, 0.0, cfg.ThresholdFor(models.MetricSuspiciousPatterns))
}
