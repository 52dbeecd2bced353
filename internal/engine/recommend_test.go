package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prgate/prgate/internal/models"
)

func TestDeterminePassStatus(t *testing.T) {
	pass := func(m models.Metric) models.MetricCheckResult {
		return models.MetricCheckResult{Name: m, Passed: true}
	}
	fail := func(m models.Metric) models.MetricCheckResult {
		return models.MetricCheckResult{Name: m, Passed: false}
	}

	t.Run("no required metrics means every check must pass", func(t *testing.T) {
		results := []models.MetricCheckResult{pass(models.MetricMergedPRs), pass(models.MetricMergeRate)}
		assert.True(t, DeterminePassStatus(results, nil))

		results = append(results, fail(models.MetricProfileScore))
		assert.False(t, DeterminePassStatus(results, nil))
	})

	t.Run("only required metrics count", func(t *testing.T) {
		results := []models.MetricCheckResult{
			pass(models.MetricMergedPRs),
			fail(models.MetricProfileScore),
		}
		required := []models.Metric{models.MetricMergedPRs}
		assert.True(t, DeterminePassStatus(results, required))

		required = []models.Metric{models.MetricMergedPRs, models.MetricProfileScore}
		assert.False(t, DeterminePassStatus(results, required))
	})

	t.Run("required metric with no result passes by default", func(t *testing.T) {
		results := []models.MetricCheckResult{pass(models.MetricMergedPRs)}
		required := []models.Metric{models.MetricMergedPRs, models.MetricCodeReviews}
		assert.True(t, DeterminePassStatus(results, required))
	})

	t.Run("empty results are vacuously true", func(t *testing.T) {
		assert.True(t, DeterminePassStatus(nil, nil))
		assert.True(t, DeterminePassStatus(nil, []models.Metric{models.MetricMergedPRs}))
	})
}

func TestGenerateRecommendations(t *testing.T) {
	t.Run("critical pattern short-circuits everything else", func(t *testing.T) {
		results := []models.MetricCheckResult{
			{Name: models.MetricMergedPRs, Passed: false},
			{Name: models.MetricProfileScore, Passed: false},
		}
		raw := models.RawMetrics{
			Patterns: models.SuspiciousPatternData{
				DetectedPatterns: []models.SuspiciousPattern{
					{Type: models.PatternSpam, Severity: models.SeverityCritical},
				},
			},
		}

		recs := GenerateRecommendations(results, raw)
		require.Len(t, recs, 1)
		assert.Equal(t, criticalRecommendation, recs[0])
	})

	t.Run("all checks passing yields no recommendations", func(t *testing.T) {
		results := []models.MetricCheckResult{
			{Name: models.MetricMergedPRs, Passed: true},
			{Name: models.MetricMergeRate, Passed: true},
		}
		assert.Empty(t, GenerateRecommendations(results, models.RawMetrics{}))
	})

	t.Run("failed metrics map to their advice in result order", func(t *testing.T) {
		results := []models.MetricCheckResult{
			{Name: models.MetricMergedPRs, Passed: false},
			{Name: models.MetricMergeRate, Passed: true},
			{Name: models.MetricProfileScore, Passed: false},
		}

		recs := GenerateRecommendations(results, models.RawMetrics{})
		require.Len(t, recs, 2)
		assert.Equal(t, recommendationText[models.MetricMergedPRs], recs[0])
		assert.Equal(t, recommendationText[models.MetricProfileScore], recs[1])
	})

	t.Run("young account suppresses the consistency advice", func(t *testing.T) {
		results := []models.MetricCheckResult{
			{Name: models.MetricAccountAge, Passed: false},
			{Name: models.MetricActivityConsistency, Passed: false},
		}
		raw := models.RawMetrics{Account: models.AccountData{AgeInDays: 10}}

		recs := GenerateRecommendations(results, raw)
		require.Len(t, recs, 1)
		assert.Equal(t, recommendationText[models.MetricAccountAge], recs[0])
	})

	t.Run("old account keeps the consistency advice", func(t *testing.T) {
		results := []models.MetricCheckResult{
			{Name: models.MetricAccountAge, Passed: false},
			{Name: models.MetricActivityConsistency, Passed: false},
		}
		raw := models.RawMetrics{Account: models.AccountData{AgeInDays: 200}}

		recs := GenerateRecommendations(results, raw)
		assert.Len(t, recs, 2)
	})

	t.Run("generic fallback when no specific advice applies", func(t *testing.T) {
		results := []models.MetricCheckResult{
			{Name: models.MetricSuspiciousPatterns, Passed: false},
		}

		recs := GenerateRecommendations(results, models.RawMetrics{})
		require.Len(t, recs, 1)
		assert.Equal(t, genericRecommendation, recs[0])
	})
}
