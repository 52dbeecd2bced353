// Package engine turns a contributor activity snapshot into a pass/fail
// verdict with ranked recommendations. It holds no state across invocations;
// every Analyze call produces a complete, immutable result.
package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prgate/prgate/internal/config"
	"github.com/prgate/prgate/internal/metrics"
	"github.com/prgate/prgate/internal/models"
)

// Engine runs metric extraction, pattern detection and threshold evaluation
// over one snapshot.
type Engine struct {
	cfg    *config.Config
	logger *logrus.Logger
	now    func() time.Time
}

// New creates an engine for the given configuration.
func New(cfg *config.Config, logger *logrus.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Analyze evaluates one contributor snapshot against the configured
// thresholds. Metric extraction never fails; once data fetching has
// succeeded the engine always produces a complete result.
func (e *Engine) Analyze(snapshot *models.ContributorActivitySnapshot, prCtx models.PRContext) *models.AnalysisResult {
	now := e.now()

	raw := models.RawMetrics{
		PRHistory:       metrics.ExtractPRHistory(snapshot),
		RepoQuality:     metrics.ExtractRepoQuality(snapshot, e.cfg.MinimumStars),
		Reactions:       metrics.ExtractReactions(snapshot),
		Account:         metrics.ExtractAccount(snapshot, now, e.cfg.NewAccountDays),
		CommentActivity: metrics.ExtractCommentActivity(snapshot),
		IssueEngagement: metrics.ExtractIssueEngagement(snapshot),
		CodeReview:      metrics.ExtractCodeReviews(snapshot),
		MergerDiversity: metrics.ExtractMergerDiversity(snapshot),
		RepoHistory:     metrics.ExtractRepoHistory(snapshot, prCtx),
		Profile:         metrics.ExtractProfile(snapshot),
	}

	if e.cfg.SpamDetection {
		raw.Patterns = metrics.DetectSuspiciousPatterns(raw.PRHistory, raw.RepoQuality, raw.Account, raw.MergerDiversity)
	}

	results := e.evaluate(raw)

	passed := DeterminePassStatus(results, e.cfg.RequiredMetrics)
	if raw.Patterns.HasCritical() {
		// A critical pattern fails the verdict regardless of which
		// metrics are configured as required.
		passed = false
	}

	passedCount := 0
	var failed []models.Metric
	for _, r := range results {
		if r.Passed {
			passedCount++
		} else {
			failed = append(failed, r.Name)
		}
	}

	result := &models.AnalysisResult{
		Passed:          passed,
		PassedCount:     passedCount,
		TotalMetrics:    len(results),
		Metrics:         results,
		FailedMetrics:   failed,
		Recommendations: GenerateRecommendations(results, raw),
		IsNewAccount:    raw.Account.IsNewAccount,
		HasLimitedData:  len(snapshot.PullRequests) == 0 && len(snapshot.IssueComments) == 0,
		DataWindowStart: snapshot.Window.Start,
		DataWindowEnd:   snapshot.Window.End,
		Raw:             raw,
	}

	e.logger.WithFields(logrus.Fields{
		"login":        snapshot.Login,
		"passed":       result.Passed,
		"passed_count": result.PassedCount,
		"total":        result.TotalMetrics,
		"patterns":     len(raw.Patterns.DetectedPatterns),
	}).Info("Completed contributor trust evaluation")

	return result
}
