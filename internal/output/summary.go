// Package output renders an AnalysisResult for humans: a markdown job
// summary or PR comment for CI, and a colored table for terminals. Rendering
// is read-only; nothing here mutates the result or calls the network.
package output

import (
	"fmt"
	"strings"

	"github.com/prgate/prgate/internal/models"
)

// BuildJobSummary renders the full markdown report used as a CI job summary.
func BuildJobSummary(result *models.AnalysisResult, prCtx models.PRContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Contributor trust report for @%s\n\n", prCtx.Author)
	if result.Passed {
		fmt.Fprintf(&b, "**Verdict: PASS** — %d of %d checks passed\n\n", result.PassedCount, result.TotalMetrics)
	} else {
		fmt.Fprintf(&b, "**Verdict: FAIL** — %d of %d checks passed\n\n", result.PassedCount, result.TotalMetrics)
	}

	fmt.Fprintf(&b, "Activity window: %s to %s\n\n",
		result.DataWindowStart.Format("2006-01-02"), result.DataWindowEnd.Format("2006-01-02"))

	if result.IsNewAccount {
		b.WriteString("> Note: this is a new account with limited history.\n\n")
	}
	if result.HasLimitedData {
		b.WriteString("> Note: little public activity was found in the analysis window.\n\n")
	}

	b.WriteString("| Metric | Value | Threshold | Status |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, m := range result.Metrics {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			m.Name, formatValue(m.Name, m.Value), formatValue(m.Name, m.Threshold), statusWord(m.Passed))
	}
	b.WriteString("\n")

	if patterns := result.Raw.Patterns.DetectedPatterns; len(patterns) > 0 {
		b.WriteString("### Suspicious patterns\n\n")
		for _, p := range patterns {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", p.Type, p.Severity, p.Description)
		}
		b.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("### Recommendations\n\n")
		for _, r := range result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	return b.String()
}

// BuildCommentBody renders the short report posted as a PR comment.
func BuildCommentBody(result *models.AnalysisResult, prCtx models.PRContext) string {
	var b strings.Builder

	if result.Passed {
		fmt.Fprintf(&b, "@%s passed the contributor trust check (%d/%d).\n",
			prCtx.Author, result.PassedCount, result.TotalMetrics)
		return b.String()
	}

	fmt.Fprintf(&b, "@%s did not pass the contributor trust check (%d/%d).\n\n",
		prCtx.Author, result.PassedCount, result.TotalMetrics)

	if len(result.FailedMetrics) > 0 {
		names := make([]string, 0, len(result.FailedMetrics))
		for _, m := range result.FailedMetrics {
			names = append(names, string(m))
		}
		fmt.Fprintf(&b, "Failed checks: %s\n\n", strings.Join(names, ", "))
	}

	for _, r := range result.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	return b.String()
}

// formatValue renders rate-like metrics as percentages and everything else
// as plain numbers.
func formatValue(metric models.Metric, v float64) string {
	switch metric {
	case models.MetricMergeRate, models.MetricActivityConsistency:
		return fmt.Sprintf("%.0f%%", v*100)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func statusWord(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}
