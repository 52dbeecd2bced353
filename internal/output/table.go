package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/prgate/prgate/internal/models"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// WriteTable renders the per-metric results as a terminal table followed by
// the colored verdict line.
func WriteTable(w io.Writer, result *models.AnalysisResult, prCtx models.PRContext) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value", "Threshold", "Status"})

	var rows [][]string
	for _, m := range result.Metrics {
		rows = append(rows, []string{
			string(m.Name),
			formatValue(m.Name, m.Value),
			formatValue(m.Name, m.Threshold),
			statusWord(m.Passed),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, p := range result.Raw.Patterns.DetectedPatterns {
		if _, err := warnColor.Fprintf(w, "pattern %s (%s): %s\n", p.Type, p.Severity, p.Description); err != nil {
			return err
		}
	}

	verdict := passColor
	word := "PASS"
	if !result.Passed {
		verdict = failColor
		word = "FAIL"
	}
	if _, err := verdict.Fprintf(w, "%s: @%s on %s/%s#%d (%d/%d checks passed)\n",
		word, prCtx.Author, prCtx.Owner, prCtx.Repo, prCtx.PRNumber,
		result.PassedCount, result.TotalMetrics); err != nil {
		return err
	}

	for _, r := range result.Recommendations {
		if _, err := fmt.Fprintf(w, "  - %s\n", r); err != nil {
			return err
		}
	}
	return nil
}
