package notifier

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"QuoteTracker/internal/model"
)

// startLayout is RFC 3339 with a numeric zone offset, so UTC prints as +00:00.
const startLayout = "2006-01-02T15:04:05-07:00"

// Output formats accepted by WriteResults.
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// displayValues collapses absent statistics to zero for presentation.
type displayValues struct {
	last, relative, min, max, sma float64
}

func display(s *model.QuoteSummary) displayValues {
	v := displayValues{
		last:     s.LastPrice.Or(0),
		relative: s.PriceDiff.Or(model.PriceDiff{}).Relative,
		min:      s.Min.Or(0),
		max:      s.Max.Or(0),
	}
	if sma := s.SMA.Or(nil); len(sma) > 0 {
		v.sma = sma[len(sma)-1]
	}
	return v
}

// FormatSummaryLine renders a summary as one CSV line:
// start,ticker,$last,change%,$min,$max,$sma
func FormatSummaryLine(start time.Time, s *model.QuoteSummary) string {
	v := display(s)
	return fmt.Sprintf("%s,%s,$%.2f,%.2f%%,$%.2f,$%.2f,$%.2f",
		start.Format(startLayout), s.Ticker, v.last, v.relative*100, v.min, v.max, v.sma)
}

// FormatFailure renders the diagnostic line for a ticker that could not be summarized.
func FormatFailure(ticker string, err error) string {
	return fmt.Sprintf("no quotes found for the symbol %s: %v", ticker, err)
}

// FormatReport renders every result as lines, failures included, in ticker order.
func FormatReport(start time.Time, results []model.SummaryResult) string {
	var b strings.Builder
	for _, r := range results {
		if r.Err != nil {
			b.WriteString(FormatFailure(r.Ticker, r.Err))
		} else {
			b.WriteString(FormatSummaryLine(start, r.Summary))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTable renders the successful results as a terminal table.
func FormatTable(start time.Time, results []model.SummaryResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		v := display(r.Summary)
		rows = append(rows, []string{
			r.Ticker,
			fmt.Sprintf("$%.2f", v.last),
			fmt.Sprintf("%+.2f%%", v.relative*100),
			fmt.Sprintf("$%.2f", v.min),
			fmt.Sprintf("$%.2f", v.max),
			fmt.Sprintf("$%.2f", v.sma),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("TICKER", "LAST", "CHANGE", "MIN", "MAX", "SMA").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	title := titleStyle.Render(fmt.Sprintf("Quotes since %s", start.Format(startLayout)))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

// WriteResults writes successful summaries to out and failures to diag in
// the given format, preserving ticker order within each stream.
func WriteResults(out, diag io.Writer, start time.Time, results []model.SummaryResult, format string) error {
	if format == FormatTable {
		for _, r := range results {
			if r.Err != nil {
				if _, err := fmt.Fprintln(diag, FormatFailure(r.Ticker, r.Err)); err != nil {
					return err
				}
			}
		}
		_, err := fmt.Fprintln(out, FormatTable(start, results))
		return err
	}

	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintln(diag, FormatFailure(r.Ticker, r.Err))
		} else {
			_, err = fmt.Fprintln(out, FormatSummaryLine(start, r.Summary))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
