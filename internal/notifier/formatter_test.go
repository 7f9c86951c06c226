package notifier

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"QuoteTracker/internal/model"
)

var start = time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)

func TestFormatSummaryLine(t *testing.T) {
	s := &model.QuoteSummary{
		Ticker:    "MSFT",
		Max:       model.Some(15.0),
		Min:       model.Some(9.0),
		LastPrice: model.Some(10.0),
		PriceDiff: model.Some(model.PriceDiff{Absolute: 2.5, Relative: 0.3333}),
		SMA:       model.Some([]float64{31.0 / 3, 12, 13, 13, 12, 31.0 / 3}),
	}
	require.Equal(t,
		"2020-07-01T00:00:00+00:00,MSFT,$10.00,33.33%,$9.00,$15.00,$10.33",
		FormatSummaryLine(start, s))
}

func TestFormatSummaryLine_AbsentFieldsDisplayAsZero(t *testing.T) {
	s := &model.QuoteSummary{Ticker: "NONE"}
	require.Equal(t,
		"2020-07-01T00:00:00+00:00,NONE,$0.00,0.00%,$0.00,$0.00,$0.00",
		FormatSummaryLine(start, s))
}

func TestFormatSummaryLine_EmptySMADisplaysAsZero(t *testing.T) {
	s := &model.QuoteSummary{
		Ticker:    "UBER",
		Max:       model.Some(45.5),
		Min:       model.Some(44.0),
		LastPrice: model.Some(45.5),
		PriceDiff: model.Some(model.PriceDiff{Absolute: 1.5, Relative: 1.5 / 44}),
		SMA:       model.Some([]float64{}),
	}
	require.Equal(t,
		"2020-07-01T00:00:00+00:00,UBER,$45.50,3.41%,$44.00,$45.50,$0.00",
		FormatSummaryLine(start, s))
}

func TestFormatSummaryLine_KeepsNonUTCOffset(t *testing.T) {
	ny := time.FixedZone("EST", -5*60*60)
	s := &model.QuoteSummary{Ticker: "IBM"}
	require.True(t, strings.HasPrefix(
		FormatSummaryLine(time.Date(2020, 1, 2, 9, 30, 0, 0, ny), s),
		"2020-01-02T09:30:00-05:00,IBM,"))
}

func TestFormatFailure_IncludesTicker(t *testing.T) {
	line := FormatFailure("ZZZZ", errors.New("No data found, symbol may be delisted"))
	require.Equal(t, "no quotes found for the symbol ZZZZ: No data found, symbol may be delisted", line)
}

func testResults() []model.SummaryResult {
	return []model.SummaryResult{
		{Ticker: "AAPL", Summary: &model.QuoteSummary{Ticker: "AAPL", LastPrice: model.Some(190.0)}},
		{Ticker: "BAD", Err: errors.New("unknown symbol")},
		{Ticker: "GOOG", Summary: &model.QuoteSummary{Ticker: "GOOG", LastPrice: model.Some(140.25)}},
	}
}

func TestWriteResults_CSVRoutesStreams(t *testing.T) {
	var out, diag bytes.Buffer
	require.NoError(t, WriteResults(&out, &diag, start, testResults(), FormatCSV))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "2020-07-01T00:00:00+00:00,AAPL,$190.00,"))
	require.True(t, strings.HasPrefix(lines[1], "2020-07-01T00:00:00+00:00,GOOG,$140.25,"))
	require.Equal(t, "no quotes found for the symbol BAD: unknown symbol\n", diag.String())
}

func TestWriteResults_Table(t *testing.T) {
	var out, diag bytes.Buffer
	require.NoError(t, WriteResults(&out, &diag, start, testResults(), FormatTable))

	require.Contains(t, out.String(), "TICKER")
	require.Contains(t, out.String(), "AAPL")
	require.Contains(t, out.String(), "$140.25")
	require.NotContains(t, out.String(), "BAD")
	require.Contains(t, diag.String(), "symbol BAD")
}

func TestFormatReport(t *testing.T) {
	report := FormatReport(start, testResults())
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], ",AAPL,")
	require.Equal(t, "no quotes found for the symbol BAD: unknown symbol", lines[1])
	require.Contains(t, lines[2], ",GOOG,")
}
