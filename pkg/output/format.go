// Package output provides utilities for formatting and displaying daily insights.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/vendor-insights/internal/content"
	"github.com/iwvelando/vendor-insights/internal/insights"
	"github.com/iwvelando/vendor-insights/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is everything the CLI prints for one vendor and day.
type Report struct {
	VendorID        string                     `json:"vendorId"`
	Day             string                     `json:"day"`
	Quote           content.Quote              `json:"quote"`
	RecentQuotes    []insights.DatedQuote      `json:"recentQuotes,omitempty"`
	Metrics         *content.VendorMetrics     `json:"metrics,omitempty"`
	Recommendations *content.RecommendationSet `json:"recommendations,omitempty"`
}

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report Report) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	fmt.Fprintf(&b, "--- Daily insights for %s on %s ---\n", report.VendorID, report.Day)
	fmt.Fprintf(&b, "%q\n  - %s, %s\n", report.Quote.Text, report.Quote.Author, report.Quote.Title)

	if len(report.RecentQuotes) > 0 {
		_, _ = p.Fprintf(&b, "\nRecent quotes (%d days)\n", len(report.RecentQuotes))
		fmt.Fprintf(&b, "Day        | Author\n")
		fmt.Fprintf(&b, "__________ | ______\n")
		for _, dq := range report.RecentQuotes {
			fmt.Fprintf(&b, "%s | %s\n", dq.Day, dq.Quote.Author)
		}
	}

	if m := report.Metrics; m != nil {
		code := strings.ToUpper(strings.TrimSpace(m.Currency))
		if code == "" {
			code = constants.DefaultCurrencyCode
		}
		fmt.Fprintf(&b, "\nSnapshot (%s)\n", code)
		_, _ = p.Fprintf(&b, "Balance      | %.2f (pending %.2f, completed %.2f)\n", m.CurrentBalance, m.PendingBalance, m.CompletedBalance)
		_, _ = p.Fprintf(&b, "Earned       | %.2f\n", m.TotalEarned)
		_, _ = p.Fprintf(&b, "Withdrawn    | %.2f (pending %.2f)\n", m.TotalWithdrawn, m.PendingWithdrawals)
		_, _ = p.Fprintf(&b, "Transactions | %d of %d completed, average %.2f\n", m.CompletedTransactions, m.TotalTransactions, m.AverageTransaction)
		_, _ = p.Fprintf(&b, "Success rate | %.1f%%\n", m.SuccessRate)
	}

	if set := report.Recommendations; set != nil {
		writeTips(&b, "Financial", set.Financial)
		writeTips(&b, "Performance", set.Performance)
		writeTips(&b, "Growth", set.Growth)
		writeTips(&b, "Risk", set.Risk)
		fmt.Fprintf(&b, "\nToday's actions\n")
		for i, a := range set.Actions {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, a.Label, a.Desc)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTips(b *strings.Builder, heading string, tips []content.Recommendation) {
	fmt.Fprintf(b, "\n%s\n", heading)
	for _, tip := range tips {
		fmt.Fprintf(b, "* %s: %s\n", tip.Title, tip.Message)
	}
}

// JSONFormat writes the report as indented JSON.
func JSONFormat(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
