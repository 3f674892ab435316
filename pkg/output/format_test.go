package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/vendor-insights/internal/content"
	"github.com/iwvelando/vendor-insights/internal/insights"
)

func sampleReport() Report {
	quote := content.Quote{Text: "Well done is better than well said.", Author: "Benjamin Franklin", Title: "Founding Father"}
	return Report{
		VendorID: "vendor_demo",
		Day:      "2025-01-15",
		Quote:    quote,
		RecentQuotes: []insights.DatedQuote{
			{Day: "2025-01-15", Quote: quote},
			{Day: "2025-01-14", Quote: content.Quote{Text: "x", Author: "Mark Twain", Title: "Author"}},
		},
		Metrics: &content.VendorMetrics{
			CurrentBalance:        12500.5,
			TotalEarned:           1234567.891,
			PendingWithdrawals:    4200,
			TotalWithdrawn:        51500,
			Currency:              "kes",
			TotalTransactions:     1800,
			CompletedTransactions: 1620,
			AverageTransaction:    355.55,
			SuccessRate:           90,
		},
		Recommendations: &content.RecommendationSet{
			Financial:   []content.Recommendation{{Title: "Track Every Expense", Message: "Log it."}},
			Performance: []content.Recommendation{{Title: "Ask for Reviews", Message: "Send a note."}},
			Actions:     []content.ActionItem{{Label: "Reply to messages", Desc: "Clear the inbox."}},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, sampleReport()); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	out := buf.String()

	expected := []string{
		"--- Daily insights for vendor_demo on 2025-01-15 ---",
		`"Well done is better than well said."`,
		"  - Benjamin Franklin, Founding Father",
		"Recent quotes (2 days)",
		"2025-01-14 | Mark Twain",
		"Financial\n* Track Every Expense: Log it.",
		"Performance\n* Ask for Reviews: Send a note.",
		"1. Reply to messages: Clear the inbox.",
		"Snapshot (KES)",
		"Balance      | 12,500.50 (pending 0.00, completed 0.00)",
		"Earned       | 1,234,567.89",
		"Withdrawn    | 51,500.00 (pending 4,200.00)",
		"Transactions | 1,620 of 1,800 completed, average 355.55",
		"Success rate | 90.0%",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyFormatQuoteOnly(t *testing.T) {
	report := sampleReport()
	report.RecentQuotes = nil
	report.Recommendations = nil
	report.Metrics = nil

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, report); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	if strings.Contains(buf.String(), "Recent quotes") || strings.Contains(buf.String(), "actions") || strings.Contains(buf.String(), "Snapshot") {
		t.Errorf("unexpected sections in output:\n%s", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, sampleReport()); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if decoded.VendorID != "vendor_demo" || decoded.Quote.Author != "Benjamin Franklin" {
		t.Errorf("unexpected decoded report: %+v", decoded)
	}
	if decoded.Recommendations == nil || len(decoded.Recommendations.Actions) != 1 {
		t.Errorf("expected recommendations in output: %s", buf.String())
	}
}
