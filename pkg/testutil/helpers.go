// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/vendor-insights/internal/content"
	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/datetime"
)

// DemoVendorID is the vendor used by the recorded reference scenario.
const DemoVendorID = "vendor_demo"

// DemoDay is the simulated day of the recorded reference scenario.
const DemoDay = "2025-01-15"

// ClockAt returns a clock fixed at midday UTC of the given YYYY-MM-DD day.
func ClockAt(day string) datetime.FixedClock {
	return datetime.FixedClock(datetime.MustParseDay(day))
}

// DemoMetrics returns the metrics snapshot of the reference scenario.
func DemoMetrics() content.VendorMetrics {
	return content.VendorMetrics{
		CurrentBalance:        12500.5,
		TotalEarned:           64000,
		PendingBalance:        1800,
		CompletedBalance:      10700.5,
		PendingWithdrawals:    4200,
		TotalWithdrawn:        51500,
		Currency:              "USD",
		TotalTransactions:     180,
		CompletedTransactions: 162,
		AverageTransaction:    355.55,
		SuccessRate:           90,
	}
}

// FindCategory returns the picked titles of a recommendation category, or nil
// for an unknown category name.
func FindCategory(set content.RecommendationSet, name string) []string {
	var recs []content.Recommendation
	switch name {
	case constants.CategoryFinancial:
		recs = set.Financial
	case constants.CategoryPerformance:
		recs = set.Performance
	case constants.CategoryGrowth:
		recs = set.Growth
	case constants.CategoryRisk:
		recs = set.Risk
	case constants.CategoryActions:
		labels := make([]string, len(set.Actions))
		for i, a := range set.Actions {
			labels[i] = a.Label
		}
		return labels
	default:
		return nil
	}
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	return titles
}
