package content

import (
	"fmt"
	"strings"

	"github.com/iwvelando/vendor-insights/pkg/constants"
)

// Category describes one recommendation category: its seed name, how many
// items are picked per day, and how many candidates its pool holds for m.
type Category struct {
	Name     string
	Count    int
	PoolSize func(m VendorMetrics) int
}

// Categories lists the recommendation categories in assembly order.
var Categories = []Category{
	{Name: constants.CategoryFinancial, Count: constants.TipsPerCategory, PoolSize: func(m VendorMetrics) int { return len(FinancialPool(m)) }},
	{Name: constants.CategoryPerformance, Count: constants.TipsPerCategory, PoolSize: func(m VendorMetrics) int { return len(PerformancePool(m)) }},
	{Name: constants.CategoryGrowth, Count: constants.TipsPerCategory, PoolSize: func(m VendorMetrics) int { return len(GrowthPool(m)) }},
	{Name: constants.CategoryRisk, Count: constants.TipsPerCategory, PoolSize: func(m VendorMetrics) int { return len(RiskPool(m)) }},
	{Name: constants.CategoryActions, Count: constants.ActionsPerDay, PoolSize: func(m VendorMetrics) int { return len(ActionPool(m)) }},
}

// ConfigurationError reports content tables that cannot serve a selection.
// It is raised once at startup and is never transient.
type ConfigurationError struct {
	Pool     string
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s pool: %s", e.Pool, strings.Join(e.Problems, "; "))
}

// probeMetrics covers each side of every rule threshold. Every category pool
// must hold its daily count for all of them.
var probeMetrics = []VendorMetrics{
	{},
	{CurrentBalance: 250, PendingWithdrawals: 400, SuccessRate: 50, TotalTransactions: 10, CompletedTransactions: 5},
	{CurrentBalance: 5000, TotalEarned: 20000, SuccessRate: 88, TotalTransactions: 40, CompletedTransactions: 35},
	{CurrentBalance: 25000, TotalEarned: 90000, TotalWithdrawn: 85000, SuccessRate: 99, TotalTransactions: 400, CompletedTransactions: 396, AverageTransaction: 750},
	{CurrentBalance: -100, PendingBalance: 300, SuccessRate: 100},
}

// ValidatePools checks the quote catalog and every rule table. Callers run it
// once before serving.
func ValidatePools() error {
	if err := validateQuotes(quoteCatalog[:]); err != nil {
		return err
	}
	if err := validateCategories(Categories, probeMetrics); err != nil {
		return err
	}
	for _, table := range []struct {
		pool  string
		rules []Rule[Recommendation]
	}{
		{constants.CategoryFinancial, financialRules},
		{constants.CategoryPerformance, performanceRules},
		{constants.CategoryGrowth, growthRules},
		{constants.CategoryRisk, riskRules},
	} {
		if err := validateRules(table.pool, table.rules); err != nil {
			return err
		}
	}
	return validateRules(constants.CategoryActions, actionRules)
}

// validateCategories requires every category pool to hold its daily count
// for each probe snapshot.
func validateCategories(categories []Category, probes []VendorMetrics) error {
	for _, category := range categories {
		var problems []string
		for i, m := range probes {
			if size := category.PoolSize(m); size < category.Count {
				problems = append(problems, fmt.Sprintf("probe %d yields %d items, need %d", i, size, category.Count))
			}
		}
		if len(problems) > 0 {
			return &ConfigurationError{Pool: category.Name, Problems: problems}
		}
	}
	return nil
}

func validateQuotes(quotes []Quote) error {
	var problems []string
	if len(quotes) == 0 {
		problems = append(problems, "catalog is empty")
	}
	seen := make(map[string]int, len(quotes))
	for i, q := range quotes {
		if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.Author) == "" || strings.TrimSpace(q.Title) == "" {
			problems = append(problems, fmt.Sprintf("entry %d has an empty field", i))
		}
		if prev, ok := seen[q.Text]; ok {
			problems = append(problems, fmt.Sprintf("entry %d duplicates entry %d", i, prev))
		}
		seen[q.Text] = i
	}
	if len(problems) > 0 {
		return &ConfigurationError{Pool: "quote", Problems: problems}
	}
	return nil
}

func validateRules[T any](pool string, rules []Rule[T]) error {
	var problems []string
	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		if rule.Name == "" {
			problems = append(problems, fmt.Sprintf("rule %d has no name", i))
		}
		if seen[rule.Name] {
			problems = append(problems, fmt.Sprintf("rule name %q repeated", rule.Name))
		}
		seen[rule.Name] = true
		if rule.Build == nil {
			problems = append(problems, fmt.Sprintf("rule %q has no builder", rule.Name))
		}
	}
	if len(problems) > 0 {
		return &ConfigurationError{Pool: pool, Problems: problems}
	}
	return nil
}
