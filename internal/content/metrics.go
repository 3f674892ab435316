package content

import "strings"

// VendorMetrics is a read-only snapshot of a vendor's wallet and transaction
// history, produced by the dashboard's aggregation layer. Amounts are in
// Currency units.
type VendorMetrics struct {
	CurrentBalance        float64 `json:"currentBalance" mapstructure:"currentBalance"`
	TotalEarned           float64 `json:"totalEarned" mapstructure:"totalEarned" validate:"min=0"`
	PendingBalance        float64 `json:"pendingBalance" mapstructure:"pendingBalance" validate:"min=0"`
	CompletedBalance      float64 `json:"completedBalance" mapstructure:"completedBalance"`
	PendingWithdrawals    float64 `json:"pendingWithdrawals" mapstructure:"pendingWithdrawals" validate:"min=0"`
	TotalWithdrawn        float64 `json:"totalWithdrawn" mapstructure:"totalWithdrawn" validate:"min=0"`
	Currency              string  `json:"currency" mapstructure:"currency" validate:"omitempty,iso4217"`
	TotalTransactions     int     `json:"totalTransactions" mapstructure:"totalTransactions" validate:"min=0"`
	CompletedTransactions int     `json:"completedTransactions" mapstructure:"completedTransactions" validate:"min=0,ltefield=TotalTransactions"`
	AverageTransaction    float64 `json:"averageTransaction" mapstructure:"averageTransaction" validate:"min=0"`
	SuccessRate           float64 `json:"successRate" mapstructure:"successRate" validate:"min=0,max=100"`
}

// FailedTransactions is the number of transactions that did not complete.
func (m VendorMetrics) FailedTransactions() int {
	if m.TotalTransactions <= m.CompletedTransactions {
		return 0
	}
	return m.TotalTransactions - m.CompletedTransactions
}

// Normalized returns a copy of m with the currency code trimmed and upper-cased.
func (m VendorMetrics) Normalized() VendorMetrics {
	m.Currency = strings.ToUpper(strings.TrimSpace(m.Currency))
	return m
}
