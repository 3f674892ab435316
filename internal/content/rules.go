package content

import (
	"fmt"

	"github.com/iwvelando/vendor-insights/pkg/format"
	"github.com/iwvelando/vendor-insights/pkg/mathutil"
)

// Thresholds used by the rule tables.
const (
	LowBalanceThreshold       = 1000.0
	HighBalanceThreshold      = 10000.0
	EliteSuccessRate          = 95.0
	HealthySuccessRate        = 80.0
	PremiumAverageTransaction = 500.0
	LoyaltyTransactionCount   = 50
	NewMarketEarnings         = 50000.0
	LiquidityWarningShare     = 30.0
	ReserveDepletionShare     = 90.0
	ReinvestShare             = 10.0
	TaxSetAsideShare          = 25.0
)

func money(m VendorMetrics, amount float64) string {
	return format.Money(amount, m.Currency)
}

func lowBalance(m VendorMetrics) bool { return m.CurrentBalance < LowBalanceThreshold }

func eliteRate(m VendorMetrics) bool { return m.SuccessRate >= EliteSuccessRate }

func lowRate(m VendorMetrics) bool { return m.SuccessRate < HealthySuccessRate }

func noActivity(m VendorMetrics) bool { return m.TotalTransactions == 0 }

func hasPendingOut(m VendorMetrics) bool { return m.PendingWithdrawals > 0 }

func recoveringRate(m VendorMetrics) bool {
	return m.SuccessRate >= HealthySuccessRate && m.SuccessRate < EliteSuccessRate
}

var financialRules = []Rule[Recommendation]{
	{
		Name: "cash-reserve",
		When: lowBalance,
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Build a Cash Reserve",
				Message: fmt.Sprintf("Your balance is %s. Aim to keep at least %s on hand to cover refunds and slow weeks.",
					money(m, m.CurrentBalance), money(m, LowBalanceThreshold)),
			}
		},
	},
	always("trim-spend", Recommendation{
		Title:   "Trim Non-Essential Spend",
		Message: "Review last month's outgoing payments and pause anything that does not bring in bookings.",
	}),
	{
		Name: "reinvest",
		When: func(m VendorMetrics) bool { return !lowBalance(m) },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Reinvest in Your Listings",
				Message: fmt.Sprintf("With %s available, setting aside %s for photos or promotions can lift next season's bookings.",
					money(m, m.CurrentBalance), money(m, mathutil.ApplyPercentage(m.CurrentBalance, ReinvestShare))),
			}
		},
	},
	{
		Name: "scheduled-payouts",
		When: func(m VendorMetrics) bool { return !lowBalance(m) },
		Build: func(VendorMetrics) Recommendation {
			return Recommendation{
				Title:   "Schedule Regular Payouts",
				Message: "Withdraw on a fixed weekly or monthly rhythm so cash flow stays predictable.",
			}
		},
	},
	{
		Name: "diversify",
		When: func(m VendorMetrics) bool { return m.CurrentBalance >= HighBalanceThreshold },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Diversify Your Reserves",
				Message: fmt.Sprintf("Holding %s in one wallet is a single point of failure. Move part of it into a separate savings account.",
					money(m, m.CurrentBalance)),
			}
		},
	},
	{
		Name: "withdrawal-pacing",
		When: hasPendingOut,
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Pace Your Withdrawals",
				Message: fmt.Sprintf("%s is waiting to be withdrawn. Let it clear before requesting another payout.",
					money(m, m.PendingWithdrawals)),
			}
		},
	},
	{
		Name: "pending-settlements",
		When: func(m VendorMetrics) bool { return m.PendingBalance > 0 },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Track Pending Settlements",
				Message: fmt.Sprintf("%s is still settling. Plan spending around your completed balance of %s.",
					money(m, m.PendingBalance), money(m, m.CompletedBalance)),
			}
		},
	},
	always("expense-tracking", Recommendation{
		Title:   "Track Every Expense",
		Message: "Log fuel, guides, permits and meals per tour so you know what each booking really earns.",
	}),
	always("separate-accounts", Recommendation{
		Title:   "Separate Business Finances",
		Message: "Keep tour income and personal spending in different accounts to simplify taxes and audits.",
	}),
	{
		Name: "tax-set-aside",
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Set Aside Tax Money",
				Message: fmt.Sprintf("Of your %s lifetime earnings, about %s would be a %.0f%% tax reserve. Move a share of every payout.",
					money(m, m.TotalEarned), money(m, mathutil.ApplyPercentage(m.TotalEarned, TaxSetAsideShare)), TaxSetAsideShare),
			}
		},
	},
}

var performanceRules = []Rule[Recommendation]{
	{
		Name: "elite",
		When: eliteRate,
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Elite Performance",
				Message: fmt.Sprintf("A %.1f%% success rate puts you among the most reliable vendors. Mention it in your listing.",
					m.SuccessRate),
			}
		},
	},
	{
		Name: "protect-streak",
		When: eliteRate,
		Build: func(VendorMetrics) Recommendation {
			return Recommendation{
				Title:   "Protect Your Streak",
				Message: "Block dates you cannot serve before guests book them; one cancellation costs more than an empty day.",
			}
		},
	},
	{
		Name: "close-the-gap",
		When: recoveringRate,
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Close the Gap to Elite",
				Message: fmt.Sprintf("You are at %.1f%%, %.1f points from elite status. A few smooth weeks will get you there.",
					m.SuccessRate, mathutil.Round(EliteSuccessRate-m.SuccessRate)),
			}
		},
	},
	{
		Name: "review-failures",
		When: recoveringRate,
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Review Failed Bookings",
				Message: fmt.Sprintf("Look for a pattern in your %s unsuccessful transactions: payment, availability or communication.",
					format.Count(m.FailedTransactions())),
			}
		},
	},
	{
		Name: "recovery-plan",
		When: lowRate,
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Start a Recovery Plan",
				Message: fmt.Sprintf("Your success rate is %.1f%%. Pick the most common failure reason and fix it this week.",
					m.SuccessRate),
			}
		},
	},
	{
		Name: "confirm-availability",
		When: lowRate,
		Build: func(VendorMetrics) Recommendation {
			return Recommendation{
				Title:   "Confirm Availability Daily",
				Message: "Most failed bookings come from stale calendars. Check yours every morning.",
			}
		},
	},
	{
		Name: "first-booking",
		When: noActivity,
		Build: func(VendorMetrics) Recommendation {
			return Recommendation{
				Title:   "Land Your First Booking",
				Message: "Offer an introductory price on one experience to collect your first reviews.",
			}
		},
	},
	{
		Name: "premium",
		When: func(m VendorMetrics) bool { return m.AverageTransaction >= PremiumAverageTransaction },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Lean Into Premium Experiences",
				Message: fmt.Sprintf("Guests spend %s per booking on average. Add a private or VIP option.",
					money(m, m.AverageTransaction)),
			}
		},
	},
	always("response-time", Recommendation{
		Title:   "Respond Within the Hour",
		Message: "Fast replies convert inquiries into bookings. Turn on notifications for new messages.",
	}),
	always("ask-reviews", Recommendation{
		Title:   "Ask for Reviews",
		Message: "Send a thank-you note after each trip with a direct link to leave a review.",
	}),
}

var growthRules = []Rule[Recommendation]{
	always("bundles", Recommendation{
		Title:   "Bundle Experiences",
		Message: "Pair a tour with a meal or transfer and price the bundle slightly below the separate total.",
	}),
	always("seasonal", Recommendation{
		Title:   "Plan for Peak Season",
		Message: "Publish next season's dates early; travelers book holidays months ahead.",
	}),
	always("photos", Recommendation{
		Title:   "Refresh Your Photos",
		Message: "Listings with recent, bright photos of real guests get noticeably more clicks.",
	}),
	always("partnerships", Recommendation{
		Title:   "Partner With Local Businesses",
		Message: "Hotels and guesthouses nearby can refer guests in exchange for a small commission.",
	}),
	always("repeat-guests", Recommendation{
		Title:   "Reward Repeat Guests",
		Message: "A returning-guest discount costs less than winning a new customer.",
	}),
	{
		Name: "loyalty",
		When: func(m VendorMetrics) bool { return m.TotalTransactions >= LoyaltyTransactionCount },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Launch a Loyalty Program",
				Message: fmt.Sprintf("With %s transactions behind you, a points or referral scheme can turn guests into promoters.",
					format.Count(m.TotalTransactions)),
			}
		},
	},
	{
		Name: "new-market",
		When: func(m VendorMetrics) bool { return m.TotalEarned >= NewMarketEarnings },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Explore a New Market",
				Message: fmt.Sprintf("You have earned %s so far. Translate your best listing to reach travelers from a new country.",
					money(m, m.TotalEarned)),
			}
		},
	},
}

var riskRules = []Rule[Recommendation]{
	always("cancellation-policy", Recommendation{
		Title:   "Publish a Clear Cancellation Policy",
		Message: "State refund windows plainly to avoid disputes and chargebacks.",
	}),
	always("records", Recommendation{
		Title:   "Keep Booking Records",
		Message: "Store confirmations and guest messages for at least a year in case of a claim.",
	}),
	always("insurance", Recommendation{
		Title:   "Review Your Insurance Cover",
		Message: "Check that your liability policy covers every activity you list.",
	}),
	{
		Name: "liquidity",
		When: func(m VendorMetrics) bool {
			if !hasPendingOut(m) {
				return false
			}
			return m.CurrentBalance <= 0 || mathutil.CalculatePercentage(m.PendingWithdrawals, m.CurrentBalance) > LiquidityWarningShare
		},
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Watch Your Liquidity",
				Message: fmt.Sprintf("%s is pending withdrawal against a balance of %s. Keep enough behind for refunds.",
					money(m, m.PendingWithdrawals), money(m, m.CurrentBalance)),
			}
		},
	},
	{
		Name: "disputes",
		When: func(m VendorMetrics) bool { return lowRate(m) && !noActivity(m) },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Reduce Dispute Exposure",
				Message: fmt.Sprintf("%s of %s transactions did not complete. Each one is a potential dispute; follow up personally.",
					format.Count(m.FailedTransactions()), format.Count(m.TotalTransactions)),
			}
		},
	},
	{
		Name: "settlement-concentration",
		When: func(m VendorMetrics) bool { return m.CompletedBalance <= 0 && m.PendingBalance > 0 },
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Avoid Settlement Concentration",
				Message: fmt.Sprintf("All %s of your funds are still pending. Avoid commitments until some of it settles.",
					money(m, m.PendingBalance)),
			}
		},
	},
	{
		Name: "reserve-depletion",
		When: func(m VendorMetrics) bool {
			return m.TotalEarned > 0 && mathutil.CalculatePercentage(m.TotalWithdrawn, m.TotalEarned) > ReserveDepletionShare
		},
		Build: func(m VendorMetrics) Recommendation {
			return Recommendation{
				Title: "Rebuild Your Reserve",
				Message: fmt.Sprintf("You have withdrawn %.0f%% of everything you earned. Leave more in the wallet for off-season months.",
					mathutil.CalculatePercentage(m.TotalWithdrawn, m.TotalEarned)),
			}
		},
	},
}

var actionRules = []Rule[ActionItem]{
	always("availability", ActionItem{Label: "Update availability", Desc: "Open or close dates for the next two weeks."}),
	always("messages", ActionItem{Label: "Reply to messages", Desc: "Clear every unanswered guest inquiry."}),
	always("photo", ActionItem{Label: "Refresh a listing photo", Desc: "Replace your oldest cover image."}),
	always("weekly-bookings", ActionItem{Label: "Review this week's bookings", Desc: "Confirm pickup times and guest counts."}),
	always("social", ActionItem{Label: "Share a listing", Desc: "Post one experience on social media."}),
	always("payout-settings", ActionItem{Label: "Check payout settings", Desc: "Make sure your bank details are current."}),
	{
		Name: "reserve-target",
		When: lowBalance,
		Build: func(m VendorMetrics) ActionItem {
			return ActionItem{Label: "Set a reserve target", Desc: fmt.Sprintf("Decide how to reach %s in your wallet.", money(m, LowBalanceThreshold))}
		},
	},
	{
		Name: "audit-failures",
		When: func(m VendorMetrics) bool { return lowRate(m) && !noActivity(m) },
		Build: func(m VendorMetrics) ActionItem {
			return ActionItem{Label: "Audit failed transactions", Desc: fmt.Sprintf("Go through the last %s failures.", format.Count(m.FailedTransactions()))}
		},
	},
	{
		Name: "first-offer",
		When: noActivity,
		Build: func(VendorMetrics) ActionItem {
			return ActionItem{Label: "Publish your first offer", Desc: "Create an introductory deal on one experience."}
		},
	},
	{
		Name: "withdrawal-details",
		When: hasPendingOut,
		Build: func(m VendorMetrics) ActionItem {
			return ActionItem{Label: "Confirm withdrawal details", Desc: fmt.Sprintf("Verify the account for your %s payout.", money(m, m.PendingWithdrawals))}
		},
	},
}

// FinancialPool builds the financial tip pool for m.
func FinancialPool(m VendorMetrics) []Recommendation { return BuildPool(financialRules, m) }

// PerformancePool builds the performance tip pool for m.
func PerformancePool(m VendorMetrics) []Recommendation { return BuildPool(performanceRules, m) }

// GrowthPool builds the growth tip pool for m.
func GrowthPool(m VendorMetrics) []Recommendation { return BuildPool(growthRules, m) }

// RiskPool builds the risk tip pool for m.
func RiskPool(m VendorMetrics) []Recommendation { return BuildPool(riskRules, m) }

// ActionPool builds the action item pool for m.
func ActionPool(m VendorMetrics) []ActionItem { return BuildPool(actionRules, m) }
