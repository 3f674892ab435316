// Package constants provides shared constants for the vendor-insights application.
package constants

// DayKeyLayout is the calendar-day format used in rotation seeds and in all
// date inputs and outputs.
const DayKeyLayout = "2006-01-02"

// Rotation constants
const (
	// SeedSeparator joins the parts of a seed string.
	SeedSeparator = "-"

	// DefaultRecentDays is the default window for recent quotes.
	DefaultRecentDays = 7

	// MaxRecentDays bounds the recent quotes window.
	MaxRecentDays = 366

	// DefaultTimezone is the clock used for day keys unless configured otherwise.
	DefaultTimezone = "UTC"
)

// Recommendation category names. These are part of the seed string and must
// not change.
const (
	CategoryFinancial   = "financial"
	CategoryPerformance = "performance"
	CategoryGrowth      = "growth"
	CategoryRisk        = "risk"
	CategoryActions     = "actions"
)

// Selection sizes per category
const (
	// TipsPerCategory is the number of recommendations picked for each tip category.
	TipsPerCategory = 2

	// ActionsPerDay is the number of action items picked each day.
	ActionsPerDay = 4
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultCurrencyCode is used when metrics carry no currency.
	DefaultCurrencyCode = "USD"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment overrides of configuration keys.
	EnvPrefix = "VENDOR_INSIGHTS"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body for metrics payloads (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)
