// Package insights serves each vendor's daily quote and business
// recommendations. Selections are a pure function of the vendor id, the
// calendar day, and (for recommendations) a metrics snapshot; nothing is
// stored between calls and a Service is safe for concurrent use.
package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/vendor-insights/internal/content"
	"github.com/iwvelando/vendor-insights/internal/rotation"
	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/datetime"
	"github.com/iwvelando/vendor-insights/pkg/validation"
	"go.uber.org/zap"
)

// DatedQuote is the quote a vendor saw on a given day.
type DatedQuote struct {
	Day   string        `json:"day"`
	Quote content.Quote `json:"quote"`
}

// Service selects daily content.
type Service struct {
	logger   *zap.Logger
	clock    datetime.Clock
	location *time.Location
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock.
func WithClock(clock datetime.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocation sets the timezone whose calendar days key the rotation.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewService validates the content pools and returns a Service. A pool
// problem is returned as a *content.ConfigurationError and should stop the
// process before it serves anything.
func NewService(logger *zap.Logger, opts ...Option) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		logger:   logger,
		clock:    datetime.SystemClock,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := content.ValidatePools(); err != nil {
		return nil, fmt.Errorf("content pools failed validation: %w", err)
	}
	return s, nil
}

// Location returns the timezone used for day keys.
func (s *Service) Location() *time.Location {
	return s.location
}

// Now returns the current instant of the service clock.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// DayKey returns the day key for t in the service timezone.
func (s *Service) DayKey(t time.Time) string {
	return datetime.DayKey(t, s.location)
}

// DailyQuote returns today's quote for entityID.
func (s *Service) DailyQuote(entityID string) (content.Quote, error) {
	return s.DailyQuoteAt(entityID, s.clock.Now())
}

// DailyQuoteAt returns the quote entityID sees on the calendar day of day.
func (s *Service) DailyQuoteAt(entityID string, day time.Time) (content.Quote, error) {
	if err := checkEntityID(entityID); err != nil {
		recordError(kindQuote, "invalid_entity")
		return content.Quote{}, err
	}

	quote, err := s.quoteFor(entityID, s.DayKey(day))
	if err != nil {
		recordError(kindQuote, "pool")
		return content.Quote{}, err
	}
	recordSelection(kindQuote)
	return quote, nil
}

// RecentQuotes returns the quotes entityID saw over the last days days,
// today first. days <= 0 selects the default window; larger windows are
// capped at constants.MaxRecentDays.
func (s *Service) RecentQuotes(entityID string, days int) ([]DatedQuote, error) {
	return s.RecentQuotesAt(entityID, days, s.clock.Now())
}

// RecentQuotesAt is RecentQuotes relative to the calendar day of day.
func (s *Service) RecentQuotesAt(entityID string, days int, day time.Time) ([]DatedQuote, error) {
	if err := checkEntityID(entityID); err != nil {
		recordError(kindRecentQuotes, "invalid_entity")
		return nil, err
	}
	days = ClampDays(days)

	quotes := make([]DatedQuote, 0, days)
	for offset := 0; offset < days; offset++ {
		key := s.DayKey(datetime.OffsetDay(day, s.location, -offset))
		quote, err := s.quoteFor(entityID, key)
		if err != nil {
			recordError(kindRecentQuotes, "pool")
			return nil, err
		}
		quotes = append(quotes, DatedQuote{Day: key, Quote: quote})
	}
	recordSelection(kindRecentQuotes)
	return quotes, nil
}

// DailyRecommendations returns today's recommendation set for entityID.
func (s *Service) DailyRecommendations(entityID string, metrics content.VendorMetrics) (content.RecommendationSet, error) {
	return s.DailyRecommendationsAt(entityID, metrics, s.clock.Now())
}

// DailyRecommendationsAt builds each category pool from metrics and picks
// from it with the seed entity-category-day. Categories are independent and
// no deduplication happens across them.
func (s *Service) DailyRecommendationsAt(entityID string, metrics content.VendorMetrics, day time.Time) (content.RecommendationSet, error) {
	var set content.RecommendationSet

	if err := checkEntityID(entityID); err != nil {
		recordError(kindRecommendations, "invalid_entity")
		return set, err
	}
	metrics = metrics.Normalized()
	if err := validation.Struct(metrics); err != nil {
		recordError(kindRecommendations, "invalid_metrics")
		return set, fmt.Errorf("%w: %w", ErrInvalidMetrics, err)
	}

	key := s.DayKey(day)
	var err error
	if set.Financial, err = pickTips(entityID, constants.CategoryFinancial, key, content.FinancialPool(metrics)); err != nil {
		return s.failRecommendations(err)
	}
	if set.Performance, err = pickTips(entityID, constants.CategoryPerformance, key, content.PerformancePool(metrics)); err != nil {
		return s.failRecommendations(err)
	}
	if set.Growth, err = pickTips(entityID, constants.CategoryGrowth, key, content.GrowthPool(metrics)); err != nil {
		return s.failRecommendations(err)
	}
	if set.Risk, err = pickTips(entityID, constants.CategoryRisk, key, content.RiskPool(metrics)); err != nil {
		return s.failRecommendations(err)
	}
	actions := content.ActionPool(metrics)
	PoolSize.WithLabelValues(constants.CategoryActions).Set(float64(len(actions)))
	if set.Actions, err = rotation.PickMany(actions, constants.ActionsPerDay, rotation.SeedString(entityID, constants.CategoryActions, key)); err != nil {
		return s.failRecommendations(err)
	}

	s.logger.Debug("recommendations selected",
		zap.String("op", "insights.DailyRecommendationsAt"),
		zap.String("entity", entityID),
		zap.String("day", key),
	)
	recordSelection(kindRecommendations)
	return set, nil
}

func (s *Service) failRecommendations(err error) (content.RecommendationSet, error) {
	recordError(kindRecommendations, "pool")
	s.logger.Error("recommendation pool unusable",
		zap.String("op", "insights.DailyRecommendationsAt"),
		zap.Error(err),
	)
	return content.RecommendationSet{}, err
}

func (s *Service) quoteFor(entityID, dayKey string) (content.Quote, error) {
	idx, err := rotation.Index(content.QuoteCount(), rotation.SeedString(entityID, "", dayKey))
	if err != nil {
		return content.Quote{}, err
	}
	s.logger.Debug("quote selected",
		zap.String("op", "insights.quoteFor"),
		zap.String("entity", entityID),
		zap.String("day", dayKey),
		zap.Int("index", idx),
	)
	return content.QuoteAt(idx), nil
}

func pickTips(entityID, category, dayKey string, pool []content.Recommendation) ([]content.Recommendation, error) {
	PoolSize.WithLabelValues(category).Set(float64(len(pool)))
	return rotation.PickMany(pool, constants.TipsPerCategory, rotation.SeedString(entityID, category, dayKey))
}

// ClampDays maps a requested recent-quotes window onto 1..MaxRecentDays,
// with non-positive values meaning the default window.
func ClampDays(days int) int {
	if days <= 0 {
		return constants.DefaultRecentDays
	}
	if days > constants.MaxRecentDays {
		return constants.MaxRecentDays
	}
	return days
}

func checkEntityID(entityID string) error {
	if strings.TrimSpace(entityID) == "" {
		return ErrInvalidEntityID
	}
	return nil
}
