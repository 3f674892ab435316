// Package content holds the immutable content pools the daily rotation draws
// from: the quote catalog and the rule tables that build recommendation pools
// from a vendor's metrics.
package content

// Quote is an entry of the quote catalog.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Title  string `json:"title"`
}

// Recommendation is a single business tip.
type Recommendation struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ActionItem is a short, concrete task for the day.
type ActionItem struct {
	Label string `json:"label"`
	Desc  string `json:"desc"`
}

// RecommendationSet is one day's selection for a vendor.
type RecommendationSet struct {
	Financial   []Recommendation `json:"financial"`
	Performance []Recommendation `json:"performance"`
	Growth      []Recommendation `json:"growth"`
	Risk        []Recommendation `json:"risk"`
	Actions     []ActionItem     `json:"actions"`
}

// Rule contributes one item to a pool when its predicate holds. A nil When
// always holds.
type Rule[T any] struct {
	Name  string
	When  func(VendorMetrics) bool
	Build func(VendorMetrics) T
}

// Applies reports whether the rule contributes for m.
func (r Rule[T]) Applies(m VendorMetrics) bool {
	return r.When == nil || r.When(m)
}

// BuildPool evaluates rules top to bottom and returns the items of those that
// apply, in rule order.
func BuildPool[T any](rules []Rule[T], m VendorMetrics) []T {
	pool := make([]T, 0, len(rules))
	for _, rule := range rules {
		if rule.Applies(m) {
			pool = append(pool, rule.Build(m))
		}
	}
	return pool
}

func always[T any](name string, item T) Rule[T] {
	return Rule[T]{Name: name, Build: func(VendorMetrics) T { return item }}
}
