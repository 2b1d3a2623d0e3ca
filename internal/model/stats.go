package model

import "time"

// Statistics is an aggregate snapshot over the rule store and interaction log
type Statistics struct {
	TotalRules   int                `json:"total_rules"`
	ActiveRules  int                `json:"active_rules"`
	TotalUsers   int                `json:"total_users"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
	DateRecorded time.Time          `json:"date_recorded"`
}

// AnalyticsReport bundles the statistics snapshot with the current rule set
// for the dashboard
type AnalyticsReport struct {
	Summary   Statistics       `json:"summary"`
	Rules     []AdaptationRule `json:"rules"`
	Timestamp time.Time        `json:"timestamp"`
}

// VariantComparison pairs two rules for side-by-side review
type VariantComparison struct {
	VariantA   *AdaptationRule `json:"variant_a"`
	VariantB   *AdaptationRule `json:"variant_b"`
	Comparison string          `json:"comparison"`
}
