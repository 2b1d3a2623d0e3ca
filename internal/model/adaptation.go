package model

// DegradedSources flags collaborators that failed during an adaptation
// request. The engine proceeds with empty data from a failed source, and the
// caller can tell "no rules matched" apart from "rule lookup failed".
type DegradedSources struct {
	RuleStore      bool `json:"rule_store,omitempty"`
	InteractionLog bool `json:"interaction_log,omitempty"`
	StatusLookup   bool `json:"status_lookup,omitempty"`
}

// Any reports whether at least one collaborator failed
func (d DegradedSources) Any() bool {
	return d.RuleStore || d.InteractionLog || d.StatusLookup
}

// AdaptationResult is the full outcome of one adapt request as exposed to the
// presentation layer
type AdaptationResult struct {
	UserID          int64                 `json:"user_id"`
	PredictedAction Action                `json:"predicted_action"`
	Scores          ActionScores          `json:"scores"`
	Recommendations []RecommendationEntry `json:"recommendations"`
	MatchedRules    []MatchResult         `json:"matched_rules"`
	Layout          LayoutDescriptor      `json:"layout"`
	Context         *Context              `json:"context"`
	Behavior        *BehaviorSnapshot     `json:"behavior"`
	Degraded        DegradedSources       `json:"degraded,omitempty"`
}
