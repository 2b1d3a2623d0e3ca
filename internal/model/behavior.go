package model

// Action is a user's predicted near-term intent
type Action string

const (
	ActionPurchase   Action = "purchase"
	ActionChurn      Action = "churn"
	ActionNavigation Action = "navigation"
)

// IsValid reports whether a is one of the three known actions
func (a Action) IsValid() bool {
	switch a {
	case ActionPurchase, ActionChurn, ActionNavigation:
		return true
	}
	return false
}

// ActionScores is the score vector the predictor ranks actions by. Purchase
// and churn lie in [0,1]; navigation is derived as 1-purchase-churn and can
// go negative, so it is only meaningful for ranking, never as a probability.
type ActionScores struct {
	Purchase   float64 `json:"purchase"`
	Churn      float64 `json:"churn"`
	Navigation float64 `json:"navigation"`
}

// BehaviorSnapshot is the derived numeric summary of a context used for
// scoring. Owned by a single adaptation request.
type BehaviorSnapshot struct {
	UserID          int64          `json:"user_id"`
	PageViews       int            `json:"page_views"`
	Clicks          int            `json:"clicks"`
	Geolocation     GeoPoint       `json:"geolocation"`
	EngagementScore float64        `json:"engagement_score"` // 0-1
	InteractionTime float64        `json:"interaction_time"` // seconds
	InteractionMap  map[string]int `json:"interaction_map,omitempty"`
	PredictedAction Action         `json:"predicted_action,omitempty"` // set by the predictor
}
