package engine

import "adaptiveui/internal/model"

// Recommend maps a predicted action to its default recommendation. Pure
// lookup over the closed action enum; used standalone when no rule applies
// and to seed the main content when rules do apply.
func Recommend(action model.Action) model.RecommendationEntry {
	switch action {
	case model.ActionPurchase:
		return model.RecommendationEntry{Type: "cta_widget", Content: "Add to cart", Priority: 1}
	case model.ActionChurn:
		return model.RecommendationEntry{Type: "retention_widget", Content: "Special offer", Priority: 1}
	case model.ActionNavigation:
		return model.RecommendationEntry{Type: "navigation_widget", Content: "Suggested sections", Priority: 2}
	}
	// Unknown actions fall back to navigation guidance.
	return model.RecommendationEntry{Type: "navigation_widget", Content: "Suggested sections", Priority: 2}
}
