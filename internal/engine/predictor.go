package engine

import (
	"adaptiveui/internal/model"
)

// PredictorConfig holds the scoring weights and caps. Passed explicitly into
// NewPredictor so calibration lives in configuration, not ambient state.
type PredictorConfig struct {
	EngagementWeight float64 // purchase: weight of the engagement score
	ClickBonus       float64 // purchase: bonus per click
	ClickBonusCap    float64
	TimeBonus        float64 // purchase: bonus per interaction second
	TimeBonusCap     float64

	ChurnNoClicks     float64 // churn score when no clicks at all
	ChurnShortSession float64 // churn score for short sessions with clicks
	ChurnBaseline     float64 // churn score otherwise
	ShortSessionSec   float64 // threshold between short and engaged sessions
}

// DefaultPredictorConfig returns the reference weights.
func DefaultPredictorConfig() PredictorConfig {
	return PredictorConfig{
		EngagementWeight:  0.5,
		ClickBonus:        0.05,
		ClickBonusCap:     0.3,
		TimeBonus:         0.01,
		TimeBonusCap:      0.2,
		ChurnNoClicks:     0.6,
		ChurnShortSession: 0.3,
		ChurnBaseline:     0.1,
		ShortSessionSec:   60,
	}
}

// Predictor scores the three candidate next-actions from a behavior snapshot.
type Predictor struct {
	cfg PredictorConfig
}

// NewPredictor creates a predictor with the given weights.
func NewPredictor(cfg PredictorConfig) *Predictor {
	return &Predictor{cfg: cfg}
}

// Predict returns the highest-scoring action and the full score vector, and
// records the action on the snapshot. Ties resolve purchase > churn >
// navigation. The navigation score is derived as 1-purchase-churn and is not
// clamped: it can go negative and is only valid for ranking.
func (p *Predictor) Predict(s *model.BehaviorSnapshot) (model.Action, model.ActionScores) {
	scores := model.ActionScores{
		Purchase: p.purchaseScore(s),
		Churn:    p.churnScore(s),
	}
	scores.Navigation = 1 - scores.Purchase - scores.Churn

	action := model.ActionPurchase
	best := scores.Purchase
	if scores.Churn > best {
		action, best = model.ActionChurn, scores.Churn
	}
	if scores.Navigation > best {
		action = model.ActionNavigation
	}

	s.PredictedAction = action
	return action, scores
}

func (p *Predictor) purchaseScore(s *model.BehaviorSnapshot) float64 {
	score := p.cfg.EngagementWeight*s.EngagementScore +
		min(p.cfg.ClickBonusCap, float64(s.Clicks)*p.cfg.ClickBonus) +
		min(p.cfg.TimeBonusCap, s.InteractionTime*p.cfg.TimeBonus)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func (p *Predictor) churnScore(s *model.BehaviorSnapshot) float64 {
	if s.Clicks == 0 {
		return p.cfg.ChurnNoClicks
	}
	if s.InteractionTime < p.cfg.ShortSessionSec {
		return p.cfg.ChurnShortSession
	}
	return p.cfg.ChurnBaseline
}
