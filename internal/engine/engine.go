// Package engine implements the context-driven adaptation pipeline: behavior
// aggregation, action prediction, rule matching and layout assembly. All of
// it is pure computation; collaborators (rule store, interaction log, status
// lookup) live in the service layer and hand their data in.
package engine

import "adaptiveui/internal/model"

// Engine bundles the pipeline behind one entry point.
type Engine struct {
	predictor *Predictor
}

// New creates an engine with the given predictor weights.
func New(cfg PredictorConfig) *Engine {
	return &Engine{predictor: NewPredictor(cfg)}
}

// Result is the outcome of one pipeline run.
type Result struct {
	Snapshot       *model.BehaviorSnapshot
	Action         model.Action
	Scores         model.ActionScores
	Matches        []model.MatchResult
	Recommendation model.RecommendationEntry
	Layout         model.LayoutDescriptor
}

// Run executes the full pipeline for one request. The rule slice must be the
// single per-request read of the rule store; it is used consistently for both
// matching and assembly. recent is the interaction-log window, newest first.
func (e *Engine) Run(ctx *model.Context, recent []model.Interaction, rules []model.AdaptationRule, userType string) (*Result, error) {
	snapshot, err := BuildSnapshot(ctx, recent)
	if err != nil {
		return nil, err
	}

	action, scores := e.predictor.Predict(snapshot)

	matches := MatchRules(MatchContext{
		DeviceType: ctx.DeviceType,
		TimeOfDay:  ctx.TimeOfDay,
		UserType:   userType,
	}, rules)

	rec := Recommend(action)

	return &Result{
		Snapshot:       snapshot,
		Action:         action,
		Scores:         scores,
		Matches:        matches,
		Recommendation: rec,
		Layout:         AssembleLayout(matches, rec),
	}, nil
}
