package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adaptiveui/internal/engine"
	"adaptiveui/internal/model"
	"adaptiveui/internal/repository"
	"adaptiveui/internal/telemetry"
)

// AdaptationService runs the adaptation pipeline against the live
// collaborators: telemetry, interaction log, rule store and status lookup.
type AdaptationService struct {
	engine       *engine.Engine
	rules        repository.RuleRepo
	interactions repository.InteractionRepo
	telemetry    telemetry.Source
	status       *StatusService
	tracker      *TrackingService
	broadcaster  Broadcaster
	logger       *zap.Logger
}

// NewAdaptationService creates a new adaptation service
func NewAdaptationService(
	eng *engine.Engine,
	rules repository.RuleRepo,
	interactions repository.InteractionRepo,
	source telemetry.Source,
	status *StatusService,
	tracker *TrackingService,
	logger *zap.Logger,
) *AdaptationService {
	return &AdaptationService{
		engine:       eng,
		rules:        rules,
		interactions: interactions,
		telemetry:    source,
		status:       status,
		tracker:      tracker,
		logger:       logger,
	}
}

// SetBroadcaster injects the live event feed
func (s *AdaptationService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// CollectContext returns the user's current context as data.
func (s *AdaptationService) CollectContext(ctx context.Context, userID int64) (*model.Context, error) {
	userCtx, err := s.telemetry.Collect(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("collect context: %w", err)
	}
	return userCtx, nil
}

// EvaluateRules reports every enabled rule's match status against the user's
// current context, including the rules that did not match. Feeds the
// dashboard's rule inspection view.
func (s *AdaptationService) EvaluateRules(ctx context.Context, userID int64) ([]model.MatchResult, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id %d", engine.ErrInvalidContext, userID)
	}

	userCtx, err := s.telemetry.Collect(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("collect context: %w", err)
	}

	rules, err := s.rules.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	userType, err := s.status.Lookup(ctx, userID)
	if err != nil {
		s.logger.Warn("status lookup failed, user-type conditions will not match",
			zap.Int64("userId", userID), zap.Error(err))
		userType = ""
	}

	return engine.MatchAll(engine.MatchContext{
		DeviceType: userCtx.DeviceType,
		TimeOfDay:  userCtx.TimeOfDay,
		UserType:   userType,
	}, rules), nil
}

// Adapt executes one adaptation request. supplied optionally carries a
// client-provided context; when nil the telemetry source fills it in. A
// failing rule store, interaction log or status lookup does not fail the
// request: the pipeline proceeds with empty data and the corresponding
// degraded flag is set so the caller can tell failure from an empty result.
// A non-positive user id and other context validation failures do surface
// as engine.ErrInvalidContext.
func (s *AdaptationService) Adapt(ctx context.Context, userID int64, supplied *model.Context) (*model.AdaptationResult, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id %d", engine.ErrInvalidContext, userID)
	}

	userCtx := supplied
	if userCtx == nil {
		var err error
		userCtx, err = s.telemetry.Collect(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("collect context: %w", err)
		}
	}
	if userCtx.UserID == 0 {
		userCtx.UserID = userID
	}

	var degraded model.DegradedSources

	recent, err := s.interactions.Recent(ctx, userID, engine.RecentWindow)
	if err != nil {
		s.logger.Warn("interaction log unavailable, proceeding with empty history",
			zap.Int64("userId", userID), zap.Error(err))
		degraded.InteractionLog = true
		recent = nil
	}

	// Single rule-store read per request; matching and assembly both use it.
	rules, err := s.rules.ListEnabled(ctx)
	if err != nil {
		s.logger.Warn("rule store unavailable, proceeding with empty rule set",
			zap.Int64("userId", userID), zap.Error(err))
		degraded.RuleStore = true
		rules = nil
	}

	userType, err := s.status.Lookup(ctx, userID)
	if err != nil {
		s.logger.Warn("status lookup failed, user-type conditions will not match",
			zap.Int64("userId", userID), zap.Error(err))
		degraded.StatusLookup = true
		userType = ""
	}

	res, err := s.engine.Run(userCtx, recent, rules, userType)
	if err != nil {
		return nil, err
	}

	if s.tracker != nil {
		if _, err := s.tracker.Track(ctx, userID, "login", "", nil); err != nil {
			s.logger.Warn("failed to record login interaction",
				zap.Int64("userId", userID), zap.Error(err))
		}
	}

	result := &model.AdaptationResult{
		UserID:          userID,
		PredictedAction: res.Action,
		Scores:          res.Scores,
		Recommendations: []model.RecommendationEntry{res.Recommendation},
		MatchedRules:    res.Matches,
		Layout:          res.Layout,
		Context:         userCtx,
		Behavior:        res.Snapshot,
		Degraded:        degraded,
	}

	s.logger.Info("adaptation served",
		zap.Int64("userId", userID),
		zap.String("action", string(res.Action)),
		zap.Int("matchedRules", len(res.Matches)),
		zap.Bool("degraded", degraded.Any()))

	if s.broadcaster != nil {
		s.broadcaster.Publish("adaptation", map[string]interface{}{
			"user_id":          userID,
			"predicted_action": res.Action,
			"matched_rules":    len(res.Matches),
			"degraded":         degraded.Any(),
		})
	}

	return result, nil
}
