package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adaptiveui/internal/model"
	"adaptiveui/internal/repository"
)

// TrackingService appends user interactions to the interaction log
type TrackingService struct {
	interactions repository.InteractionRepo
	broadcaster  Broadcaster
	logger       *zap.Logger
}

// NewTrackingService creates a new tracking service
func NewTrackingService(interactions repository.InteractionRepo, logger *zap.Logger) *TrackingService {
	return &TrackingService{
		interactions: interactions,
		logger:       logger,
	}
}

// SetBroadcaster injects the live event feed
func (s *TrackingService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Track records a single interaction. A session id is stamped into the
// metadata when the client did not supply one.
func (s *TrackingService) Track(ctx context.Context, userID int64, action, componentID string, metadata map[string]string) (*model.Interaction, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("track: invalid user id %d", userID)
	}
	if action == "" {
		return nil, fmt.Errorf("track: empty action")
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	if meta["session_id"] == "" {
		meta["session_id"] = uuid.NewString()
	}

	interaction := &model.Interaction{
		UserID:      userID,
		Action:      action,
		ComponentID: componentID,
		Timestamp:   time.Now().UTC(),
		Metadata:    meta,
	}

	if err := s.interactions.Insert(ctx, interaction); err != nil {
		return nil, fmt.Errorf("record interaction: %w", err)
	}

	s.logger.Debug("interaction recorded",
		zap.Int64("userId", userID), zap.String("action", action))

	if s.broadcaster != nil {
		s.broadcaster.Publish("interaction", map[string]interface{}{
			"user_id": userID,
			"action":  action,
		})
	}

	return interaction, nil
}
