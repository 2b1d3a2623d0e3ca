package engine

import (
	"errors"
	"fmt"
	"math"

	"adaptiveui/internal/model"
)

// ErrInvalidContext is returned when a context fails validation before
// snapshot building. Wrapped errors carry the offending field.
var ErrInvalidContext = errors.New("invalid context")

// RecentWindow caps how many interaction-log entries feed a snapshot.
const RecentWindow = 100

const maxSessionSeconds = 3600

// BuildSnapshot derives a behavior snapshot from a context and the user's
// recent interactions (newest first). The derivation is deterministic and
// monotone: more interactions or a longer observed session never lower the
// engagement score.
func BuildSnapshot(ctx *model.Context, recent []model.Interaction) (*model.BehaviorSnapshot, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: nil context", ErrInvalidContext)
	}
	if ctx.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id %d", ErrInvalidContext, ctx.UserID)
	}
	if !ctx.Geolocation.InRange() {
		return nil, fmt.Errorf("%w: geolocation (%v, %v) out of range",
			ErrInvalidContext, ctx.Geolocation.Latitude, ctx.Geolocation.Longitude)
	}

	if len(recent) > RecentWindow {
		recent = recent[:RecentWindow]
	}

	pageViews := len(ctx.ViewHistory)
	clicks := len(ctx.ClickData)
	sessionSec := observedSessionSeconds(recent)
	score := engagementScore(pageViews, clicks, len(recent), sessionSec)

	return &model.BehaviorSnapshot{
		UserID:          ctx.UserID,
		PageViews:       pageViews,
		Clicks:          clicks,
		Geolocation:     ctx.Geolocation,
		EngagementScore: score,
		InteractionTime: sessionSec,
		InteractionMap: map[string]int{
			"page_views":    pageViews,
			"clicks":        clicks,
			"time_spent":    int(sessionSec),
			"recent_events": len(recent),
		},
	}, nil
}

// observedSessionSeconds measures the span covered by the recent-interaction
// window, capped at one hour. Entries arrive newest first.
func observedSessionSeconds(recent []model.Interaction) float64 {
	if len(recent) < 2 {
		return 0
	}
	span := recent[0].Timestamp.Sub(recent[len(recent)-1].Timestamp).Seconds()
	if span < 0 {
		return 0
	}
	if span > maxSessionSeconds {
		return maxSessionSeconds
	}
	return span
}

// engagementScore maps raw activity counts into [0,1). Strictly increasing in
// every input, so observed engagement can only push the score up.
func engagementScore(pageViews, clicks, recentCount int, sessionSec float64) float64 {
	raw := 0.15*float64(pageViews) +
		0.1*float64(clicks) +
		0.02*float64(recentCount) +
		sessionSec/1800.0
	return 1 - math.Exp(-raw)
}
