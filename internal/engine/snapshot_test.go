package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"adaptiveui/internal/model"
)

func validContext() *model.Context {
	return &model.Context{
		UserID:           42,
		DeviceType:       model.DeviceMobile,
		ScreenResolution: "375x667",
		OperatingSystem:  "iOS 15",
		Geolocation:      model.GeoPoint{Latitude: 55.7558, Longitude: 37.6173},
		TimeOfDay:        model.TimeMorning,
		ViewHistory:      []string{"home", "products", "cart"},
		ClickData:        []string{"button_1", "card_4"},
	}
}

func interactionsSpanning(n int, span time.Duration) []model.Interaction {
	newest := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]model.Interaction, n)
	for i := 0; i < n; i++ {
		var ts time.Time
		if n > 1 {
			ts = newest.Add(-span * time.Duration(i) / time.Duration(n-1))
		} else {
			ts = newest
		}
		out[i] = model.Interaction{UserID: 42, Action: "click", Timestamp: ts}
	}
	return out
}

func TestBuildSnapshot_Counts(t *testing.T) {
	ctx := validContext()
	snap, err := BuildSnapshot(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.PageViews != 3 {
		t.Errorf("page views: got %d, want 3", snap.PageViews)
	}
	if snap.Clicks != 2 {
		t.Errorf("clicks: got %d, want 2", snap.Clicks)
	}
	if snap.UserID != 42 {
		t.Errorf("user id: got %d, want 42", snap.UserID)
	}
	if snap.Geolocation != ctx.Geolocation {
		t.Errorf("geolocation not copied: got %+v", snap.Geolocation)
	}
	if snap.EngagementScore < 0 || snap.EngagementScore >= 1 {
		t.Errorf("engagement score out of range: %v", snap.EngagementScore)
	}
	if snap.PredictedAction != "" {
		t.Errorf("predicted action should be unset, got %q", snap.PredictedAction)
	}
}

func TestBuildSnapshot_InvalidContext(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.Context)
	}{
		{"zero-user-id", func(c *model.Context) { c.UserID = 0 }},
		{"negative-user-id", func(c *model.Context) { c.UserID = -7 }},
		{"latitude-too-high", func(c *model.Context) { c.Geolocation.Latitude = 90.01 }},
		{"latitude-too-low", func(c *model.Context) { c.Geolocation.Latitude = -95 }},
		{"longitude-too-high", func(c *model.Context) { c.Geolocation.Longitude = 180.5 }},
		{"longitude-too-low", func(c *model.Context) { c.Geolocation.Longitude = -200 }},
		{"latitude-nan", func(c *model.Context) { c.Geolocation.Latitude = math.NaN() }},
		{"longitude-inf", func(c *model.Context) { c.Geolocation.Longitude = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := validContext()
			tt.modify(ctx)
			_, err := BuildSnapshot(ctx, nil)
			if !errors.Is(err, ErrInvalidContext) {
				t.Errorf("got %v, want ErrInvalidContext", err)
			}
		})
	}

	t.Run("nil-context", func(t *testing.T) {
		if _, err := BuildSnapshot(nil, nil); !errors.Is(err, ErrInvalidContext) {
			t.Errorf("got %v, want ErrInvalidContext", err)
		}
	})
}

func TestBuildSnapshot_SessionSpan(t *testing.T) {
	recent := interactionsSpanning(10, 5*time.Minute)
	snap, err := BuildSnapshot(validContext(), recent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := snap.InteractionTime, 300.0; got != want {
		t.Errorf("interaction time: got %v, want %v", got, want)
	}
	if snap.InteractionMap["recent_events"] != 10 {
		t.Errorf("recent_events: got %d, want 10", snap.InteractionMap["recent_events"])
	}
}

func TestBuildSnapshot_SessionSpanCapped(t *testing.T) {
	recent := interactionsSpanning(5, 3*time.Hour)
	snap, err := BuildSnapshot(validContext(), recent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.InteractionTime != maxSessionSeconds {
		t.Errorf("interaction time: got %v, want cap %v", snap.InteractionTime, float64(maxSessionSeconds))
	}
}

func TestBuildSnapshot_WindowLimit(t *testing.T) {
	recent := interactionsSpanning(250, 40*time.Minute)
	snap, err := BuildSnapshot(validContext(), recent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.InteractionMap["recent_events"] != RecentWindow {
		t.Errorf("recent_events: got %d, want window %d", snap.InteractionMap["recent_events"], RecentWindow)
	}
}

// More observed engagement must never lower the engagement score.
func TestEngagementScore_Monotone(t *testing.T) {
	base := engagementScore(3, 2, 10, 300)

	if got := engagementScore(4, 2, 10, 300); got < base {
		t.Errorf("extra page view lowered score: %v < %v", got, base)
	}
	if got := engagementScore(3, 3, 10, 300); got < base {
		t.Errorf("extra click lowered score: %v < %v", got, base)
	}
	if got := engagementScore(3, 2, 11, 300); got < base {
		t.Errorf("extra interaction lowered score: %v < %v", got, base)
	}
	if got := engagementScore(3, 2, 10, 600); got < base {
		t.Errorf("longer session lowered score: %v < %v", got, base)
	}
}

func TestEngagementScore_Bounds(t *testing.T) {
	tests := []struct {
		name                     string
		views, clicks, events    int
		sessionSec               float64
	}{
		{"empty", 0, 0, 0, 0},
		{"typical", 4, 3, 20, 400},
		{"heavy", 500, 500, 100, 3600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engagementScore(tt.views, tt.clicks, tt.events, tt.sessionSec)
			if got < 0 || got >= 1 {
				t.Errorf("score %v out of [0,1)", got)
			}
		})
	}
}

func TestBuildSnapshot_Deterministic(t *testing.T) {
	recent := interactionsSpanning(20, 10*time.Minute)
	a, err := BuildSnapshot(validContext(), recent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildSnapshot(validContext(), recent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.EngagementScore != b.EngagementScore || a.InteractionTime != b.InteractionTime {
		t.Errorf("snapshot build not deterministic: %+v vs %+v", a, b)
	}
}
