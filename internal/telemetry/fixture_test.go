package telemetry

import (
	"context"
	"reflect"
	"testing"
)

func TestFixtureSource_Deterministic(t *testing.T) {
	src := NewFixtureSource()

	a, err := src.Collect(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := src.Collect(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same user produced different contexts:\n%+v\n%+v", a, b)
	}
}

func TestFixtureSource_ValidFields(t *testing.T) {
	src := NewFixtureSource()

	for _, userID := range []int64{1, 7, 42, 1000, 99999} {
		ctx, err := src.Collect(context.Background(), userID)
		if err != nil {
			t.Fatalf("user %d: unexpected error: %v", userID, err)
		}
		if ctx.UserID != userID {
			t.Errorf("user %d: context carries id %d", userID, ctx.UserID)
		}
		if !ctx.DeviceType.IsValid() {
			t.Errorf("user %d: invalid device type %q", userID, ctx.DeviceType)
		}
		if !ctx.TimeOfDay.IsValid() {
			t.Errorf("user %d: invalid time of day %q", userID, ctx.TimeOfDay)
		}
		if !ctx.Geolocation.InRange() {
			t.Errorf("user %d: geolocation out of range %+v", userID, ctx.Geolocation)
		}
		if len(ctx.ViewHistory) < 2 || len(ctx.ViewHistory) > 4 {
			t.Errorf("user %d: view history size %d outside 2-4", userID, len(ctx.ViewHistory))
		}
		if len(ctx.ClickData) < 1 || len(ctx.ClickData) > 3 {
			t.Errorf("user %d: click data size %d outside 1-3", userID, len(ctx.ClickData))
		}
	}
}

func TestFixtureSource_VariesAcrossUsers(t *testing.T) {
	src := NewFixtureSource()

	distinct := make(map[string]bool)
	for userID := int64(1); userID <= 20; userID++ {
		ctx, err := src.Collect(context.Background(), userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		distinct[string(ctx.DeviceType)+"/"+string(ctx.TimeOfDay)+"/"+ctx.ScreenResolution] = true
	}
	if len(distinct) < 5 {
		t.Errorf("fixture contexts barely vary: %d distinct shapes over 20 users", len(distinct))
	}
}
