package engine

import (
	"testing"

	"adaptiveui/internal/model"
)

func devPtr(d model.DeviceType) *model.DeviceType { return &d }
func todPtr(t model.TimeOfDay) *model.TimeOfDay   { return &t }
func strPtr(s string) *string                     { return &s }

func mobileMorning() MatchContext {
	return MatchContext{
		DeviceType: model.DeviceMobile,
		TimeOfDay:  model.TimeMorning,
		UserType:   "regular",
	}
}

func TestMatchRules_Conditions(t *testing.T) {
	tests := []struct {
		name       string
		conditions model.RuleConditions
		want       bool
	}{
		{"all-wildcards", model.RuleConditions{}, true},
		{"device-match", model.RuleConditions{DeviceType: devPtr(model.DeviceMobile)}, true},
		{"device-mismatch", model.RuleConditions{DeviceType: devPtr(model.DeviceDesktop)}, false},
		{"time-match", model.RuleConditions{TimeOfDay: todPtr(model.TimeMorning)}, true},
		{"time-mismatch", model.RuleConditions{TimeOfDay: todPtr(model.TimeNight)}, false},
		{"user-type-match", model.RuleConditions{UserType: strPtr("regular")}, true},
		{"user-type-mismatch", model.RuleConditions{UserType: strPtr("vip")}, false},
		{
			"all-fields-match",
			model.RuleConditions{
				DeviceType: devPtr(model.DeviceMobile),
				TimeOfDay:  todPtr(model.TimeMorning),
				UserType:   strPtr("regular"),
			},
			true,
		},
		{
			"one-of-three-mismatches",
			model.RuleConditions{
				DeviceType: devPtr(model.DeviceMobile),
				TimeOfDay:  todPtr(model.TimeEvening),
				UserType:   strPtr("regular"),
			},
			false,
		},
		// Empty-string values behave like absent fields.
		{"empty-user-type-is-wildcard", model.RuleConditions{UserType: strPtr("")}, true},
		// Unrecognized keys never block a match.
		{
			"unknown-extra-keys-ignored",
			model.RuleConditions{Extra: map[string]string{"weather": "rain", "locale": "de"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := []model.AdaptationRule{{ID: "r1", Conditions: tt.conditions, Priority: 1, Enabled: true}}
			got := MatchRules(mobileMorning(), rules)
			if matched := len(got) == 1; matched != tt.want {
				t.Errorf("matched=%v, want %v", matched, tt.want)
			}
		})
	}
}

func TestMatchRules_SkipsDisabled(t *testing.T) {
	rules := []model.AdaptationRule{
		{ID: "off", Priority: 100, Enabled: false},
		{ID: "on", Priority: 1, Enabled: true},
	}
	got := MatchRules(mobileMorning(), rules)
	if len(got) != 1 || got[0].RuleID != "on" {
		t.Errorf("got %+v, want only the enabled rule", got)
	}
}

func TestMatchRules_PriorityOrder(t *testing.T) {
	rules := []model.AdaptationRule{
		{ID: "low", Priority: 1, Enabled: true},
		{ID: "high", Priority: 10, Enabled: true},
		{ID: "mid", Priority: 5, Enabled: true},
	}
	got := MatchRules(mobileMorning(), rules)
	wantOrder := []string{"high", "mid", "low"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d matches, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].RuleID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].RuleID, id)
		}
	}
}

// Equal-priority ties keep store order. This is the documented tie-break;
// specificity plays no role at equal priority.
func TestMatchRules_EqualPriorityKeepsStoreOrder(t *testing.T) {
	rules := []model.AdaptationRule{
		{ID: "first", Priority: 5, Enabled: true},
		{
			ID:       "second-more-specific",
			Priority: 5,
			Enabled:  true,
			Conditions: model.RuleConditions{
				DeviceType: devPtr(model.DeviceMobile),
				TimeOfDay:  todPtr(model.TimeMorning),
			},
		},
		{ID: "third", Priority: 5, Enabled: true},
	}
	got := MatchRules(mobileMorning(), rules)
	wantOrder := []string{"first", "second-more-specific", "third"}
	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3", len(got))
	}
	for i, id := range wantOrder {
		if got[i].RuleID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].RuleID, id)
		}
	}
}

// A wildcard rule whose conditions are a subset of a more specific matching
// rule never outranks it at equal priority when the store lists the specific
// rule first, and never outranks it at lower priority regardless of order.
func TestMatchRules_SpecificityViaPriority(t *testing.T) {
	specific := model.AdaptationRule{
		ID:       "specific",
		Priority: 10,
		Enabled:  true,
		Conditions: model.RuleConditions{
			DeviceType: devPtr(model.DeviceMobile),
			TimeOfDay:  todPtr(model.TimeMorning),
		},
	}
	broad := model.AdaptationRule{ID: "broad", Priority: 5, Enabled: true}

	got := MatchRules(mobileMorning(), []model.AdaptationRule{broad, specific})
	if len(got) != 2 || got[0].RuleID != "specific" {
		t.Errorf("got %+v, want the specific higher-priority rule first", got)
	}
}

func TestMatchRules_NoMatchIsEmpty(t *testing.T) {
	rules := []model.AdaptationRule{
		{ID: "desktop-only", Priority: 3, Enabled: true,
			Conditions: model.RuleConditions{DeviceType: devPtr(model.DeviceDesktop)}},
	}
	got := MatchRules(mobileMorning(), rules)
	if len(got) != 0 {
		t.Errorf("got %+v, want empty match list", got)
	}
}

func TestMatchRules_CarriesActions(t *testing.T) {
	rules := []model.AdaptationRule{
		{
			ID:       "r1",
			Priority: 10,
			Enabled:  true,
			Conditions: model.RuleConditions{
				DeviceType: devPtr(model.DeviceMobile),
				TimeOfDay:  todPtr(model.TimeMorning),
			},
			Actions: model.RuleActions{ShowComponents: []string{"quick_tasks"}, Layout: "compact"},
		},
	}
	got := MatchRules(mobileMorning(), rules)
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if got[0].Actions.Layout != "compact" || len(got[0].Actions.ShowComponents) != 1 {
		t.Errorf("actions not carried: %+v", got[0].Actions)
	}
}

func TestMatchAll_IncludesNonMatches(t *testing.T) {
	rules := []model.AdaptationRule{
		{ID: "hit", Priority: 2, Enabled: true,
			Actions: model.RuleActions{Theme: "dark"}},
		{ID: "miss", Priority: 9, Enabled: true,
			Conditions: model.RuleConditions{DeviceType: devPtr(model.DeviceTablet)}},
		{ID: "off", Priority: 1, Enabled: false},
	}
	got := MatchAll(mobileMorning(), rules)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2 (disabled excluded)", len(got))
	}
	if !got[0].Matched || got[0].RuleID != "hit" {
		t.Errorf("expected hit first in store order: %+v", got[0])
	}
	if got[1].Matched {
		t.Errorf("miss should be flagged unmatched: %+v", got[1])
	}
	if got[1].Actions.Theme != "" {
		t.Errorf("unmatched rule must not carry actions: %+v", got[1].Actions)
	}
}
