package engine

import (
	"errors"
	"testing"

	"adaptiveui/internal/model"
)

// Mobile morning context against the mobile-morning compact rule: the rule
// matches and its layout takes effect.
func TestEngineRun_MobileMorningRule(t *testing.T) {
	e := New(DefaultPredictorConfig())

	ctx := validContext()
	ctx.DeviceType = model.DeviceMobile
	ctx.TimeOfDay = model.TimeMorning

	rules := []model.AdaptationRule{
		{
			ID:       "mobile-morning",
			Priority: 10,
			Enabled:  true,
			Conditions: model.RuleConditions{
				DeviceType: devPtr(model.DeviceMobile),
				TimeOfDay:  todPtr(model.TimeMorning),
			},
			Actions: model.RuleActions{ShowComponents: []string{"quick_tasks"}, Layout: "compact"},
		},
	}

	res, err := e.Run(ctx, nil, rules, "regular")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Matches) != 1 || res.Matches[0].RuleID != "mobile-morning" {
		t.Fatalf("matches: got %+v, want the mobile-morning rule", res.Matches)
	}
	if res.Layout.Layout != "compact" {
		t.Errorf("effective layout: got %q, want %q", res.Layout.Layout, "compact")
	}
	if res.Snapshot.PredictedAction != res.Action {
		t.Errorf("snapshot action %q does not match result action %q",
			res.Snapshot.PredictedAction, res.Action)
	}
}

// No rules enabled and an idle-browsing context: the result degrades to the
// recommendation-only layout.
func TestEngineRun_NoRules(t *testing.T) {
	e := New(DefaultPredictorConfig())

	ctx := validContext()
	ctx.ViewHistory = []string{"home"}
	ctx.ClickData = []string{"link_3", "button_1"}

	res, err := e.Run(ctx, nil, nil, "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Errorf("matches: got %+v, want none", res.Matches)
	}
	if len(res.Layout.MainContent) != 1 {
		t.Errorf("main content: got %+v, want recommendation only", res.Layout.MainContent)
	}
	if res.Layout.MainContent[0] != res.Recommendation {
		t.Errorf("main content %+v does not carry the recommendation %+v",
			res.Layout.MainContent[0], res.Recommendation)
	}
}

func TestEngineRun_InvalidContext(t *testing.T) {
	e := New(DefaultPredictorConfig())
	ctx := validContext()
	ctx.UserID = -1

	if _, err := e.Run(ctx, nil, nil, ""); !errors.Is(err, ErrInvalidContext) {
		t.Errorf("got %v, want ErrInvalidContext", err)
	}
}

// The rule set handed to Run is used consistently for matching and assembly:
// every component entry in the layout traces back to a matched rule.
func TestEngineRun_ConsistentRuleSet(t *testing.T) {
	e := New(DefaultPredictorConfig())

	rules := []model.AdaptationRule{
		{ID: "a", Priority: 3, Enabled: true,
			Actions: model.RuleActions{ShowComponents: []string{"banner"}}},
		{ID: "b", Priority: 7, Enabled: true,
			Actions: model.RuleActions{ShowComponents: []string{"hero"}}},
	}

	res, err := e.Run(validContext(), nil, rules, "vip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var components []string
	for _, entry := range res.Layout.MainContent[1:] {
		components = append(components, entry.Content)
	}
	want := []string{"hero", "banner"}
	if len(components) != 2 || components[0] != want[0] || components[1] != want[1] {
		t.Errorf("components: got %v, want %v (priority order)", components, want)
	}
}
