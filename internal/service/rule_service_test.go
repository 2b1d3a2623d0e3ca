package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"adaptiveui/internal/model"
)

func TestRuleService_CreateValidation(t *testing.T) {
	badDevice := model.DeviceType("phablet")
	badTime := model.TimeOfDay("dawn")

	tests := []struct {
		name    string
		rule    model.AdaptationRule
		wantErr bool
	}{
		{"valid", model.AdaptationRule{Name: "r", Priority: 1, Enabled: true}, false},
		{"missing-name", model.AdaptationRule{Priority: 1}, true},
		{"negative-priority", model.AdaptationRule{Name: "r", Priority: -2}, true},
		{"unknown-device", model.AdaptationRule{Name: "r",
			Conditions: model.RuleConditions{DeviceType: &badDevice}}, true},
		{"unknown-time", model.AdaptationRule{Name: "r",
			Conditions: model.RuleConditions{TimeOfDay: &badTime}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRuleService(&fakeRuleRepo{}, zap.NewNop())
			_, err := svc.Create(context.Background(), &tt.rule)
			if (err != nil) != tt.wantErr {
				t.Errorf("err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestRuleService_GetNotFound(t *testing.T) {
	svc := NewRuleService(&fakeRuleRepo{}, zap.NewNop())
	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("got %v, want ErrRuleNotFound", err)
	}
}

func TestAnalyticsService_Statistics(t *testing.T) {
	ruleRepo := &fakeRuleRepo{rules: []model.AdaptationRule{
		{ID: "a", Name: "a", Enabled: true},
		{ID: "b", Name: "b", Enabled: true},
		{ID: "c", Name: "c", Enabled: false},
	}}
	interactionRepo := &fakeInteractionRepo{inserted: []model.Interaction{
		{UserID: 1}, {UserID: 1}, {UserID: 2},
	}}

	svc := NewAnalyticsService(ruleRepo, interactionRepo, nil, zap.NewNop())
	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalRules != 3 || stats.ActiveRules != 2 {
		t.Errorf("rule counts: got %d/%d, want 3/2", stats.TotalRules, stats.ActiveRules)
	}
	if stats.TotalUsers != 2 {
		t.Errorf("users: got %d, want 2", stats.TotalUsers)
	}
}

func TestExperimentService_Compare(t *testing.T) {
	ruleRepo := &fakeRuleRepo{rules: []model.AdaptationRule{
		{ID: "a", Name: "Variant A"},
		{ID: "b", Name: "Variant B"},
	}}
	svc := NewExperimentService(ruleRepo)

	got, err := svc.CompareVariants(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.VariantA.Name != "Variant A" || got.VariantB.Name != "Variant B" {
		t.Errorf("comparison carries wrong rules: %+v", got)
	}

	if _, err := svc.CompareVariants(context.Background(), "a", "missing"); !errors.Is(err, ErrRuleNotFound) {
		t.Errorf("got %v, want ErrRuleNotFound", err)
	}
}
