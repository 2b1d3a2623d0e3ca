package service

import (
	"context"
	"fmt"

	"adaptiveui/internal/model"
	"adaptiveui/internal/repository"
)

// ExperimentService compares adaptation rule variants for A/B review
type ExperimentService struct {
	rules repository.RuleRepo
}

// NewExperimentService creates a new experiment service
func NewExperimentService(rules repository.RuleRepo) *ExperimentService {
	return &ExperimentService{rules: rules}
}

// CompareVariants fetches both rules for side-by-side review.
func (s *ExperimentService) CompareVariants(ctx context.Context, ruleAID, ruleBID string) (*model.VariantComparison, error) {
	ruleA, err := s.rules.GetByID(ctx, ruleAID)
	if err != nil {
		return nil, fmt.Errorf("get variant a: %w", err)
	}
	if ruleA == nil {
		return nil, fmt.Errorf("variant a: %w", ErrRuleNotFound)
	}

	ruleB, err := s.rules.GetByID(ctx, ruleBID)
	if err != nil {
		return nil, fmt.Errorf("get variant b: %w", err)
	}
	if ruleB == nil {
		return nil, fmt.Errorf("variant b: %w", ErrRuleNotFound)
	}

	return &model.VariantComparison{
		VariantA:   ruleA,
		VariantB:   ruleB,
		Comparison: "Results available after sufficient data collection",
	}, nil
}
