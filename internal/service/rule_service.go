package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"adaptiveui/internal/model"
	"adaptiveui/internal/repository"
)

// ErrRuleNotFound is returned for lookups of unknown rule ids
var ErrRuleNotFound = errors.New("rule not found")

// RuleService manages the adaptation rule store
type RuleService struct {
	rules  repository.RuleRepo
	logger *zap.Logger
}

// NewRuleService creates a new rule service
func NewRuleService(rules repository.RuleRepo, logger *zap.Logger) *RuleService {
	return &RuleService{
		rules:  rules,
		logger: logger,
	}
}

// Create validates and persists a new rule, returning its id.
func (s *RuleService) Create(ctx context.Context, rule *model.AdaptationRule) (string, error) {
	if err := validateRule(rule); err != nil {
		return "", err
	}

	id, err := s.rules.Create(ctx, rule)
	if err != nil {
		return "", fmt.Errorf("create rule: %w", err)
	}

	s.logger.Info("rule created",
		zap.String("ruleId", id), zap.String("name", rule.Name), zap.Int("priority", rule.Priority))
	return id, nil
}

// Get returns one rule by id.
func (s *RuleService) Get(ctx context.Context, id string) (*model.AdaptationRule, error) {
	rule, err := s.rules.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rule: %w", err)
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}
	return rule, nil
}

// List returns every rule in store order.
func (s *RuleService) List(ctx context.Context) ([]model.AdaptationRule, error) {
	return s.rules.ListAll(ctx)
}

// Update validates and replaces an existing rule.
func (s *RuleService) Update(ctx context.Context, rule *model.AdaptationRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}

	existing, err := s.rules.GetByID(ctx, rule.ID)
	if err != nil {
		return fmt.Errorf("update rule: %w", err)
	}
	if existing == nil {
		return ErrRuleNotFound
	}
	rule.CreatedAt = existing.CreatedAt

	if err := s.rules.Update(ctx, rule); err != nil {
		return fmt.Errorf("update rule: %w", err)
	}
	return nil
}

// Delete removes a rule.
func (s *RuleService) Delete(ctx context.Context, id string) error {
	if err := s.rules.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	s.logger.Info("rule deleted", zap.String("ruleId", id))
	return nil
}

func validateRule(rule *model.AdaptationRule) error {
	if rule.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if rule.Priority < 0 {
		return fmt.Errorf("rule priority must not be negative")
	}
	if d := rule.Conditions.DeviceType; d != nil && *d != "" && !d.IsValid() {
		return fmt.Errorf("unknown device type %q", *d)
	}
	if tod := rule.Conditions.TimeOfDay; tod != nil && *tod != "" && !tod.IsValid() {
		return fmt.Errorf("unknown time of day %q", *tod)
	}
	return nil
}
