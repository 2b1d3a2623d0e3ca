package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adaptiveui/internal/model"
	"adaptiveui/internal/repository"
)

// ComponentService manages the UI component library
type ComponentService struct {
	components repository.ComponentRepo
	logger     *zap.Logger
}

// NewComponentService creates a new component service
func NewComponentService(components repository.ComponentRepo, logger *zap.Logger) *ComponentService {
	return &ComponentService{
		components: components,
		logger:     logger,
	}
}

// Create persists a new component, returning its id.
func (s *ComponentService) Create(ctx context.Context, component *model.Component) (string, error) {
	if component.Name == "" || component.Type == "" {
		return "", fmt.Errorf("component name and type are required")
	}

	id, err := s.components.Create(ctx, component)
	if err != nil {
		return "", fmt.Errorf("create component: %w", err)
	}

	s.logger.Info("component created",
		zap.String("componentId", id), zap.String("name", component.Name))
	return id, nil
}

// List returns the component library, newest first.
func (s *ComponentService) List(ctx context.Context) ([]model.Component, error) {
	return s.components.List(ctx)
}
