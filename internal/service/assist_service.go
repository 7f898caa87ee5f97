package service

import (
	"context"

	"listing-marketplace/internal/assist"
)

// AssistService exposes description assist synchronously and as tasks.
type AssistService struct {
	enhancer assist.Enhancer
	runner   *assist.TaskRunner
}

// NewAssistService creates a new AssistService.
func NewAssistService(enhancer assist.Enhancer, runner *assist.TaskRunner) *AssistService {
	return &AssistService{enhancer: enhancer, runner: runner}
}

func (s *AssistService) Enhance(ctx context.Context, title, category string) (string, bool) {
	return s.enhancer.Enhance(ctx, title, category)
}

func (s *AssistService) StartTask(draftKey, title, category string) (assist.TaskSnapshot, error) {
	task, err := s.runner.Start(draftKey, title, category)
	if err != nil {
		return assist.TaskSnapshot{}, err
	}
	return task.Snapshot(), nil
}

func (s *AssistService) GetTask(id string) (assist.TaskSnapshot, error) {
	task, err := s.runner.Get(id)
	if err != nil {
		return assist.TaskSnapshot{}, err
	}
	return task.Snapshot(), nil
}

func (s *AssistService) DisposeTask(id string) error {
	return s.runner.Dispose(id)
}
