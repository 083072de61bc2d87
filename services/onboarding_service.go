package services

import (
	"context"
	"fmt"

	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/repositories"
	"github.com/google/uuid"
)

// OnboardingStatus — сводка прогресса онбординга пользователя.
type OnboardingStatus struct {
	UserID         uuid.UUID                   `json:"user_id"`
	CompletedSteps []models.OnboardingProgress `json:"completed_steps"`
	NextStep       *models.OnboardingStep      `json:"next_step,omitempty"`
	Finished       bool                        `json:"finished"`
}

type OnboardingService interface {
	GetStatus(ctx context.Context, userID uuid.UUID) (*OnboardingStatus, error)
	CompleteStep(ctx context.Context, userID uuid.UUID, step models.OnboardingStep) (*OnboardingStatus, error)
	Reset(ctx context.Context, userID uuid.UUID) error
}

type onboardingService struct {
	onboardingRepo repositories.OnboardingRepository
}

func NewOnboardingService(onboardingRepo repositories.OnboardingRepository) OnboardingService {
	return &onboardingService{onboardingRepo: onboardingRepo}
}

func (s *onboardingService) GetStatus(ctx context.Context, userID uuid.UUID) (*OnboardingStatus, error) {
	completed, err := s.onboardingRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding status: %w", err)
	}
	return buildOnboardingStatus(userID, completed), nil
}

func (s *onboardingService) CompleteStep(ctx context.Context, userID uuid.UUID, step models.OnboardingStep) (*OnboardingStatus, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOnboardingStep, step)
	}
	if _, err := s.onboardingRepo.CompleteStep(ctx, userID, step); err != nil {
		return nil, fmt.Errorf("failed to complete onboarding step: %w", err)
	}
	return s.GetStatus(ctx, userID)
}

func (s *onboardingService) Reset(ctx context.Context, userID uuid.UUID) error {
	if err := s.onboardingRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to reset onboarding: %w", err)
	}
	return nil
}

func buildOnboardingStatus(userID uuid.UUID, completed []models.OnboardingProgress) *OnboardingStatus {
	done := make(map[models.OnboardingStep]bool, len(completed))
	for _, p := range completed {
		done[p.Step] = true
	}

	status := &OnboardingStatus{
		UserID:         userID,
		CompletedSteps: completed,
		Finished:       true,
	}
	for _, step := range models.OnboardingSteps {
		if !done[step] {
			next := step
			status.NextStep = &next
			status.Finished = false
			break
		}
	}
	return status
}
