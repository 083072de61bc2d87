package models

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingStep представляет шаг онбординга, соответствующий ENUM в БД.
type OnboardingStep string

const (
	StepWelcome         OnboardingStep = "welcome"
	StepFavoriteTeams   OnboardingStep = "favorite_teams"
	StepFavoriteLeagues OnboardingStep = "favorite_leagues"
	StepFinished        OnboardingStep = "finished"
)

// OnboardingSteps перечисляет шаги в порядке прохождения.
var OnboardingSteps = []OnboardingStep{
	StepWelcome,
	StepFavoriteTeams,
	StepFavoriteLeagues,
	StepFinished,
}

func (s OnboardingStep) Valid() bool {
	for _, known := range OnboardingSteps {
		if s == known {
			return true
		}
	}
	return false
}

type OnboardingProgress struct {
	UserID      uuid.UUID      `json:"user_id" db:"user_id"`
	Step        OnboardingStep `json:"step" db:"step"`
	CompletedAt time.Time      `json:"completed_at" db:"completed_at"`
}
