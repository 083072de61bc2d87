package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courtside/sports-platform/models"
	"github.com/google/uuid"
)

type OnboardingRepository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.OnboardingProgress, error)
	CompleteStep(ctx context.Context, userID uuid.UUID, step models.OnboardingStep) (*models.OnboardingProgress, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type postgresOnboardingRepository struct {
	db *sql.DB
}

func NewPostgresOnboardingRepository(db *sql.DB) OnboardingRepository {
	return &postgresOnboardingRepository{db: db}
}

func (r *postgresOnboardingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.OnboardingProgress, error) {
	query := `
		SELECT user_id, step, completed_at
		FROM onboarding_progress
		WHERE user_id = $1
		ORDER BY completed_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding progress for user %s: %w", userID, err)
	}
	defer rows.Close()

	progress := make([]models.OnboardingProgress, 0)
	for rows.Next() {
		var p models.OnboardingProgress
		if scanErr := rows.Scan(&p.UserID, &p.Step, &p.CompletedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan onboarding row: %w", scanErr)
		}
		progress = append(progress, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return progress, nil
}

// CompleteStep фиксирует прохождение шага. Повторное прохождение обновляет отметку времени.
func (r *postgresOnboardingRepository) CompleteStep(ctx context.Context, userID uuid.UUID, step models.OnboardingStep) (*models.OnboardingProgress, error) {
	query := `
		INSERT INTO onboarding_progress (user_id, step, completed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, step) DO UPDATE SET completed_at = NOW()
		RETURNING user_id, step, completed_at`

	p := &models.OnboardingProgress{}
	err := r.db.QueryRowContext(ctx, query, userID, step).Scan(&p.UserID, &p.Step, &p.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to complete onboarding step %q: %w", step, err)
	}
	return p, nil
}

func (r *postgresOnboardingRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM onboarding_progress WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to reset onboarding progress for user %s: %w", userID, err)
	}
	return nil
}
