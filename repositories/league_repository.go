package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/courtside/sports-platform/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrLeagueNotFound = errors.New("league not found")

type ListLeaguesFilter struct {
	CountryCodes     []string
	CompetitionTypes []models.CompetitionType
	LeagueLevel      *int
}

type LeagueRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.League, error)
	List(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error)
	UpdateLogoKey(ctx context.Context, leagueID uuid.UUID, logoKey *string) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

const leagueSelect = `
	SELECT id, name, slug, country_code, league_level, competition_type, logo_key, created_at
	FROM leagues`

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.League, error) {
	query := leagueSelect + ` WHERE id = $1`

	l := &models.League{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Slug, &l.CountryCode, &l.LeagueLevel, &l.CompetitionType,
		&l.LogoKey, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league %s: %w", id, err)
	}
	return l, nil
}

func (r *postgresLeagueRepository) List(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error) {
	query := leagueSelect + ` WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if len(filter.CountryCodes) > 0 {
		query += fmt.Sprintf(" AND country_code = ANY($%d)", argID)
		args = append(args, pq.Array(filter.CountryCodes))
		argID++
	}
	if len(filter.CompetitionTypes) > 0 {
		types := make([]string, len(filter.CompetitionTypes))
		for i, t := range filter.CompetitionTypes {
			types[i] = string(t)
		}
		query += fmt.Sprintf(" AND competition_type = ANY($%d)", argID)
		args = append(args, pq.Array(types))
		argID++
	}
	if filter.LeagueLevel != nil {
		query += fmt.Sprintf(" AND league_level = $%d", argID)
		args = append(args, *filter.LeagueLevel)
		argID++
	}

	query += " ORDER BY country_code, league_level, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	defer rows.Close()

	leagues := make([]models.League, 0)
	for rows.Next() {
		var l models.League
		if scanErr := rows.Scan(
			&l.ID, &l.Name, &l.Slug, &l.CountryCode, &l.LeagueLevel, &l.CompetitionType,
			&l.LogoKey, &l.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan league row: %w", scanErr)
		}
		leagues = append(leagues, l)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *postgresLeagueRepository) UpdateLogoKey(ctx context.Context, leagueID uuid.UUID, logoKey *string) error {
	query := `UPDATE leagues SET logo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, leagueID)
	if err != nil {
		return fmt.Errorf("failed to update league logo key: %w", err)
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}
