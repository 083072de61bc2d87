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

var ErrTeamNotFound = errors.New("team not found")

// TeamListFilter описывает конъюнктивный набор предикатов для выборки
// команд-кандидатов. Query — уже нормализованная (lower-case) подстрока.
type TeamListFilter struct {
	Query            *string
	SportID          *uuid.UUID
	LeagueIDs        []uuid.UUID
	CountryCodes     []string
	CompetitionTypes []models.CompetitionType
	LeagueLevels     []int
	FoundingYearMin  *int
	FoundingYearMax  *int
	MultiLeagueOnly  bool
}

// SuggestField — поле команды, по которому собираются подсказки автодополнения.
type SuggestField string

const (
	SuggestFieldName         SuggestField = "name"
	SuggestFieldMarket       SuggestField = "market"
	SuggestFieldAbbreviation SuggestField = "abbreviation"
)

// FieldSuggestion — агрегат по одному различному значению поля:
// сколько команд его носят и до трёх примеров "{market} {name}".
type FieldSuggestion struct {
	Value        string
	TeamCount    int
	PreviewTeams []string
}

type TeamRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Team, error)
	ListCandidates(ctx context.Context, filter TeamListFilter) ([]models.Team, error)
	SuggestValues(ctx context.Context, field SuggestField, prefix string, limit int) ([]FieldSuggestion, error)
	UpdateLogoKey(ctx context.Context, teamID uuid.UUID, logoKey *string) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamSelect = `
	SELECT
		id, sport_id, name, market, short_name, official_name, display_name,
		abbreviation, country_code, founding_year, primary_color, secondary_color,
		created_at, updated_at, logo_key
	FROM teams`

func (r *postgresTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	query := teamSelect + ` WHERE id = $1`

	t := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.SportID, &t.Name, &t.Market, &t.ShortName, &t.OfficialName, &t.DisplayName,
		&t.Abbreviation, &t.CountryCode, &t.FoundingYear, &t.PrimaryColor, &t.SecondColor,
		&t.CreatedAt, &t.UpdatedAt, &t.LogoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %s: %w", id, err)
	}
	return t, nil
}

func (r *postgresTeamRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Team, error) {
	if len(ids) == 0 {
		return []models.Team{}, nil
	}

	query := teamSelect + ` WHERE id = ANY($1) ORDER BY market, name`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(uuidStrings(ids)))
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by ids: %w", err)
	}
	defer rows.Close()

	return scanTeams(rows)
}

// ListCandidates возвращает команды, удовлетворяющие всем заданным фильтрам,
// в естественном порядке (market, name). Подстрока Query служит только
// предварительным отсевом: точное ранжирование делает слой сервисов.
func (r *postgresTeamRepository) ListCandidates(ctx context.Context, filter TeamListFilter) ([]models.Team, error) {
	query := teamSelect + ` WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.Query != nil && *filter.Query != "" {
		pattern := "%" + escapeLike(*filter.Query) + "%"
		query += fmt.Sprintf(` AND (
			LOWER(name) LIKE $%d ESCAPE '\'
			OR LOWER(market) LIKE $%d ESCAPE '\'
			OR LOWER(abbreviation) LIKE $%d ESCAPE '\'
			OR LOWER(display_name) LIKE $%d ESCAPE '\')`, argID, argID, argID, argID)
		args = append(args, pattern)
		argID++
	}
	if filter.SportID != nil {
		query += fmt.Sprintf(" AND sport_id = $%d", argID)
		args = append(args, *filter.SportID)
		argID++
	}
	if len(filter.CountryCodes) > 0 {
		query += fmt.Sprintf(" AND country_code = ANY($%d)", argID)
		args = append(args, pq.Array(filter.CountryCodes))
		argID++
	}
	if filter.FoundingYearMin != nil {
		query += fmt.Sprintf(" AND founding_year >= $%d", argID)
		args = append(args, *filter.FoundingYearMin)
		argID++
	}
	if filter.FoundingYearMax != nil {
		query += fmt.Sprintf(" AND founding_year <= $%d", argID)
		args = append(args, *filter.FoundingYearMax)
		argID++
	}
	if len(filter.LeagueIDs) > 0 {
		query += fmt.Sprintf(` AND id IN (
			SELECT team_id FROM team_league_memberships
			WHERE is_active = TRUE AND league_id = ANY($%d))`, argID)
		args = append(args, pq.Array(uuidStrings(filter.LeagueIDs)))
		argID++
	}
	if len(filter.CompetitionTypes) > 0 {
		types := make([]string, len(filter.CompetitionTypes))
		for i, t := range filter.CompetitionTypes {
			types[i] = string(t)
		}
		query += fmt.Sprintf(` AND id IN (
			SELECT m.team_id FROM team_league_memberships m
			JOIN leagues l ON l.id = m.league_id
			WHERE m.is_active = TRUE AND l.competition_type = ANY($%d))`, argID)
		args = append(args, pq.Array(types))
		argID++
	}
	if len(filter.LeagueLevels) > 0 {
		levels := make([]int64, len(filter.LeagueLevels))
		for i, lvl := range filter.LeagueLevels {
			levels[i] = int64(lvl)
		}
		query += fmt.Sprintf(` AND id IN (
			SELECT m.team_id FROM team_league_memberships m
			JOIN leagues l ON l.id = m.league_id
			WHERE m.is_active = TRUE AND l.league_level = ANY($%d))`, argID)
		args = append(args, pq.Array(levels))
		argID++
	}
	if filter.MultiLeagueOnly {
		query += ` AND id IN (
			SELECT team_id FROM team_league_memberships
			WHERE is_active = TRUE
			GROUP BY team_id HAVING COUNT(*) > 1)`
	}

	query += " ORDER BY market, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team candidates: %w", err)
	}
	defer rows.Close()

	return scanTeams(rows)
}

// SuggestValues агрегирует различные значения поля, начинающиеся с префикса:
// количество команд на значение и до трёх превью-ярлыков "{market} {name}".
func (r *postgresTeamRepository) SuggestValues(ctx context.Context, field SuggestField, prefix string, limit int) ([]FieldSuggestion, error) {
	var column string
	switch field {
	case SuggestFieldName:
		column = "name"
	case SuggestFieldMarket:
		column = "market"
	case SuggestFieldAbbreviation:
		column = "abbreviation"
	default:
		return nil, fmt.Errorf("unknown suggest field: %q", field)
	}

	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS team_count,
			(ARRAY_AGG(market || ' ' || name ORDER BY market, name))[1:3] AS preview_teams
		FROM teams
		WHERE LOWER(%[1]s) LIKE $1 ESCAPE '\'
		GROUP BY %[1]s
		ORDER BY COUNT(*) DESC, %[1]s ASC
		LIMIT $2`, column)

	rows, err := r.db.QueryContext(ctx, query, escapeLike(prefix)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s suggestions: %w", column, err)
	}
	defer rows.Close()

	suggestions := make([]FieldSuggestion, 0)
	for rows.Next() {
		var s FieldSuggestion
		if scanErr := rows.Scan(&s.Value, &s.TeamCount, pq.Array(&s.PreviewTeams)); scanErr != nil {
			return nil, fmt.Errorf("failed to scan %s suggestion row: %w", column, scanErr)
		}
		suggestions = append(suggestions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, teamID uuid.UUID, logoKey *string) error {
	query := `UPDATE teams SET logo_key = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, teamID)
	if err != nil {
		return fmt.Errorf("failed to update team logo key: %w", err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func scanTeams(rows *sql.Rows) ([]models.Team, error) {
	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if scanErr := rows.Scan(
			&t.ID, &t.SportID, &t.Name, &t.Market, &t.ShortName, &t.OfficialName, &t.DisplayName,
			&t.Abbreviation, &t.CountryCode, &t.FoundingYear, &t.PrimaryColor, &t.SecondColor,
			&t.CreatedAt, &t.UpdatedAt, &t.LogoKey,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", scanErr)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}
