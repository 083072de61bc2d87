package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courtside/sports-platform/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MembershipRepository отдаёт активные членства команд в лигах вместе
// с данными самих лиг. Чистый доступ к данным, без бизнес-логики:
// неизвестная команда или лига — это пустой результат, а не ошибка.
type MembershipRepository interface {
	ListActiveByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamLeagueMembership, error)
	ListActiveByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]models.TeamLeagueMembership, error)
	ListActiveByLeagueID(ctx context.Context, leagueID uuid.UUID) ([]models.TeamLeagueMembership, error)
}

type postgresMembershipRepository struct {
	db *sql.DB
}

func NewPostgresMembershipRepository(db *sql.DB) MembershipRepository {
	return &postgresMembershipRepository{db: db}
}

const membershipSelect = `
	SELECT
		m.id, m.team_id, m.league_id, m.season_start_year, m.season_end_year,
		m.is_active, m.position_last_season, m.created_at,
		l.id, l.name, l.slug, l.country_code, l.league_level, l.competition_type,
		l.logo_key, l.created_at
	FROM team_league_memberships m
	JOIN leagues l ON l.id = m.league_id`

func (r *postgresMembershipRepository) ListActiveByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamLeagueMembership, error) {
	query := membershipSelect + `
	WHERE m.team_id = $1 AND m.is_active = TRUE
	ORDER BY m.season_start_year, l.name`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships for team %s: %w", teamID, err)
	}
	defer rows.Close()

	return scanMemberships(rows)
}

// ListActiveByTeamIDs выбирает членства для всех перечисленных команд одним
// запросом, чтобы не плодить обращения к БД по одному на команду.
func (r *postgresMembershipRepository) ListActiveByTeamIDs(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]models.TeamLeagueMembership, error) {
	result := make(map[uuid.UUID][]models.TeamLeagueMembership, len(teamIDs))
	if len(teamIDs) == 0 {
		return result, nil
	}

	query := membershipSelect + `
	WHERE m.team_id = ANY($1) AND m.is_active = TRUE
	ORDER BY m.team_id, m.season_start_year, l.name`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(uuidStrings(teamIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships for %d teams: %w", len(teamIDs), err)
	}
	defer rows.Close()

	memberships, err := scanMemberships(rows)
	if err != nil {
		return nil, err
	}
	for _, m := range memberships {
		result[m.TeamID] = append(result[m.TeamID], m)
	}
	return result, nil
}

func (r *postgresMembershipRepository) ListActiveByLeagueID(ctx context.Context, leagueID uuid.UUID) ([]models.TeamLeagueMembership, error) {
	query := membershipSelect + `
	WHERE m.league_id = $1 AND m.is_active = TRUE
	ORDER BY m.season_start_year, m.team_id`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships for league %s: %w", leagueID, err)
	}
	defer rows.Close()

	return scanMemberships(rows)
}

func scanMemberships(rows *sql.Rows) ([]models.TeamLeagueMembership, error) {
	memberships := make([]models.TeamLeagueMembership, 0)
	for rows.Next() {
		var m models.TeamLeagueMembership
		var l models.League
		if err := rows.Scan(
			&m.ID, &m.TeamID, &m.LeagueID, &m.SeasonStartYear, &m.SeasonEndYear,
			&m.IsActive, &m.PositionLastSeason, &m.CreatedAt,
			&l.ID, &l.Name, &l.Slug, &l.CountryCode, &l.LeagueLevel, &l.CompetitionType,
			&l.LogoKey, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		m.League = &l
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return memberships, nil
}
