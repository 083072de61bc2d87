package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamLeagueMembership связывает команду с лигой на отрезке сезонов.
// SeasonEndYear == nil означает, что членство продолжается до сих пор.
// На пару (team, league) существует не более одной текущей строки.
type TeamLeagueMembership struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	TeamID             uuid.UUID `json:"team_id" db:"team_id"`
	LeagueID           uuid.UUID `json:"league_id" db:"league_id"`
	SeasonStartYear    int       `json:"season_start_year" db:"season_start_year"`
	SeasonEndYear      *int      `json:"season_end_year,omitempty" db:"season_end_year"`
	IsActive           bool      `json:"is_active" db:"is_active"`
	PositionLastSeason *int      `json:"position_last_season,omitempty" db:"position_last_season"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`

	League *League `json:"league,omitempty" db:"-"`
}
