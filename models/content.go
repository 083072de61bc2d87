package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentCategory представляет рубрику новости, соответствующую ENUM в БД.
type ContentCategory string

const (
	CategoryTransfer     ContentCategory = "transfer"
	CategoryInjury       ContentCategory = "injury"
	CategoryMatchReport  ContentCategory = "match_report"
	CategoryMatchPreview ContentCategory = "match_preview"
	CategoryGeneral      ContentCategory = "general"
)

type NewsArticle struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	Title       string           `json:"title" db:"title"`
	Summary     string           `json:"summary" db:"summary"`
	Body        string           `json:"body" db:"body"`
	TeamID      *uuid.UUID       `json:"team_id,omitempty" db:"team_id"`
	LeagueID    *uuid.UUID       `json:"league_id,omitempty" db:"league_id"`
	Category    *ContentCategory `json:"category,omitempty" db:"category"`
	PublishedAt time.Time        `json:"published_at" db:"published_at"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}
