package models

import (
	"time"

	"github.com/google/uuid"
)

// CompetitionType представляет тип соревнования, соответствующий ENUM в БД.
type CompetitionType string

const (
	CompetitionLeague        CompetitionType = "league"
	CompetitionCup           CompetitionType = "cup"
	CompetitionInternational CompetitionType = "international"
)

func (t CompetitionType) Valid() bool {
	switch t {
	case CompetitionLeague, CompetitionCup, CompetitionInternational:
		return true
	}
	return false
}

type League struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Name            string          `json:"name" db:"name"`
	Slug            string          `json:"slug" db:"slug"`
	CountryCode     string          `json:"country_code" db:"country_code"`
	LeagueLevel     int             `json:"league_level" db:"league_level"`
	CompetitionType CompetitionType `json:"competition_type" db:"competition_type"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}

// IsDomesticTopFlight сообщает, является ли лига высшим национальным дивизионом.
func (l League) IsDomesticTopFlight() bool {
	return l.CompetitionType == CompetitionLeague && l.LeagueLevel == 1
}
