package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID           uuid.UUID `json:"id" db:"id"`
	SportID      uuid.UUID `json:"sport_id" db:"sport_id"`
	Name         string    `json:"name" db:"name"`
	Market       string    `json:"market" db:"market"`
	ShortName    *string   `json:"short_name,omitempty" db:"short_name"`
	OfficialName *string   `json:"official_name,omitempty" db:"official_name"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	Abbreviation string    `json:"abbreviation" db:"abbreviation"`
	CountryCode  string    `json:"country_code" db:"country_code"`
	FoundingYear *int      `json:"founding_year,omitempty" db:"founding_year"`
	PrimaryColor *string   `json:"primary_color,omitempty" db:"primary_color"`
	SecondColor  *string   `json:"secondary_color,omitempty" db:"secondary_color"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Sport *Sport `json:"sport,omitempty" db:"-"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
