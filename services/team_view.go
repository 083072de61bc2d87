package services

import (
	"time"

	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/storage"
	"github.com/google/uuid"
)

// TeamView — единое внешнее представление команды: данные самой команды,
// её активные лиги и выбранная первичная лига. Поисковый путь дополнительно
// заполняет RelevanceScore и SearchMatches; все остальные поля совпадают
// с минимальной формой один в один.
type TeamView struct {
	ID            uuid.UUID    `json:"id"`
	SportID       uuid.UUID    `json:"sport_id"`
	Name          string       `json:"name"`
	Market        string       `json:"market"`
	ShortName     *string      `json:"short_name,omitempty"`
	OfficialName  *string      `json:"official_name,omitempty"`
	DisplayName   string       `json:"display_name"`
	Abbreviation  string       `json:"abbreviation"`
	CountryCode   string       `json:"country_code"`
	FoundingYear  *int         `json:"founding_year,omitempty"`
	PrimaryColor  *string      `json:"primary_color,omitempty"`
	SecondColor   *string      `json:"secondary_color,omitempty"`
	LogoURL       *string      `json:"logo_url,omitempty"`
	UpdatedAt     time.Time    `json:"updated_at"`
	PrimaryLeague *LeagueInfo  `json:"primary_league"`
	AllLeagues    []LeagueInfo `json:"all_leagues"`
	IsMultiLeague bool         `json:"is_multi_league"`

	RelevanceScore *float64      `json:"relevance_score,omitempty"`
	SearchMatches  []SearchMatch `json:"search_matches,omitempty"`
}

// NewTeamView собирает минимальное представление из команды и результата
// разрешения первичной лиги. Чистая композиция, без обращений к хранилищу.
func NewTeamView(team *models.Team, resolved PrimaryLeagueResult, uploader storage.FileUploader) TeamView {
	view := TeamView{
		ID:            team.ID,
		SportID:       team.SportID,
		Name:          team.Name,
		Market:        team.Market,
		ShortName:     team.ShortName,
		OfficialName:  team.OfficialName,
		DisplayName:   team.DisplayName,
		Abbreviation:  team.Abbreviation,
		CountryCode:   team.CountryCode,
		FoundingYear:  team.FoundingYear,
		PrimaryColor:  team.PrimaryColor,
		SecondColor:   team.SecondColor,
		UpdatedAt:     team.UpdatedAt,
		PrimaryLeague: resolved.Primary,
		AllLeagues:    resolved.Leagues,
		IsMultiLeague: resolved.IsMultiLeague,
	}
	if team.LogoKey != nil && *team.LogoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*team.LogoKey)
		if url != "" {
			view.LogoURL = &url
		}
	}
	return view
}

// NewSearchTeamView собирает поисковое представление: минимальная форма
// плюс метаданные релевантности.
func NewSearchTeamView(team *models.Team, resolved PrimaryLeagueResult, score float64, matches []SearchMatch, uploader storage.FileUploader) TeamView {
	view := NewTeamView(team, resolved, uploader)
	view.RelevanceScore = &score
	view.SearchMatches = matches
	return view
}
