package services

import (
	"sort"

	"github.com/courtside/sports-platform/models"
	"github.com/google/uuid"
)

// LeagueInfo — неизменяемое представление одного активного членства команды
// в лиге. Разрешение первичной лиги возвращает новые аннотированные копии
// и никогда не трогает срез вызывающего.
type LeagueInfo struct {
	LeagueID           uuid.UUID              `json:"league_id"`
	Name               string                 `json:"name"`
	Slug               string                 `json:"slug"`
	CountryCode        string                 `json:"country_code"`
	LeagueLevel        int                    `json:"league_level"`
	CompetitionType    models.CompetitionType `json:"competition_type"`
	SeasonStartYear    int                    `json:"season_start_year"`
	PositionLastSeason *int                   `json:"position_last_season,omitempty"`
	LogoURL            *string                `json:"logo_url,omitempty"`
	IsPrimary          bool                   `json:"is_primary"`
}

func (l LeagueInfo) isDomesticTopFlight() bool {
	return l.CompetitionType == models.CompetitionLeague && l.LeagueLevel == 1
}

// PrimaryLeagueResult — результат разрешения: отсортированный список членств
// ровно с одной первичной лигой (или ни одной, если список пуст).
type PrimaryLeagueResult struct {
	Leagues       []LeagueInfo
	Primary       *LeagueInfo
	IsMultiLeague bool
}

// LeagueInfoFromMembership строит LeagueInfo из строки членства с загруженной лигой.
func LeagueInfoFromMembership(m models.TeamLeagueMembership) LeagueInfo {
	info := LeagueInfo{
		LeagueID:           m.LeagueID,
		SeasonStartYear:    m.SeasonStartYear,
		PositionLastSeason: m.PositionLastSeason,
	}
	if m.League != nil {
		info.Name = m.League.Name
		info.Slug = m.League.Slug
		info.CountryCode = m.League.CountryCode
		info.LeagueLevel = m.League.LeagueLevel
		info.CompetitionType = m.League.CompetitionType
	}
	return info
}

// ResolvePrimaryLeague детерминированно выбирает первичную лигу команды среди
// её активных членств. Полный порядок сравнения:
//
//  1. высший национальный дивизион (competition_type == "league", league_level == 1)
//     раньше всех остальных;
//  2. меньший season_start_year — более давнее членство — раньше;
//  3. меньший league_level раньше;
//  4. имя лиги по алфавиту.
//
// Первый элемент после сортировки помечается первичным. Функция чистая:
// одинаковый вход в любой перестановке даёт одинаковый результат.
func ResolvePrimaryLeague(leagues []LeagueInfo) PrimaryLeagueResult {
	if len(leagues) == 0 {
		return PrimaryLeagueResult{Leagues: []LeagueInfo{}}
	}

	sorted := make([]LeagueInfo, len(leagues))
	copy(sorted, leagues)
	for i := range sorted {
		sorted[i].IsPrimary = false
	}

	sort.Slice(sorted, func(i, j int) bool {
		return leagueInfoLess(sorted[i], sorted[j])
	})

	sorted[0].IsPrimary = true
	primary := sorted[0]

	return PrimaryLeagueResult{
		Leagues:       sorted,
		Primary:       &primary,
		IsMultiLeague: len(sorted) > 1,
	}
}

func leagueInfoLess(a, b LeagueInfo) bool {
	aTop, bTop := a.isDomesticTopFlight(), b.isDomesticTopFlight()
	if aTop != bTop {
		return aTop
	}
	if a.SeasonStartYear != b.SeasonStartYear {
		return a.SeasonStartYear < b.SeasonStartYear
	}
	if a.LeagueLevel != b.LeagueLevel {
		return a.LeagueLevel < b.LeagueLevel
	}
	return a.Name < b.Name
}
