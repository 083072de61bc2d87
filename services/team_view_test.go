package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/courtside/sports-platform/models"
	"github.com/google/uuid"
)

func TestSearchTeamViewFieldParity(t *testing.T) {
	shortName := "LAL"
	year := 1947
	team := &models.Team{
		ID:           uuid.New(),
		SportID:      uuid.New(),
		Name:         "Lakers",
		Market:       "Los Angeles",
		ShortName:    &shortName,
		DisplayName:  "Los Angeles Lakers",
		Abbreviation: "LAL",
		CountryCode:  "US",
		FoundingYear: &year,
		UpdatedAt:    time.Now(),
	}
	resolved := ResolvePrimaryLeague([]LeagueInfo{
		leagueInfo("National League", 1, models.CompetitionLeague, 2010),
	})

	minimal := NewTeamView(team, resolved, nil)
	enriched := NewSearchTeamView(team, resolved, 10.0, []SearchMatch{
		{Field: "name", Value: "Lakers", Highlighted: "<em>Lakers</em>"},
	}, nil)

	if enriched.RelevanceScore == nil || *enriched.RelevanceScore != 10.0 {
		t.Errorf("expected relevance score 10.0, got %v", enriched.RelevanceScore)
	}
	if len(enriched.SearchMatches) != 1 {
		t.Errorf("expected one search match, got %d", len(enriched.SearchMatches))
	}

	// Все поля вне релевантности обязаны совпадать с минимальной формой.
	enriched.RelevanceScore = nil
	enriched.SearchMatches = nil
	if !reflect.DeepEqual(minimal, enriched) {
		t.Errorf("shared fields diverge between shapes:\nminimal:  %+v\nenriched: %+v", minimal, enriched)
	}
}

func TestNewTeamViewMembershipFields(t *testing.T) {
	team := &models.Team{ID: uuid.New(), Name: "United", Market: "Capital"}
	resolved := ResolvePrimaryLeague([]LeagueInfo{
		leagueInfo("Premier Division", 1, models.CompetitionLeague, 2015),
		leagueInfo("Continental Cup", 1, models.CompetitionInternational, 2001),
	})

	view := NewTeamView(team, resolved, nil)

	if !view.IsMultiLeague {
		t.Error("expected is_multi_league from two memberships")
	}
	if view.PrimaryLeague == nil || view.PrimaryLeague.Name != "Premier Division" {
		t.Errorf("expected Premier Division as primary, got %v", view.PrimaryLeague)
	}
	if len(view.AllLeagues) != 2 {
		t.Errorf("expected both leagues in all_leagues, got %d", len(view.AllLeagues))
	}
	if view.RelevanceScore != nil || view.SearchMatches != nil {
		t.Error("minimal shape must not carry relevance fields")
	}
}
