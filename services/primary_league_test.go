package services

import (
	"reflect"
	"testing"

	"github.com/courtside/sports-platform/models"
	"github.com/google/uuid"
)

func leagueInfo(name string, level int, compType models.CompetitionType, startYear int) LeagueInfo {
	return LeagueInfo{
		LeagueID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Name:            name,
		Slug:            name,
		CountryCode:     "US",
		LeagueLevel:     level,
		CompetitionType: compType,
		SeasonStartYear: startYear,
	}
}

func TestResolvePrimaryLeagueEmpty(t *testing.T) {
	result := ResolvePrimaryLeague(nil)
	if result.Primary != nil {
		t.Errorf("expected no primary for empty input, got %v", result.Primary)
	}
	if result.IsMultiLeague {
		t.Error("expected is_multi_league to be false for empty input")
	}
	if len(result.Leagues) != 0 {
		t.Errorf("expected empty league list, got %d entries", len(result.Leagues))
	}
}

func TestResolvePrimaryLeagueSingle(t *testing.T) {
	input := []LeagueInfo{leagueInfo("Copa Norte", 1, models.CompetitionCup, 2018)}
	result := ResolvePrimaryLeague(input)

	if result.Primary == nil || result.Primary.Name != "Copa Norte" {
		t.Fatalf("expected Copa Norte as primary, got %v", result.Primary)
	}
	if !result.Leagues[0].IsPrimary {
		t.Error("single membership must be marked primary")
	}
	if result.IsMultiLeague {
		t.Error("single membership must not set is_multi_league")
	}
}

func TestResolvePrimaryLeagueDomesticPreference(t *testing.T) {
	// Международный кубок старше по членству, но высший национальный
	// дивизион всё равно выигрывает.
	input := []LeagueInfo{
		leagueInfo("Continental Cup", 1, models.CompetitionInternational, 2005),
		leagueInfo("National League", 1, models.CompetitionLeague, 2015),
	}
	result := ResolvePrimaryLeague(input)

	if result.Primary.Name != "National League" {
		t.Errorf("expected domestic top-flight as primary, got %q", result.Primary.Name)
	}
}

func TestResolvePrimaryLeagueTieBreakChain(t *testing.T) {
	tests := map[string]struct {
		input   []LeagueInfo
		primary string
	}{
		"earlier season start wins": {
			input: []LeagueInfo{
				leagueInfo("Beta League", 1, models.CompetitionLeague, 2012),
				leagueInfo("Alpha League", 1, models.CompetitionLeague, 2008),
			},
			primary: "Alpha League",
		},
		"lower level wins after season tie": {
			input: []LeagueInfo{
				leagueInfo("Second Division", 2, models.CompetitionLeague, 2010),
				leagueInfo("Regional Cup", 1, models.CompetitionCup, 2010),
			},
			primary: "Regional Cup",
		},
		"alphabetical name is the final tie-break": {
			input: []LeagueInfo{
				leagueInfo("Zenith League", 1, models.CompetitionLeague, 2010),
				leagueInfo("Apex League", 1, models.CompetitionLeague, 2010),
			},
			primary: "Apex League",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := ResolvePrimaryLeague(tc.input)
			if result.Primary == nil || result.Primary.Name != tc.primary {
				t.Errorf("expected primary %q, got %v", tc.primary, result.Primary)
			}
		})
	}
}

func TestResolvePrimaryLeagueEndToEnd(t *testing.T) {
	// Три активных членства: высший национальный дивизион должен победить и
	// более давнюю лигу второго уровня, и международный турнир.
	input := []LeagueInfo{
		leagueInfo("LeagueB", 1, models.CompetitionInternational, 2015),
		leagueInfo("LeagueC", 2, models.CompetitionLeague, 2005),
		leagueInfo("LeagueA", 1, models.CompetitionLeague, 2010),
	}
	result := ResolvePrimaryLeague(input)

	if result.Primary.Name != "LeagueA" {
		t.Errorf("expected LeagueA as primary, got %q", result.Primary.Name)
	}
	if !result.IsMultiLeague {
		t.Error("three memberships must set is_multi_league")
	}
}

func TestResolvePrimaryLeagueUniqueness(t *testing.T) {
	input := []LeagueInfo{
		leagueInfo("A", 1, models.CompetitionLeague, 2010),
		leagueInfo("B", 1, models.CompetitionCup, 2008),
		leagueInfo("C", 3, models.CompetitionLeague, 2001),
		leagueInfo("D", 1, models.CompetitionInternational, 1995),
	}
	result := ResolvePrimaryLeague(input)

	primaries := 0
	for _, l := range result.Leagues {
		if l.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Errorf("expected exactly one primary, got %d", primaries)
	}
}

func TestResolvePrimaryLeaguePermutationDeterminism(t *testing.T) {
	a := leagueInfo("Apex League", 1, models.CompetitionLeague, 2010)
	b := leagueInfo("Continental Cup", 1, models.CompetitionInternational, 2001)
	c := leagueInfo("Second Division", 2, models.CompetitionLeague, 2010)

	permutations := [][]LeagueInfo{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}

	first := ResolvePrimaryLeague(permutations[0])
	for i, perm := range permutations[1:] {
		result := ResolvePrimaryLeague(perm)
		if result.Primary.Name != first.Primary.Name {
			t.Errorf("permutation %d chose %q, want %q", i+1, result.Primary.Name, first.Primary.Name)
		}
		if !reflect.DeepEqual(result.Leagues, first.Leagues) {
			t.Errorf("permutation %d produced a different sorted list", i+1)
		}
	}
}

func TestResolvePrimaryLeagueDoesNotMutateInput(t *testing.T) {
	input := []LeagueInfo{
		leagueInfo("Beta League", 1, models.CompetitionLeague, 2012),
		leagueInfo("Alpha League", 1, models.CompetitionLeague, 2008),
	}
	snapshot := make([]LeagueInfo, len(input))
	copy(snapshot, input)

	_ = ResolvePrimaryLeague(input)
	_ = ResolvePrimaryLeague(input)

	if !reflect.DeepEqual(input, snapshot) {
		t.Error("input slice was mutated by resolution")
	}
}
