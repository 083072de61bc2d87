package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/courtside/sports-platform/models"
)

func TestScoreTeamEmptyQuery(t *testing.T) {
	team := &models.Team{Name: "Lakers", Market: "Los Angeles"}
	score, matches := ScoreTeam(team, "")

	if score != emptyQueryScore {
		t.Errorf("expected neutral score %v for empty query, got %v", emptyQueryScore, score)
	}
	if matches != nil {
		t.Errorf("expected no matches for empty query, got %v", matches)
	}
}

func TestScoreTeamExactNameBeatsMarketSubstring(t *testing.T) {
	exactName := &models.Team{Name: "Lakers", Market: "Minneapolis"}
	marketSubstring := &models.Team{Name: "Stars", Market: "South Lakerside"}

	exactScore, _ := ScoreTeam(exactName, "lakers")
	substrScore, _ := ScoreTeam(marketSubstring, "lakers")

	if exactScore <= substrScore {
		t.Errorf("exact name match (%v) must outrank market substring (%v)", exactScore, substrScore)
	}
}

func TestScoreTeamTierMonotonicity(t *testing.T) {
	exact := &models.Team{Name: "Wolves"}
	prefix := &models.Team{Name: "Wolverhampton"}
	substring := &models.Team{Name: "Timberwolves"}

	exactScore, _ := ScoreTeam(exact, "wolves")
	prefixScore, _ := ScoreTeam(prefix, "wolve")
	exactPrefixScore, _ := ScoreTeam(exact, "wolve")
	substringScore, _ := ScoreTeam(substring, "wolves")

	if exactScore <= exactPrefixScore {
		t.Errorf("exact tier (%v) must beat prefix tier (%v) on the same field", exactScore, exactPrefixScore)
	}
	if prefixScore <= substringScore {
		t.Errorf("prefix tier (%v) must beat substring tier (%v) on the same field", prefixScore, substringScore)
	}
}

func TestScoreTeamBestTierOnly(t *testing.T) {
	// Точное совпадение имени не должно дополнительно засчитываться как
	// подстрока того же поля.
	team := &models.Team{Name: "Lakers"}
	score, matches := ScoreTeam(team, "lakers")

	if score != 10.0 {
		t.Errorf("expected single best-tier contribution 10.0, got %v", score)
	}
	if len(matches) != 1 {
		t.Errorf("expected one match entry, got %d", len(matches))
	}
}

func TestScoreTeamAdditiveAcrossFields(t *testing.T) {
	team := &models.Team{
		Name:        "United",
		Market:      "United",
		DisplayName: "Old Town",
	}
	score, matches := ScoreTeam(team, "united")

	if score != 18.0 { // 10 (name exact) + 8 (market exact)
		t.Errorf("expected 18.0 across name and market, got %v", score)
	}
	if len(matches) != 2 {
		t.Errorf("expected matches for two fields, got %d", len(matches))
	}
}

func TestScoreTeamAbbreviationHasNoPrefixTier(t *testing.T) {
	// Поля подобраны так, чтобы запрос совпадал только с аббревиатурой.
	team := &models.Team{
		Name:         "Nuggets",
		Market:       "Denver",
		Abbreviation: "LAL",
		DisplayName:  "Denver Nuggets",
	}
	score, matches := ScoreTeam(team, "la")

	if score != 7.0 {
		t.Errorf("abbreviation prefix must fall through to substring weight 7.0, got %v", score)
	}
	if len(matches) != 1 || matches[0].Field != "abbreviation" {
		t.Errorf("expected a single abbreviation match, got %v", matches)
	}
}

func TestScoreTeamNoMatch(t *testing.T) {
	team := &models.Team{Name: "Nuggets", Market: "Denver"}
	score, matches := ScoreTeam(team, "lakers")

	if score != 0 {
		t.Errorf("expected zero score without matches, got %v", score)
	}
	if matches != nil {
		t.Errorf("expected nil matches, got %v", matches)
	}
}

func TestHighlightOccurrences(t *testing.T) {
	tests := map[string]struct {
		value string
		query string
		want  string
	}{
		"single occurrence preserves case": {
			value: "Los Angeles Lakers",
			query: "lakers",
			want:  "Los Angeles <em>Lakers</em>",
		},
		"multiple occurrences": {
			value: "Lakeside Lakers",
			query: "lake",
			want:  "<em>Lake</em>side <em>Lake</em>rs",
		},
		"full value": {
			value: "LAL",
			query: "lal",
			want:  "<em>LAL</em>",
		},
		"no occurrence": {
			value: "Denver",
			query: "lakers",
			want:  "Denver",
		},
		"multi-byte runes": {
			value: "Žilina",
			query: "žil",
			want:  "<em>Žil</em>ina",
		},
		"rune grows when folded": {
			// U+023A (2 байта) в нижнем регистре — U+2C65 (3 байта).
			value: "Ⱥ",
			query: "ⱥ",
			want:  "<em>Ⱥ</em>",
		},
		"rune shrinks when folded": {
			// U+0130 (2 байта) в нижнем регистре — "i" (1 байт).
			value: "ABCİ",
			query: "i",
			want:  "ABC<em>İ</em>",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := highlightOccurrences(tc.value, tc.query)
			if got != tc.want {
				t.Errorf("highlightOccurrences(%q, %q) = %q, want %q", tc.value, tc.query, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("highlightOccurrences(%q, %q) produced invalid UTF-8: %q", tc.value, tc.query, got)
			}
		})
	}
}

func TestScoreTeamUnicodeName(t *testing.T) {
	team := &models.Team{Name: "Ⱥ"}
	query := strings.ToLower(team.Name)

	score, matches := ScoreTeam(team, query)

	if score != 10.0 {
		t.Errorf("expected exact-name score 10.0 for unicode name, got %v", score)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	if matches[0].Highlighted != "<em>Ⱥ</em>" {
		t.Errorf("unexpected highlight: %q", matches[0].Highlighted)
	}
	if !utf8.ValidString(matches[0].Highlighted) {
		t.Errorf("highlight is not valid UTF-8: %q", matches[0].Highlighted)
	}
}
