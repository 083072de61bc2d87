package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courtside/sports-platform/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type stubSearchService struct {
	searchInput   *services.TeamSearchInput
	searchResult  *services.TeamSearchResult
	suggestQuery  string
	suggestLimit  int
	suggestResult *services.SuggestionResult
}

func (s *stubSearchService) SearchTeams(_ context.Context, input services.TeamSearchInput) (*services.TeamSearchResult, error) {
	s.searchInput = &input
	if s.searchResult != nil {
		return s.searchResult, nil
	}
	return &services.TeamSearchResult{Items: []services.TeamView{}, Page: input.Page, PageSize: input.PageSize}, nil
}

func (s *stubSearchService) SuggestTeams(_ context.Context, query string, limit int) (*services.SuggestionResult, error) {
	s.suggestQuery = query
	s.suggestLimit = limit
	if s.suggestResult != nil {
		return s.suggestResult, nil
	}
	return &services.SuggestionResult{Query: query, Suggestions: []services.Suggestion{}}, nil
}

type stubTeamService struct {
	view   *services.TeamView
	err    error
	called bool
}

func (s *stubTeamService) GetTeamByID(_ context.Context, _ uuid.UUID) (*services.TeamView, error) {
	s.called = true
	return s.view, s.err
}

func (s *stubTeamService) UpdateTeamLogo(_ context.Context, _ uuid.UUID, _ string, _ io.Reader) (*services.TeamView, error) {
	s.called = true
	return s.view, s.err
}

func newTeamRouter(search *stubSearchService, team *stubTeamService) *chi.Mux {
	h := NewTeamHandler(search, team)
	r := chi.NewRouter()
	r.Get("/teams", h.ListTeams)
	r.Get("/teams/suggestions", h.SuggestTeams)
	r.Get("/teams/{teamID}", h.GetTeamByID)
	return r
}

func TestListTeamsBoundaryValidation(t *testing.T) {
	tests := map[string]string{
		"zero page":                "/teams?page=0",
		"zero page size":           "/teams?page_size=0",
		"page size above max":      "/teams?page_size=101",
		"non-numeric page":         "/teams?page=abc",
		"malformed league id":      "/teams?league_ids=not-a-uuid",
		"malformed sport id":       "/teams?sport_id=123",
		"unknown competition type": "/teams?competition_types=friendly",
		"non-numeric league level": "/teams?league_levels=first",
	}

	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			search := &stubSearchService{}
			router := newTeamRouter(search, &stubTeamService{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for %s, got %d", target, rec.Code)
			}
			if search.searchInput != nil {
				t.Error("service must not be called on validation failure")
			}
		})
	}
}

func TestListTeamsPassesParsedInput(t *testing.T) {
	search := &stubSearchService{}
	router := newTeamRouter(search, &stubTeamService{})

	sportID := uuid.New()
	target := "/teams?query=lakers&page=2&page_size=50&sport_id=" + sportID.String() +
		"&country_codes=us,ca&competition_types=League&league_levels=1,2&multi_league_only=true"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	input := search.searchInput
	if input == nil {
		t.Fatal("service was not called")
	}
	if input.Query != "lakers" || input.Page != 2 || input.PageSize != 50 {
		t.Errorf("unexpected basics: %+v", input)
	}
	if input.SportID == nil || *input.SportID != sportID {
		t.Errorf("sport_id not parsed: %v", input.SportID)
	}
	if len(input.CountryCodes) != 2 {
		t.Errorf("expected CSV country codes split, got %v", input.CountryCodes)
	}
	if len(input.CompetitionTypes) != 1 || input.CompetitionTypes[0] != "league" {
		t.Errorf("competition type not normalized: %v", input.CompetitionTypes)
	}
	if len(input.LeagueLevels) != 2 {
		t.Errorf("league levels not parsed: %v", input.LeagueLevels)
	}
	if !input.MultiLeagueOnly {
		t.Error("multi_league_only not parsed")
	}
}

func TestListTeamsResponseEnvelope(t *testing.T) {
	score := 10.0
	search := &stubSearchService{
		searchResult: &services.TeamSearchResult{
			Items: []services.TeamView{
				{ID: uuid.New(), Name: "Lakers", Market: "Los Angeles", RelevanceScore: &score},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
			Pages:    1,
			Meta:     &services.SearchMeta{Query: "lakers", TotalMatches: 1},
		},
	}
	router := newTeamRouter(search, &stubTeamService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams?query=lakers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Items    []json.RawMessage `json:"items"`
		Total    int               `json:"total"`
		Page     int               `json:"page"`
		PageSize int               `json:"page_size"`
		Pages    int               `json:"pages"`
		Meta     *json.RawMessage  `json:"search_meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body.Items) != 1 || body.Total != 1 || body.Page != 1 || body.PageSize != 20 || body.Pages != 1 {
		t.Errorf("unexpected envelope: %+v", body)
	}
	if body.Meta == nil {
		t.Error("search_meta missing from search response")
	}
}

func TestSuggestTeamsLimitValidation(t *testing.T) {
	search := &stubSearchService{suggestLimit: -1}
	router := newTeamRouter(search, &stubTeamService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/suggestions?query=la&limit=50", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for limit above max, got %d", rec.Code)
	}
	if search.suggestLimit != -1 {
		t.Error("service must not be called on invalid limit")
	}
}

func TestSuggestTeamsDefaults(t *testing.T) {
	search := &stubSearchService{}
	router := newTeamRouter(search, &stubTeamService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/suggestions?query=la", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if search.suggestQuery != "la" {
		t.Errorf("query not passed through, got %q", search.suggestQuery)
	}
	if search.suggestLimit != services.DefaultSuggestLimit {
		t.Errorf("expected default limit %d, got %d", services.DefaultSuggestLimit, search.suggestLimit)
	}
}

func TestGetTeamByIDInvalidUUID(t *testing.T) {
	team := &stubTeamService{}
	router := newTeamRouter(&stubSearchService{}, team)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/not-a-uuid", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed team id, got %d", rec.Code)
	}
	if team.called {
		t.Error("service must not be called on malformed id")
	}
}

func TestGetTeamByIDNotFound(t *testing.T) {
	team := &stubTeamService{err: services.ErrTeamNotFound}
	router := newTeamRouter(&stubSearchService{}, team)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/"+uuid.New().String(), nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown team, got %d", rec.Code)
	}
}

func TestGetTeamByIDEnvelope(t *testing.T) {
	view := &services.TeamView{ID: uuid.New(), Name: "Lakers", Market: "Los Angeles"}
	team := &stubTeamService{view: view}
	router := newTeamRouter(&stubSearchService{}, team)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/"+view.ID.String(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Team *services.TeamView `json:"team"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Team == nil || body.Team.ID != view.ID {
		t.Errorf("unexpected team envelope: %+v", body.Team)
	}
}
