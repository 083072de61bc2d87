package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/services"
)

type TeamHandler struct {
	searchService services.SearchService
	teamService   services.TeamService
}

func NewTeamHandler(ss services.SearchService, ts services.TeamService) *TeamHandler {
	return &TeamHandler{
		searchService: ss,
		teamService:   ts,
	}
}

// ListTeams — единая точка листинга и поиска команд.
// Граничная валидация (формат UUID, диапазоны пагинации) происходит здесь;
// сервис получает уже корректные значения.
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	input, err := parseSearchInput(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.searchService.SearchTeams(r.Context(), *input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	teamID, err := getUUIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"team": team,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) SuggestTeams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	limit, err := queryIntDefault(r, "limit", services.DefaultSuggestLimit, 1, services.MaxSuggestLimit)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.searchService.SuggestTeams(r.Context(), query, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadTeamLogo принимает сырое тело изображения; тип берётся из Content-Type.
func (h *TeamHandler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	teamID, err := getUUIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("missing Content-Type header"))
		return
	}

	team, err := h.teamService.UpdateTeamLogo(r.Context(), teamID, contentType, r.Body)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"team": team,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func parseSearchInput(r *http.Request) (*services.TeamSearchInput, error) {
	page, err := queryIntDefault(r, "page", 1, 1, 1<<30)
	if err != nil {
		return nil, err
	}
	pageSize, err := queryIntDefault(r, "page_size", services.DefaultPageSize, 1, services.MaxPageSize)
	if err != nil {
		return nil, err
	}

	sportID, err := queryOptionalUUID(r, "sport_id")
	if err != nil {
		return nil, err
	}
	leagueIDs, err := queryUUIDList(r, "league_ids")
	if err != nil {
		return nil, err
	}
	leagueLevels, err := queryIntList(r, "league_levels")
	if err != nil {
		return nil, err
	}
	foundingYearMin, err := queryOptionalInt(r, "founding_year_min")
	if err != nil {
		return nil, err
	}
	foundingYearMax, err := queryOptionalInt(r, "founding_year_max")
	if err != nil {
		return nil, err
	}
	multiLeagueOnly, err := queryBool(r, "multi_league_only")
	if err != nil {
		return nil, err
	}

	var competitionTypes []models.CompetitionType
	for _, raw := range queryStringList(r, "competition_types") {
		t := models.CompetitionType(strings.ToLower(raw))
		if !t.Valid() {
			return nil, fmt.Errorf("invalid competition_types value: %q", raw)
		}
		competitionTypes = append(competitionTypes, t)
	}

	return &services.TeamSearchInput{
		Query:            r.URL.Query().Get("query"),
		SportID:          sportID,
		LeagueIDs:        leagueIDs,
		CountryCodes:     queryStringList(r, "country_codes"),
		CompetitionTypes: competitionTypes,
		LeagueLevels:     leagueLevels,
		FoundingYearMin:  foundingYearMin,
		FoundingYearMax:  foundingYearMax,
		MultiLeagueOnly:  multiLeagueOnly,
		Page:             page,
		PageSize:         pageSize,
	}, nil
}
