package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/services"
)

type LeagueHandler struct {
	leagueService services.LeagueService
}

func NewLeagueHandler(ls services.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: ls}
}

func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	var competitionTypes []models.CompetitionType
	for _, raw := range queryStringList(r, "competition_types") {
		t := models.CompetitionType(strings.ToLower(raw))
		if !t.Valid() {
			badRequestResponse(w, r, fmt.Errorf("invalid competition_types value: %q", raw))
			return
		}
		competitionTypes = append(competitionTypes, t)
	}
	leagueLevel, err := queryOptionalInt(r, "league_level")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	leagues, err := h.leagueService.ListLeagues(r.Context(), services.ListLeaguesInput{
		CountryCodes:     queryStringList(r, "country_codes"),
		CompetitionTypes: competitionTypes,
		LeagueLevel:      leagueLevel,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"leagues": leagues,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) GetLeagueByID(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getUUIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	league, err := h.leagueService.GetLeagueByID(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"league": league,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) ListLeagueTeams(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getUUIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.leagueService.ListLeagueTeams(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"teams": teams,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeagueHandler) UploadLeagueLogo(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getUUIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("missing Content-Type header"))
		return
	}

	league, err := h.leagueService.UpdateLeagueLogo(r.Context(), leagueID, contentType, r.Body)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"league": league,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
