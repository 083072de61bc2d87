package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/services"
)

type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(cs services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: cs}
}

func (h *ContentHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryOptionalUUID(r, "team_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	leagueID, err := queryOptionalUUID(r, "league_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	limit, err := queryIntDefault(r, "limit", 50, 1, 50)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	offset, err := queryIntDefault(r, "offset", 0, 0, 1<<30)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var category *models.ContentCategory
	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		c := models.ContentCategory(strings.ToLower(raw))
		switch c {
		case models.CategoryTransfer, models.CategoryInjury, models.CategoryMatchReport,
			models.CategoryMatchPreview, models.CategoryGeneral:
			category = &c
		default:
			badRequestResponse(w, r, fmt.Errorf("invalid category value: %q", raw))
			return
		}
	}

	articles, err := h.contentService.ListArticles(r.Context(), services.ListArticlesInput{
		TeamID:   teamID,
		LeagueID: leagueID,
		Category: category,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"articles": articles,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ContentHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	articleID, err := getUUIDFromURL(r, "articleID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	article, err := h.contentService.GetArticleByID(r.Context(), articleID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"article": article,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
