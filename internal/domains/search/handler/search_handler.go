package handler

import (
	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/person"
	"catalog-backend/internal/domains/search"
	"catalog-backend/internal/domains/work"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/logger"
)

// SearchHandler serves the cross-collection endpoints: global search and the
// distinct-value listings.
type SearchHandler struct {
	searcher search.Service
	people   person.Service
	works    work.Service
}

func NewSearchHandler(searcher search.Service, people person.Service, works work.Service) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		people:   people,
		works:    works,
	}
}

// ════════════════════════════════════════════════════════════════
// SEARCH: GET /api/search?q=
// ════════════════════════════════════════════════════════════════

func (h *SearchHandler) GlobalSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing query parameter 'q'")
		return
	}

	result, err := h.searcher.GlobalSearch(c.Request.Context(), query)
	if err != nil {
		logger.Error("global search failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.OK(c, result)
}

// ════════════════════════════════════════════════════════════════
// LISTINGS: GET /api/genres, GET /api/nationalities
// ════════════════════════════════════════════════════════════════

func (h *SearchHandler) Genres(c *gin.Context) {
	genres, err := h.works.Genres(c.Request.Context())
	if err != nil {
		logger.Error("genre listing failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.OK(c, gin.H{"genres": genres})
}

func (h *SearchHandler) Nationalities(c *gin.Context) {
	nationalities, err := h.people.Nationalities(c.Request.Context())
	if err != nil {
		logger.Error("nationality listing failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.OK(c, gin.H{"nationalities": nationalities})
}
