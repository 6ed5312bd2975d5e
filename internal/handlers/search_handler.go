package handlers

import (
	"net/http"

	"ekrafmate_backend/internal/services"
	"ekrafmate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

// RegisterRoutes registers the public semantic search endpoints.
func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	search := rg.Group("/search")
	{
		search.POST("/creatives", h.SearchCreatives)
		search.POST("/projects", h.SearchProjects)
	}
}

func (h *SearchHandler) SearchCreatives(c *gin.Context) {
	var req dto.SearchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	results, err := h.searchService.SearchCreatives(c.Request.Context(), db, req.Query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *SearchHandler) SearchProjects(c *gin.Context) {
	var req dto.SearchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	results, err := h.searchService.SearchProjects(c.Request.Context(), db, req.Query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
