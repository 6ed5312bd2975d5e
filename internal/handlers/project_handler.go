package handlers

import (
	"net/http"

	"ekrafmate_backend/internal/middleware"
	"ekrafmate_backend/internal/models"
	"ekrafmate_backend/internal/services"
	"ekrafmate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

// RegisterRoutes registers the project endpoints. Listing open projects
// and reading one project are public; everything else is authenticated,
// with role gates on posting and applying. Ownership checks live in the
// service.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.ListOpen)
		projects.GET("/:id", h.GetByID)
	}

	private := rg.Group("/projects")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("", middleware.RequireRoles(models.UserRoleClient), h.Create)
		private.POST("/generate-description", middleware.RequireRoles(models.UserRoleClient), h.GenerateDescription)
		private.GET("/myprojects", middleware.RequireRoles(models.UserRoleClient), h.ListMine)
		private.GET("/assigned", middleware.RequireRoles(models.UserRoleCreative), h.ListAssigned)
		private.PUT("/:id", h.Update)
		private.DELETE("/:id", h.Delete)
		private.PUT("/:id/apply", middleware.RequireRoles(models.UserRoleCreative), h.Apply)
		private.PUT("/:id/accept", h.Accept)
		private.PUT("/:id/complete", h.Complete)
		private.PUT("/:id/close", h.Close)
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Create(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) ListOpen(c *gin.Context) {
	db := h.GetDB(c)

	projects, err := h.projectService.ListOpen(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	project, err := h.projectService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Update(c.Request.Context(), db, userID, h.GetCallerRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.projectService.Delete(db, userID, h.GetCallerRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project removed",
	})
}

func (h *ProjectHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.projectService.Apply(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application submitted",
	})
}

func (h *ProjectHandler) Accept(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AcceptCreativeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Accept(db, userID, c.Param("id"), req.CreativeID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Complete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Complete(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Close(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Close(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	projects, err := h.projectService.ListByOwner(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) ListAssigned(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	projects, err := h.projectService.ListAssigned(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GenerateDescription(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.GenerateDescriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	text, err := h.projectService.GenerateDescription(c.Request.Context(), req.KeyPoints)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateDescriptionResponse{Description: text})
}
