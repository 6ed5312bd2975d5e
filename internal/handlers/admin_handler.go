package handlers

import (
	"net/http"

	"ekrafmate_backend/internal/middleware"
	"ekrafmate_backend/internal/services"
	"ekrafmate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// RegisterRoutes registers the admin endpoints behind the admin role
// gate.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.PUT("/users/:id/reset-password", h.ResetUserPassword)
		admin.GET("/projects", h.ListProjects)
		admin.DELETE("/projects/:id", h.DeleteProject)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.adminService.ListUsers(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.adminService.GetUser(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.adminService.UpdateUser(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.adminService.DeleteUser(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User removed",
	})
}

func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.adminService.ResetUserPassword(db, c.Param("id"), req.NewPassword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func (h *AdminHandler) ListProjects(c *gin.Context) {
	db := h.GetDB(c)

	projects, err := h.adminService.ListProjects(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *AdminHandler) DeleteProject(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.adminService.DeleteProject(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project removed",
	})
}
