package handlers

import (
	"net/http"

	"ekrafmate_backend/internal/middleware"
	"ekrafmate_backend/internal/services"
	"ekrafmate_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes registers profile endpoints. The public profile by id
// stays outside the authenticated group.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/:id", h.GetPublicProfile)
	}

	private := rg.Group("/users")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/profile", h.GetProfile)
		private.PUT("/profile", h.UpdateProfile)
		private.PUT("/profile/change-password", h.ChangePassword)
		private.POST("/generate-description", h.GenerateDescription)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.GetProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdateProfile(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.ChangePassword(db, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password successfully changed",
	})
}

// GenerateDescription drafts profile text from key points with the AI
// model; nothing is persisted until the user saves their profile.
func (h *UserHandler) GenerateDescription(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.GenerateDescriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	text, err := h.userService.GenerateDescription(c.Request.Context(), req.KeyPoints)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateDescriptionResponse{Description: text})
}

func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetPublicProfile(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
