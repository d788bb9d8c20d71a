package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wisenkap/internal/pagination"
	"wisenkap/internal/services"
)

// AdminHandler serves operator endpoints guarded by the admin API key
type AdminHandler struct {
	userService services.UserServicer
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userService services.UserServicer) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers returns a page of registered users
// @Summary     List users
// @Tags        admin
// @Produce     json
// @Security    ApiKeyAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.User]
// @Failure     400 {object} ErrorResponse
// @Failure     401 {object} ErrorResponse
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		bindError(c, err)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
