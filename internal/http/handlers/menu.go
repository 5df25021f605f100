package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/render"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/nav"
)

type MenuHandler struct {
	Menu nav.Menu
}

func NewMenuHandler(m nav.Menu) *MenuHandler {
	return &MenuHandler{Menu: m}
}

func (h *MenuHandler) Get(c *gin.Context) {
	locale := middleware.GetLocale(c)
	render.JSON(c, http.StatusOK, h.Menu.Localized(locale))
}
