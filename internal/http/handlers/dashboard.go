package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/render"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/session"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

type DashboardHandler struct {
	Flash *flash.Codec
	Svc   *backend.DashboardService
	Store *session.Store
}

func NewDashboardHandler(f *flash.Codec, svc *backend.DashboardService, store *session.Store) *DashboardHandler {
	return &DashboardHandler{Flash: f, Svc: svc, Store: store}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	start := c.DefaultQuery("startDate", "All")
	end := c.DefaultQuery("endDate", "All")

	stats, env, err := h.Svc.Stats(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, err)
		return
	}

	vm := view.DashboardPage{
		Title:     "Dashboard",
		Admin:     adminName(h.Store),
		StartDate: start,
		EndDate:   end,
		Flash:     middleware.GetFlash(c),
	}
	if env.Success {
		vm.Stats = stats
	} else {
		// the dashboard stays up with an empty stats block; the message
		// rides along for the widget to show inline
		vm.Stats = view.Record{"message": env.Message}
	}
	render.JSON(c, http.StatusOK, vm)
}

func adminName(store *session.Store) string {
	blob, ok := store.Admin()
	if !ok {
		return ""
	}
	var admin struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := jsonUnmarshal(blob, &admin); err != nil {
		return ""
	}
	if admin.Name != "" {
		return admin.Name
	}
	return admin.Email
}
