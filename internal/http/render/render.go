// Package render writes responses. The console's widget layer is a separate
// client consuming view models as JSON, so "rendering" here is JSON plus the
// redirect-with-flash flow.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
