package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/session"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

// RequireAdmin guards the console routes: no stored token (or one already
// past its expiry) means a redirect to the locale-aware login carrying the
// original destination.
func RequireAdmin(store *session.Store, flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := store.Token()
		if tok != "" && store.TokenExpired() {
			store.Purge()
			tok = ""
		}
		if tok != "" {
			c.Next()
			return
		}

		if strings.Contains(c.GetHeader("Accept"), "application/json") && c.Request.Method != http.MethodGet {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		locale := GetLocale(c)
		// redirectTo is the destination without its locale prefix; login
		// re-prefixes whatever locale it lands on.
		dest := strings.TrimPrefix(c.Request.URL.RequestURI(), "/"+locale)

		SetFlashCookie(c, flashCodec, view.Flash{
			Kind:    view.FlashWarning,
			Message: "Please sign in to continue.",
		})
		c.Redirect(http.StatusFound, LoginRoute(locale)+"?redirectTo="+url.QueryEscape(dest))
		c.Abort()
	}
}

// RedirectLogin is the forced re-authentication path: the backend rejected
// the token mid-session, credentials are already purged.
func RedirectLogin(c *gin.Context, flashCodec *flash.Codec) {
	locale := GetLocale(c)
	SetFlashCookie(c, flashCodec, view.Flash{
		Kind:    view.FlashWarning,
		Message: "Your session has expired. Please sign in again.",
	})
	c.Redirect(http.StatusFound, LoginRoute(locale))
	c.Abort()
}
