package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxKeyLocale = "locale"

const DefaultLocale = "en"

// Locale validates the :lang route segment. Anything that is not a
// two-character code gets rewritten onto the default locale so stale or
// malformed links still land somewhere sensible.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Param("lang")
		if len(lang) != 2 {
			rest := strings.TrimPrefix(c.Request.URL.Path, "/"+lang)
			target := "/" + DefaultLocale + rest
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Set(CtxKeyLocale, lang)
		c.Next()
	}
}

func GetLocale(c *gin.Context) string {
	if v, ok := c.Get(CtxKeyLocale); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return DefaultLocale
}

// DetectLocale reads the locale off a raw path: the first segment when it is
// a two-character code, else the default.
func DetectLocale(path string) string {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.Index(seg, "/"); i >= 0 {
		seg = seg[:i]
	}
	if len(seg) == 2 {
		return seg
	}
	return DefaultLocale
}

// LoginRoute is the locale-aware login path.
func LoginRoute(locale string) string {
	return "/" + locale + "/login"
}
