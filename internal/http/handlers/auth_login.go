package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/render"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/validation"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/session"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

type loginInput struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

type LoginHandler struct {
	Flash *flash.Codec
	Auth  *backend.AuthService
	Store *session.Store
	Home  string // post-login route without locale prefix
}

func NewLoginHandler(f *flash.Codec, auth *backend.AuthService, store *session.Store, home string) *LoginHandler {
	return &LoginHandler{Flash: f, Auth: auth, Store: store, Home: home}
}

func (h *LoginHandler) Get(c *gin.Context) {
	render.JSON(c, http.StatusOK, view.LoginPage{
		Title:      "Sign In",
		RedirectTo: normalizeRedirectTo(c.Query("redirectTo")),
		Flash:      middleware.GetFlash(c),
	})
}

func (h *LoginHandler) Post(c *gin.Context) {
	locale := middleware.GetLocale(c)
	redirectTo := normalizeRedirectTo(c.PostForm("redirectTo"))
	if redirectTo == "" {
		redirectTo = normalizeRedirectTo(c.Query("redirectTo"))
	}

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.JSON(c, http.StatusBadRequest, view.LoginPage{
			Title:      "Sign In",
			RedirectTo: redirectTo,
			Email:      in.Email,
			Errors:     errs,
		})
		return
	}

	res, env, err := h.Auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		// login itself tripped the auth interceptor; treat as bad credentials
		render.JSON(c, http.StatusUnauthorized, view.LoginPage{
			Title:     "Sign In",
			Email:     in.Email,
			PageError: "Email or password is incorrect.",
		})
		return
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Email or password is incorrect."
		}
		render.JSON(c, http.StatusUnauthorized, view.LoginPage{
			Title:      "Sign In",
			RedirectTo: redirectTo,
			Email:      in.Email,
			PageError:  msg,
		})
		return
	}

	if err := h.Store.SetToken(res.Token); err != nil {
		middleware.Fail(c, err)
		return
	}
	if len(res.Admin) > 0 {
		if err := h.Store.SetAdmin(res.Admin); err != nil {
			middleware.Fail(c, err)
			return
		}
	}

	dest := h.Home
	if redirectTo != "" {
		dest = redirectTo
	}
	render.RedirectWithFlash(c, h.Flash, "/"+locale+dest, view.FlashSuccess, "Signed in.")
}

type LogoutHandler struct {
	Flash *flash.Codec
	Store *session.Store
}

func NewLogoutHandler(f *flash.Codec, store *session.Store) *LogoutHandler {
	return &LogoutHandler{Flash: f, Store: store}
}

func (h *LogoutHandler) Post(c *gin.Context) {
	h.Store.Purge()
	locale := middleware.GetLocale(c)
	render.RedirectWithFlash(c, h.Flash, middleware.LoginRoute(locale), view.FlashInfo, "Signed out.")
}

// normalizeRedirectTo keeps only same-site absolute paths without a locale
// prefix; anything else falls back to the default destination.
func normalizeRedirectTo(v string) string {
	if v == "" || !strings.HasPrefix(v, "/") || strings.HasPrefix(v, "//") {
		return ""
	}
	return v
}
