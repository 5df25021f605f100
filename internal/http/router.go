package http

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/config"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/handlers"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/nav"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/screens"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/session"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/storage"
)

type Deps struct {
	Logger   *slog.Logger
	Config   config.Config
	Store    *session.Store
	Currency *currency.Store
	Client   *api.Client
	Stager   storage.Stager
	Menu     nav.Menu

	// UploadDir/UploadPrefix describe the local staging area so staged
	// URLs resolve. Both empty when S3 serves the uploads itself.
	UploadDir    string
	UploadPrefix string
}

func NewRouter(d Deps) *gin.Engine {
	if d.Config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	flashCodec := flash.NewCodec(d.Config.FlashSecret, "tc_flash", d.Config.IsProd())

	auth := backend.NewAuthService(d.Client)
	dashboards := backend.NewDashboardService(d.Client)
	orders := backend.NewOrderService(d.Client)
	withdrawals := backend.NewWithdrawalService(d.Client)
	settings := backend.NewSettingService(d.Client)
	currencies := backend.NewCurrencyService(d.Client)
	notifications := backend.NewNotificationService(d.Client)

	login := handlers.NewLoginHandler(flashCodec, auth, d.Store, d.Config.DefaultHome)
	logout := handlers.NewLogoutHandler(flashCodec, d.Store)
	menu := handlers.NewMenuHandler(d.Menu)
	dash := handlers.NewDashboardHandler(flashCodec, dashboards, d.Store)
	scr := handlers.NewScreenHandler(d.Client, flashCodec, d.Stager, screens.All(d.Currency))
	ord := handlers.NewOrdersHandler(flashCodec, orders, d.Currency)
	wdr := handlers.NewWithdrawalsHandler(flashCodec, withdrawals, d.Currency)
	set := handlers.NewSettingsHandler(flashCodec, settings, d.Stager)
	cur := handlers.NewCurrenciesHandler(flashCodec, currencies, d.Currency)
	ntf := handlers.NewNotificationsHandler(flashCodec, notifications, d.Stager)

	lang := r.Group("/:lang", middleware.Locale(), middleware.FlashMiddleware(flashCodec))
	{
		lang.GET("/login", login.Get)
		lang.POST("/login", login.Post)
		lang.POST("/logout", logout.Post)

		admin := lang.Group("/admin", middleware.RequireAdmin(d.Store, flashCodec))
		{
			admin.GET("/menu", menu.Get)
			admin.GET("/dashboard", dash.Get)

			admin.GET("/s/:screen", scr.List)
			admin.GET("/s/:screen/form", scr.FormVM)
			admin.POST("/s/:screen", scr.Create)
			admin.POST("/s/:screen/:id", scr.Update)
			admin.DELETE("/s/:screen/:id", scr.Delete)

			admin.GET("/orders", ord.List)
			admin.POST("/orders/:id/status", ord.UpdateStatus)

			admin.GET("/withdrawals", wdr.List)
			admin.POST("/withdrawals/:id/accept", wdr.Accept)
			admin.POST("/withdrawals/:id/decline", wdr.Decline)

			admin.GET("/settings", set.Get)
			admin.POST("/settings", set.Update)
			admin.POST("/settings/switch", set.ToggleSwitch)

			admin.GET("/currencies", cur.List)
			admin.POST("/currencies", cur.Create)
			admin.POST("/currencies/:id/default", cur.SetDefault)

			admin.GET("/notifications", ntf.List)
			admin.POST("/notifications", ntf.Broadcast)
		}
	}

	// paths without a locale segment get one; everything else is a 404.
	// locally staged uploads are served here because a root static route
	// cannot coexist with the :lang wildcard in gin's tree.
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if d.UploadDir != "" && strings.HasPrefix(path, d.UploadPrefix+"/") {
			c.File(filepath.Join(d.UploadDir, filepath.Base(path)))
			return
		}
		if path == "/" {
			c.Redirect(http.StatusFound, "/"+middleware.DefaultLocale+d.Config.DefaultHome)
			return
		}
		if middleware.DetectLocale(path) == middleware.DefaultLocale && !strings.HasPrefix(path, "/"+middleware.DefaultLocale+"/") {
			target := "/" + middleware.DefaultLocale + path
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			c.Redirect(http.StatusFound, target)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
