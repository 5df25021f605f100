package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/render"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/shared/apperr"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/storage"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

// settingFields is the singleton settings document as a form.
var settingFields = []forms.Field{
	{Name: "coinCharge", Label: "Coin Charge", Kind: forms.Number, Required: true},
	{Name: "adminCommission", Label: "Admin Commission (%)", Kind: forms.Number, Required: true},
	{Name: "minWithdrawAmount", Label: "Minimum Withdrawal", Kind: forms.Number, Required: true},
	{Name: "privacyPolicyLink", Label: "Privacy Policy Link", Kind: forms.URL},
	{Name: "supportEmail", Label: "Support Email", Kind: forms.Text},
	{Name: "isMaintenance", Label: "Maintenance Mode", Kind: forms.Switch},
	{Name: "stripeEnabled", Label: "Stripe Payments", Kind: forms.Switch},
	{Name: "razorpayEnabled", Label: "Razorpay Payments", Kind: forms.Switch},
}

type SettingsHandler struct {
	Flash  *flash.Codec
	Svc    *backend.SettingService
	Stager storage.Stager
}

func NewSettingsHandler(f *flash.Codec, svc *backend.SettingService, st storage.Stager) *SettingsHandler {
	return &SettingsHandler{Flash: f, Svc: svc, Stager: st}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	rec, env, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, err)
		return
	}
	if !env.Success {
		middleware.Fail(c, apperr.UpstreamErr(env.Message))
		return
	}

	f := forms.New(settingFields, nil)
	f.Open(rec)
	render.JSON(c, http.StatusOK, view.FormPage{
		Title:  "Settings",
		Fields: fieldVMs(f),
		Target: rec,
	})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	rec, env, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, err)
		return
	}
	if !env.Success {
		middleware.Fail(c, apperr.UpstreamErr(env.Message))
		return
	}

	f := forms.New(settingFields, func(ctx context.Context, values forms.Values, target view.Record) (forms.Result, error) {
		env, err := h.Svc.Update(ctx, target.ID(), payloadFrom(values))
		if err != nil {
			return forms.Result{}, err
		}
		return resultFrom(env), nil
	})
	f.Open(rec)

	staged, err := applyPosted(c, f, h.Stager)
	if err != nil {
		discardStaged(c.Request.Context(), h.Stager, staged)
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if err := f.Submit(c.Request.Context()); err != nil {
		discardStaged(c.Request.Context(), h.Stager, staged)
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if f.State() != forms.Closed {
		discardStaged(c.Request.Context(), h.Stager, staged)
		render.JSON(c, http.StatusBadRequest, gin.H{"success": false, "message": f.Message()})
		return
	}
	render.JSON(c, http.StatusOK, gin.H{"success": true})
}

// ToggleSwitch flips one boolean setting without a full form round-trip.
func (h *SettingsHandler) ToggleSwitch(c *gin.Context) {
	key := c.PostForm("type")
	if key == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing switch name.", nil))
		return
	}

	rec, env, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, err)
		return
	}
	if !env.Success {
		middleware.Fail(c, apperr.UpstreamErr(env.Message))
		return
	}

	tenv, err := h.Svc.ToggleSwitch(c.Request.Context(), rec.ID(), key)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !tenv.Success {
		render.JSON(c, http.StatusBadRequest, gin.H{"success": false, "message": tenv.Message})
		return
	}
	render.JSON(c, http.StatusOK, gin.H{"success": true})
}
