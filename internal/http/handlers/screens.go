package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/render"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/lists"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/screens"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/shared/apperr"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/storage"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

// ScreenHandler serves every screen in the registry through one set of
// routes: list, create, update, delete. Screens with bespoke actions have
// their own handlers.
type ScreenHandler struct {
	API     *api.Client
	Flash   *flash.Codec
	Stager  storage.Stager
	Screens []screens.Screen
}

func NewScreenHandler(c *api.Client, f *flash.Codec, st storage.Stager, reg []screens.Screen) *ScreenHandler {
	return &ScreenHandler{API: c, Flash: f, Stager: st, Screens: reg}
}

func (h *ScreenHandler) screen(c *gin.Context) (screens.Screen, *backend.Service, bool) {
	scr, ok := screens.Lookup(h.Screens, c.Param("screen"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Unknown screen."))
		return screens.Screen{}, nil, false
	}
	return scr, backend.NewService(h.API, scr.Resource), true
}

// pagerFor builds the screen's list widget around the generic resource
// service.
func pagerFor(scr screens.Screen, svc *backend.Service) *lists.Pager {
	return &lists.Pager{
		Title:           scr.Title,
		Headers:         scr.Headers,
		PageSize:        scr.PageSize,
		IdentifierParam: scr.IdentifierParam,
		Render:          scr.Row,
		Fetch: func(ctx context.Context, identifier, roleType string, offset, limit int) (lists.Page, error) {
			extra := url.Values{}
			if roleType != "" {
				extra.Set("type", roleType)
			}
			if identifier != "" && scr.IdentifierParam != "" {
				extra.Set(scr.IdentifierParam, identifier)
			}
			env, err := svc.List(ctx, offset, limit, extra)
			if err != nil {
				return lists.Page{}, err
			}
			if !env.Success {
				return lists.Page{Success: false, Message: env.Message}, nil
			}
			recs, rerr := backend.Records(env, scr.AltKey)
			if rerr != nil {
				return lists.Page{Success: false, Message: rerr.Error()}, nil
			}
			return lists.Page{Success: true, Records: recs}, nil
		},
	}
}

func (h *ScreenHandler) List(c *gin.Context) {
	scr, svc, ok := h.screen(c)
	if !ok {
		return
	}

	p := pagerFor(scr, svc)
	p.SetIdentifier(c.Query(scr.IdentifierParam), scr.RoleType)
	p.SetPageSize(parseInt(c.Query("pageSize"), p.PageSize))
	p.SetPage(parseInt(c.Query("page"), 0))

	if err := p.Load(c.Request.Context()); err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := p.ViewModel()
	vm.Flash = middleware.GetFlash(c)
	render.JSON(c, http.StatusOK, vm)
}

// FormVM answers the field descriptors (seeded from the edit target when an
// id is given) so the widget layer can draw the dialog.
func (h *ScreenHandler) FormVM(c *gin.Context) {
	scr, svc, ok := h.screen(c)
	if !ok {
		return
	}
	if scr.Fields == nil {
		middleware.Fail(c, apperr.NotFoundErr("This screen has no form."))
		return
	}

	var target view.Record
	if id := c.Query("id"); id != "" {
		env, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, api.ErrSessionExpired) {
				middleware.RedirectLogin(c, h.Flash)
				return
			}
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		if env.Success {
			_ = env.DecodeData(&target)
		}
	}

	f := forms.New(scr.Fields, nil)
	f.Open(target)
	render.JSON(c, http.StatusOK, view.FormPage{
		Title:  scr.Title,
		Fields: fieldVMs(f),
		Target: target,
	})
}

func (h *ScreenHandler) Create(c *gin.Context) {
	h.submit(c, "")
}

func (h *ScreenHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing record id.", nil))
		return
	}
	h.submit(c, id)
}

// submit runs the full dialog lifecycle server-side: seed, apply posted
// values, validate, persist via the resource service.
func (h *ScreenHandler) submit(c *gin.Context, id string) {
	scr, svc, ok := h.screen(c)
	if !ok {
		return
	}
	if scr.Fields == nil {
		middleware.Fail(c, apperr.NotFoundErr("This screen has no form."))
		return
	}

	var target view.Record
	if id != "" {
		env, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, api.ErrSessionExpired) {
				middleware.RedirectLogin(c, h.Flash)
				return
			}
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		if env.Success {
			_ = env.DecodeData(&target)
		}
		if target == nil {
			target = view.Record{"_id": id}
		}
	}

	f := forms.New(scr.Fields, func(ctx context.Context, values forms.Values, target view.Record) (forms.Result, error) {
		payload := payloadFrom(values)
		var (
			env *api.Envelope
			err error
		)
		if target == nil {
			env, err = svc.Create(ctx, payload)
		} else {
			env, err = svc.Update(ctx, target.ID(), payload)
		}
		if err != nil {
			return forms.Result{}, err
		}
		return resultFrom(env), nil
	})
	f.Open(target)

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
		render.JSON(c, http.StatusBadRequest, gin.H{
			"success": false,
			"message": f.Message(),
		})
		return
	}
	render.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *ScreenHandler) Delete(c *gin.Context) {
	_, svc, ok := h.screen(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		middleware.Fail(c, apperr.InvalidErr("Missing record id.", nil))
		return
	}

	env, err := svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !env.Success {
		render.JSON(c, http.StatusBadRequest, gin.H{"success": false, "message": env.Message})
		return
	}
	render.JSON(c, http.StatusOK, gin.H{"success": true})
}
