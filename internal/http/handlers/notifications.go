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
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/lists"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/shared/apperr"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/storage"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

var broadcastFields = []forms.Field{
	{Name: "type", Label: "Audience", Kind: forms.Select, Required: true,
		Options: []string{backend.AudienceUsers, backend.AudienceHosts, backend.AudienceSellers},
		Default: backend.AudienceUsers},
	{Name: "title", Label: "Title", Kind: forms.Text, Required: true},
	{Name: "message", Label: "Message", Kind: forms.Textarea, Required: true},
	{Name: "image", Label: "Image", Kind: forms.File},
}

type NotificationsHandler struct {
	Flash  *flash.Codec
	Svc    *backend.NotificationService
	Stager storage.Stager
}

func NewNotificationsHandler(f *flash.Codec, svc *backend.NotificationService, st storage.Stager) *NotificationsHandler {
	return &NotificationsHandler{Flash: f, Svc: svc, Stager: st}
}

// List pages past announcements.
func (h *NotificationsHandler) List(c *gin.Context) {
	p := &lists.Pager{
		Title:   "Notifications",
		Headers: []string{"No", "Audience", "Title", "Message", "Sent"},
		Fetch: func(ctx context.Context, _, _ string, offset, limit int) (lists.Page, error) {
			env, err := h.Svc.List(ctx, offset, limit, nil)
			if err != nil {
				return lists.Page{}, err
			}
			if !env.Success {
				return lists.Page{Success: false, Message: env.Message}, nil
			}
			recs, rerr := backend.Records(env, "notifications")
			if rerr != nil {
				return lists.Page{Success: false, Message: rerr.Error()}, nil
			}
			return lists.Page{Success: true, Records: recs}, nil
		},
		Render: func(rec view.Record, abs, _ int) view.Row {
			return view.Row{
				ID: rec.ID(),
				Cells: []string{
					view.IndexCell(abs),
					rec.Str("type"),
					rec.Str("title"),
					rec.Str("message"),
					view.DateCell(rec, "createdAt"),
				},
			}
		},
	}
	p.SetPageSize(parseInt(c.Query("pageSize"), 0))
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

// Broadcast sends an announcement to one audience through the form engine,
// staging the optional image first.
func (h *NotificationsHandler) Broadcast(c *gin.Context) {
	f := forms.New(broadcastFields, func(ctx context.Context, values forms.Values, _ view.Record) (forms.Result, error) {
		in := backend.BroadcastInput{
			Audience: stringValue(values["type"]),
			Title:    stringValue(values["title"]),
			Body:     stringValue(values["message"]),
		}
		if fr, ok := values["image"].(*forms.FileRef); ok && fr != nil {
			in.ImageURL = fr.URL
		}
		env, err := h.Svc.Broadcast(ctx, in)
		if err != nil {
			return forms.Result{}, err
		}
		return resultFrom(env), nil
	})
	f.Open(nil)

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

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
