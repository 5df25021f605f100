package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/render"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/lists"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/shared/apperr"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

var orderStatuses = []string{
	backend.OrderPending,
	backend.OrderConfirmed,
	backend.OrderShipped,
	backend.OrderDelivered,
	backend.OrderCancelled,
}

type OrdersHandler struct {
	Flash    *flash.Codec
	Svc      *backend.OrderService
	Currency *currency.Store
}

func NewOrdersHandler(f *flash.Codec, svc *backend.OrderService, cur *currency.Store) *OrdersHandler {
	return &OrdersHandler{Flash: f, Svc: svc, Currency: cur}
}

func (h *OrdersHandler) pager(status string) *lists.Pager {
	return &lists.Pager{
		Title:   "Orders",
		Headers: []string{"No", "Order Id", "User", "Items", "Total", "Status", "Placed"},
		Fetch: func(ctx context.Context, _, _ string, offset, limit int) (lists.Page, error) {
			env, err := h.Svc.ListByStatus(ctx, status, offset, limit)
			if err != nil {
				return lists.Page{}, err
			}
			if !env.Success {
				return lists.Page{Success: false, Message: env.Message}, nil
			}
			recs, rerr := backend.Records(env, "orders")
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
					rec.Str("orderId"),
					rec.Str("userName"),
					rec.Str("totalItems"),
					h.Currency.Format(rec.Float("total")),
					rec.Str("status"),
					view.DateCell(rec, "createdAt"),
				},
			}
		},
	}
}

func (h *OrdersHandler) List(c *gin.Context) {
	status := c.Query("status")

	p := h.pager(status)
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
	render.JSON(c, http.StatusOK, gin.H{
		"list":     vm,
		"statuses": orderStatuses,
		"status":   status,
	})
}

func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	status := c.PostForm("status")
	if !validOrderStatus(status) {
		middleware.Fail(c, apperr.InvalidErr("Unknown order status.", nil))
		return
	}

	env, err := h.Svc.UpdateStatus(c.Request.Context(), id, status)
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

func validOrderStatus(s string) bool {
	for _, st := range orderStatuses {
		if s == st {
			return true
		}
	}
	return false
}
