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
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/validation"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/lists"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/shared/apperr"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

type WithdrawalsHandler struct {
	Flash    *flash.Codec
	Svc      *backend.WithdrawalService
	Currency *currency.Store
}

func NewWithdrawalsHandler(f *flash.Codec, svc *backend.WithdrawalService, cur *currency.Store) *WithdrawalsHandler {
	return &WithdrawalsHandler{Flash: f, Svc: svc, Currency: cur}
}

func (h *WithdrawalsHandler) pager(state, person string) *lists.Pager {
	return &lists.Pager{
		Title:   "Withdrawal Requests",
		Headers: []string{"No", "Requested By", "Amount", "Method", "Details", "State", "Requested"},
		Fetch: func(ctx context.Context, _, _ string, offset, limit int) (lists.Page, error) {
			env, err := h.Svc.ListByState(ctx, state, person, offset, limit)
			if err != nil {
				return lists.Page{}, err
			}
			if !env.Success {
				return lists.Page{Success: false, Message: env.Message}, nil
			}
			recs, rerr := backend.Records(env, "withdrawals")
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
					rec.Str("name"),
					h.Currency.Format(rec.Float("amount")),
					rec.Str("paymentGateway"),
					rec.Str("paymentDetails"),
					rec.Str("type"),
					view.DateCell(rec, "createdAt"),
				},
			}
		},
	}
}

func (h *WithdrawalsHandler) List(c *gin.Context) {
	state := c.DefaultQuery("type", "pending")
	person := c.Query("person") // host or seller payouts

	p := h.pager(state, person)
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
		"list":   vm,
		"type":   state,
		"person": person,
	})
}

func (h *WithdrawalsHandler) Accept(c *gin.Context) {
	env, err := h.Svc.Accept(c.Request.Context(), c.Param("id"))
	h.answerAction(c, env, err)
}

type declineInput struct {
	Reason string `form:"reason" json:"reason" binding:"required,min=3"`
}

func (h *WithdrawalsHandler) Decline(c *gin.Context) {
	var in declineInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("A decline reason is required.", errs))
		return
	}

	env, err := h.Svc.Decline(c.Request.Context(), c.Param("id"), in.Reason)
	h.answerAction(c, env, err)
}

func (h *WithdrawalsHandler) answerAction(c *gin.Context, env *api.Envelope, err error) {
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
