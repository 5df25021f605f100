package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/flash"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/middleware"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/http/render"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/lists"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/shared/apperr"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

var currencyFields = []forms.Field{
	{Name: "name", Label: "Name", Kind: forms.Text, Required: true},
	{Name: "symbol", Label: "Symbol", Kind: forms.Text, Required: true},
	{Name: "currencyCode", Label: "Code", Kind: forms.Text, Required: true, Validate: func(v any) string {
		s, _ := v.(string)
		if len(s) != 3 {
			return "Code must be a three-letter ISO code"
		}
		return ""
	}},
}

// CurrenciesHandler is the one screen that also writes global display
// state: setting the default currency refreshes the currency store every
// money label reads from.
type CurrenciesHandler struct {
	Flash    *flash.Codec
	Svc      *backend.CurrencyService
	Currency *currency.Store
}

func NewCurrenciesHandler(f *flash.Codec, svc *backend.CurrencyService, cur *currency.Store) *CurrenciesHandler {
	return &CurrenciesHandler{Flash: f, Svc: svc, Currency: cur}
}

func (h *CurrenciesHandler) List(c *gin.Context) {
	p := &lists.Pager{
		Title:   "Currencies",
		Headers: []string{"No", "Name", "Symbol", "Code", "Default"},
		Fetch: func(ctx context.Context, _, _ string, offset, limit int) (lists.Page, error) {
			env, err := h.Svc.List(ctx, offset, limit, nil)
			if err != nil {
				return lists.Page{}, err
			}
			if !env.Success {
				return lists.Page{Success: false, Message: env.Message}, nil
			}
			recs, rerr := backend.Records(env, "currencies")
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
					rec.Str("symbol"),
					rec.Str("currencyCode"),
					view.YesNo(rec.Bool("isDefault")),
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
	render.JSON(c, http.StatusOK, gin.H{
		"list":          vm,
		"defaultSymbol": h.Currency.Symbol(),
		"defaultCode":   h.Currency.Code(),
	})
}

func (h *CurrenciesHandler) Create(c *gin.Context) {
	f := forms.New(currencyFields, func(ctx context.Context, values forms.Values, _ view.Record) (forms.Result, error) {
		env, err := h.Svc.Create(ctx, payloadFrom(values))
		if err != nil {
			return forms.Result{}, err
		}
		return resultFrom(env), nil
	})
	f.Open(nil)

	for _, fld := range f.Fields() {
		if v, ok := c.GetPostForm(fld.Name); ok {
			_ = f.Set(fld.Name, v)
		}
	}

	if err := f.Submit(c.Request.Context()); err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			middleware.RedirectLogin(c, h.Flash)
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if f.State() != forms.Closed {
		render.JSON(c, http.StatusBadRequest, gin.H{"success": false, "message": f.Message()})
		return
	}
	render.JSON(c, http.StatusOK, gin.H{"success": true})
}

// SetDefault makes a currency the platform default and refreshes the store.
func (h *CurrenciesHandler) SetDefault(c *gin.Context) {
	env, err := h.Svc.SetDefault(c.Request.Context(), c.Param("id"))
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

	// re-read rather than trusting the request: the backend is the source
	// of truth for the active symbol
	if cur, denv, derr := h.Svc.Default(c.Request.Context()); derr == nil && denv.Success {
		h.Currency.Set(cur.Symbol, cur.Code)
	}
	render.JSON(c, http.StatusOK, gin.H{"success": true, "symbol": h.Currency.Symbol()})
}
