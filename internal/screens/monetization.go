package screens

import (
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

func monetizationScreens(cur *currency.Store) []Screen {
	return []Screen{
		{
			Slug:     "gifts",
			Title:    "Gifts",
			Resource: backend.Resource{Name: "gift", BasePath: "/admin/gift"},
			AltKey:   "gifts",
			Headers:  []string{"No", "Name", "Category", "Coins", "Created"},
			Fields: []forms.Field{
				{Name: "name", Label: "Name", Kind: forms.Text, Required: true},
				{Name: "category", Label: "Category", Kind: forms.Select, Required: true},
				{Name: "coin", Label: "Coin Price", Kind: forms.Number, Required: true, Validate: positive("Coin Price")},
				{Name: "image", Label: "Gift Image", Kind: forms.File, Required: true},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("name"),
						rec.Str("categoryName"),
						rec.Str("coin"),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
		{
			Slug:     "gift-categories",
			Title:    "Gift Categories",
			Resource: backend.Resource{Name: "giftCategory", BasePath: "/admin/giftCategory", IDParam: "categoryId"},
			AltKey:   "giftCategories",
			Headers:  []string{"No", "Name", "Gifts", "Created"},
			Fields: []forms.Field{
				{Name: "name", Label: "Name", Kind: forms.Text, Required: true},
				{Name: "image", Label: "Cover Image", Kind: forms.File},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("name"),
						rec.Str("giftCount"),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
		{
			Slug:     "coin-plans",
			Title:    "Coin Plans",
			Resource: backend.Resource{Name: "coinPlan", BasePath: "/admin/coinPlan", IDParam: "coinPlanId"},
			AltKey:   "coinPlans",
			Headers:  []string{"No", "Coins", "Extra", "Amount", "Tag", "Popular", "Active"},
			Fields: []forms.Field{
				{Name: "coin", Label: "Coins", Kind: forms.Number, Required: true, Validate: positive("Coins")},
				{Name: "extraCoin", Label: "Extra Coins", Kind: forms.Number},
				{Name: "amount", Label: "Amount", Kind: forms.Number, Required: true, Validate: positive("Amount")},
				{Name: "tag", Label: "Tag", Kind: forms.Text},
				{Name: "isPopular", Label: "Popular", Kind: forms.Switch},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("coin"),
						rec.Str("extraCoin"),
						cur.Format(rec.Float("amount")),
						rec.Str("tag"),
						view.YesNo(rec.Bool("isPopular")),
						view.YesNo(rec.Bool("isActive")),
					},
				}
			},
		},
		{
			Slug:     "levels",
			Title:    "Levels",
			Resource: backend.Resource{Name: "level", BasePath: "/admin/level"},
			AltKey:   "levels",
			Headers:  []string{"No", "Name", "Coins Required", "Created"},
			Fields: []forms.Field{
				{Name: "name", Label: "Name", Kind: forms.Text, Required: true},
				{Name: "coin", Label: "Coins Required", Kind: forms.Number, Required: true, Validate: positive("Coins Required")},
				{Name: "image", Label: "Badge Image", Kind: forms.File},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("name"),
						rec.Str("coin"),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
	}
}
