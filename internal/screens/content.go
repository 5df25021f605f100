package screens

import (
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

func contentScreens() []Screen {
	return []Screen{
		{
			Slug:     "banners",
			Title:    "Banners",
			Resource: backend.Resource{Name: "banner", BasePath: "/admin/banner"},
			AltKey:   "banners",
			Headers:  []string{"No", "Image", "Link", "Active", "Created"},
			Fields: []forms.Field{
				{Name: "image", Label: "Banner Image", Kind: forms.File, Required: true},
				{Name: "url", Label: "Target Link", Kind: forms.URL},
				{Name: "isActive", Label: "Active", Kind: forms.Switch, Default: true},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("image"),
						rec.Str("url"),
						view.YesNo(rec.Bool("isActive")),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
		{
			Slug:     "faqs",
			Title:    "FAQs",
			Resource: backend.Resource{Name: "faq", BasePath: "/admin/faq"},
			AltKey:   "faqs",
			Headers:  []string{"No", "Question", "Answer", "Created"},
			Fields: []forms.Field{
				{Name: "question", Label: "Question", Kind: forms.Text, Required: true},
				{Name: "answer", Label: "Answer", Kind: forms.Textarea, Required: true},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("question"),
						rec.Str("answer"),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
	}
}
