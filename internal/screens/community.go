package screens

import (
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

func communityScreens(cur *currency.Store) []Screen {
	hostFields := []forms.Field{
		{Name: "name", Label: "Name", Kind: forms.Text, Required: true},
		{Name: "username", Label: "Username", Kind: forms.Text, Required: true},
		{Name: "bio", Label: "Bio", Kind: forms.Textarea},
		{Name: "agencyCode", Label: "Agency Code", Kind: forms.Text},
		{Name: "image", Label: "Profile Image", Kind: forms.File, Required: true},
		{Name: "isLive", Label: "Live", Kind: forms.Switch},
	}

	hostRow := func(rec view.Record, abs, _ int) view.Row {
		return view.Row{
			ID: rec.ID(),
			Cells: []string{
				view.IndexCell(abs),
				rec.Str("name"),
				rec.Str("username"),
				rec.Str("coin"),
				view.YesNo(rec.Bool("isLive")),
				view.YesNo(!rec.Bool("isBlock")),
			},
		}
	}
	hostHeaders := []string{"No", "Name", "Username", "Coins", "Live", "Active"}

	return []Screen{
		{
			Slug:     "users",
			Title:    "Users",
			Resource: backend.Resource{Name: "user", BasePath: "/admin/user"},
			AltKey:   "users",
			Headers:  []string{"No", "Name", "Username", "Email", "Coins", "Spent", "Active", "Joined"},
			// users register themselves; the console only blocks/edits
			Fields: []forms.Field{
				{Name: "name", Label: "Name", Kind: forms.Text, Required: true},
				{Name: "username", Label: "Username", Kind: forms.Text, Required: true},
				{Name: "email", Label: "Email", Kind: forms.Text, Required: true},
				{Name: "isBlock", Label: "Blocked", Kind: forms.Switch},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("name"),
						rec.Str("username"),
						rec.Str("email"),
						rec.Str("coin"),
						cur.Format(rec.Float("spentAmount")),
						view.YesNo(!rec.Bool("isBlock")),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
		{
			Slug:     "hosts",
			Title:    "Hosts",
			Resource: backend.Resource{Name: "host", BasePath: "/admin/host"},
			AltKey:   "hosts",
			RoleType: "real",
			Headers:  hostHeaders,
			Fields:   hostFields,
			Row:      hostRow,
		},
		{
			Slug:     "fake-hosts",
			Title:    "Fake Hosts",
			Resource: backend.Resource{Name: "host", BasePath: "/admin/host"},
			AltKey:   "hosts",
			RoleType: "fake",
			Headers:  hostHeaders,
			Fields: append([]forms.Field{
				{Name: "video", Label: "Loop Video URL", Kind: forms.URL},
			}, hostFields...),
			Row: hostRow,
		},
		{
			Slug:     "reels",
			Title:    "Reels",
			Resource: backend.Resource{Name: "reel", BasePath: "/admin/reel"},
			AltKey:   "reels",
			Headers:  []string{"No", "Host", "Caption", "Likes", "Comments", "Posted"},
			// read-only: reels are posted from the app, the console only
			// reviews and deletes
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID: rec.ID(),
					Cells: []string{
						view.IndexCell(abs),
						rec.Str("hostName"),
						rec.Str("caption"),
						rec.Str("totalLikes"),
						rec.Str("totalComments"),
						view.DateCell(rec, "createdAt"),
					},
				}
			},
		},
		{
			Slug:     "report-reasons",
			Title:    "Report Reasons",
			Resource: backend.Resource{Name: "reportReason", BasePath: "/admin/reportReason", IDParam: "reportReasonId"},
			AltKey:   "reportReasons",
			Headers:  []string{"No", "Title", "Created"},
			Fields: []forms.Field{
				{Name: "title", Label: "Title", Kind: forms.Text, Required: true},
			},
			Row: func(rec view.Record, abs, _ int) view.Row {
				return view.Row{
					ID:    rec.ID(),
					Cells: []string{view.IndexCell(abs), rec.Str("title"), view.DateCell(rec, "createdAt")},
				}
			},
		},
	}
}
