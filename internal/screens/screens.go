// Package screens is the entity catalog: one declarative record per back
// office screen, wiring a resource descriptor, form fields, table headers
// and a row renderer. The generic screen handler serves everything listed
// here; only screens with bespoke actions (orders, withdrawals, settings,
// currencies, notifications, dashboard) have their own handlers.
package screens

import (
	"strconv"
	"strings"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/backend"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/currency"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/forms"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/lists"
)

type Screen struct {
	Slug     string
	Title    string
	Resource backend.Resource
	// AltKey is the entity-named list key some endpoints use instead of
	// `data`.
	AltKey string
	// RoleType scopes list fetches for sub-type screens (real vs fake
	// sellers and hosts).
	RoleType string
	// IdentifierParam, when set, scopes the list to one subject (a user's
	// orders, a host's reels).
	IdentifierParam string
	PageSize        int

	Headers []string
	// Fields is nil for read-only screens (zero dialogs).
	Fields []forms.Field
	Row    lists.RowFunc
}

// All assembles the registry. Row renderers close over the currency store
// for money cells.
func All(cur *currency.Store) []Screen {
	var out []Screen
	out = append(out, commerceScreens(cur)...)
	out = append(out, communityScreens(cur)...)
	out = append(out, monetizationScreens(cur)...)
	out = append(out, contentScreens()...)
	return out
}

func Lookup(all []Screen, slug string) (Screen, bool) {
	for _, s := range all {
		if s.Slug == slug {
			return s, true
		}
	}
	return Screen{}, false
}

func positive(label string) func(any) string {
	msg := label + " must be a positive number"
	return func(v any) string {
		switch t := v.(type) {
		case string:
			n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
			if err != nil || n <= 0 {
				return msg
			}
		case float64:
			if t <= 0 {
				return msg
			}
		case int:
			if t <= 0 {
				return msg
			}
		default:
			return msg
		}
		return ""
	}
}
