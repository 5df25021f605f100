package backend

import (
	"context"
	"net/url"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
)

type CurrencyService struct {
	*Service
}

func NewCurrencyService(c *api.Client) *CurrencyService {
	return &CurrencyService{Service: NewService(c, Resource{
		Name:     "currency",
		BasePath: "/admin/currency",
	})}
}

type Currency struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Code      string `json:"currencyCode"`
	IsDefault bool   `json:"isDefault"`
}

// Default fetches the platform's default display currency; the console seeds
// its currency store from this at startup.
func (s *CurrencyService) Default(ctx context.Context) (Currency, *api.Envelope, error) {
	env, err := s.api.Get(ctx, "/admin/currency/getDefault", nil)
	if err != nil {
		return Currency{}, nil, err
	}
	if !env.Success {
		return Currency{}, env, nil
	}
	var cur Currency
	if derr := env.DecodeData(&cur); derr != nil {
		if derr = env.DecodeKey("currency", &cur); derr != nil {
			return Currency{}, api.Failure("currency response carries no data"), nil
		}
	}
	return cur, env, nil
}

func (s *CurrencyService) SetDefault(ctx context.Context, currencyID string) (*api.Envelope, error) {
	q := url.Values{}
	q.Set("currencyId", currencyID)
	return s.api.PatchJSON(ctx, "/admin/currency/setDefault", q, nil)
}

func queryWith(key, value string) url.Values {
	q := url.Values{}
	q.Set(key, value)
	return q
}
