package backend

import (
	"context"
	"net/url"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
)

type WithdrawalService struct {
	*Service
}

func NewWithdrawalService(c *api.Client) *WithdrawalService {
	return &WithdrawalService{Service: NewService(c, Resource{
		Name:       "withdrawal",
		BasePath:   "/admin/withdrawRequest",
		ListAction: "getWithdrawRequest",
		IDParam:    "requestId",
	})}
}

// ListByState pages withdrawal requests for one tab: pending|accepted|declined.
func (s *WithdrawalService) ListByState(ctx context.Context, state, person string, start, limit int) (*api.Envelope, error) {
	extra := url.Values{}
	extra.Set("type", state)
	if person != "" {
		extra.Set("person", person) // host or seller payout
	}
	return s.List(ctx, start, limit, extra)
}

func (s *WithdrawalService) Accept(ctx context.Context, requestID string) (*api.Envelope, error) {
	q := url.Values{}
	q.Set("requestId", requestID)
	return s.api.PatchJSON(ctx, "/admin/withdrawRequest/acceptWithdrawalRequest", q, nil)
}

func (s *WithdrawalService) Decline(ctx context.Context, requestID, reason string) (*api.Envelope, error) {
	q := url.Values{}
	q.Set("requestId", requestID)
	return s.api.PatchJSON(ctx, "/admin/withdrawRequest/declineWithdrawalRequest", q, map[string]string{
		"reason": reason,
	})
}
