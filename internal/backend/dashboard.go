package backend

import (
	"context"
	"net/url"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

type DashboardService struct {
	api *api.Client
}

func NewDashboardService(c *api.Client) *DashboardService {
	return &DashboardService{api: c}
}

// Stats fetches the date-ranged analytics block (user/order/revenue counts
// plus chart series). Dates are "YYYY-MM-DD" or "All".
func (s *DashboardService) Stats(ctx context.Context, startDate, endDate string) (view.Record, *api.Envelope, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	env, err := s.api.Get(ctx, "/admin/dashboard/count", q)
	if err != nil {
		return nil, nil, err
	}
	if !env.Success {
		return nil, env, nil
	}

	var stats view.Record
	if derr := env.DecodeData(&stats); derr != nil {
		return nil, api.Failure("dashboard response carries no data"), nil
	}
	return stats, env, nil
}
