package backend

import (
	"context"
	"net/url"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
)

// Order status values the console can set. The backend owns the transition
// rules; the console only forwards the requested status.
const (
	OrderPending   = "Pending"
	OrderConfirmed = "Confirmed"
	OrderShipped   = "Out Of Delivery"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

type OrderService struct {
	*Service
}

func NewOrderService(c *api.Client) *OrderService {
	return &OrderService{Service: NewService(c, Resource{
		Name:       "order",
		BasePath:   "/admin/order",
		ListAction: "getAllOrders",
	})}
}

// ListByStatus pages orders filtered to one status tab.
func (s *OrderService) ListByStatus(ctx context.Context, status string, start, limit int) (*api.Envelope, error) {
	extra := url.Values{}
	if status != "" {
		extra.Set("status", status)
	}
	return s.List(ctx, start, limit, extra)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*api.Envelope, error) {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("status", status)
	return s.api.PatchJSON(ctx, "/admin/order/updateStatus", q, nil)
}
