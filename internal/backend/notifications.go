package backend

import (
	"context"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
)

// Broadcast audiences.
const (
	AudienceUsers   = "user"
	AudienceHosts   = "host"
	AudienceSellers = "seller"
)

type NotificationService struct {
	*Service
}

func NewNotificationService(c *api.Client) *NotificationService {
	return &NotificationService{Service: NewService(c, Resource{
		Name:     "notification",
		BasePath: "/admin/notification",
	})}
}

type BroadcastInput struct {
	Audience string `json:"type"`
	Title    string `json:"title"`
	Body     string `json:"message"`
	ImageURL string `json:"image,omitempty"`
}

// Broadcast pushes an announcement to every account of one audience. The
// image, when present, is a staged upload URL.
func (s *NotificationService) Broadcast(ctx context.Context, in BroadcastInput) (*api.Envelope, error) {
	return s.api.PostJSON(ctx, "/admin/notification/send", nil, in)
}
