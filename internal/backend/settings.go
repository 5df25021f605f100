package backend

import (
	"context"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
	"github.com/codestorhub-123/TrendyCart-Admin-sub001/pkg/view"
)

// SettingService covers the singleton settings document.
type SettingService struct {
	api *api.Client
}

func NewSettingService(c *api.Client) *SettingService {
	return &SettingService{api: c}
}

func (s *SettingService) Get(ctx context.Context) (view.Record, *api.Envelope, error) {
	env, err := s.api.Get(ctx, "/admin/setting", nil)
	if err != nil {
		return nil, nil, err
	}
	if !env.Success {
		return nil, env, nil
	}
	var rec view.Record
	if derr := env.DecodeData(&rec); derr != nil {
		if derr = env.DecodeKey("setting", &rec); derr != nil {
			return nil, api.Failure("setting response carries no data"), nil
		}
	}
	return rec, env, nil
}

func (s *SettingService) Update(ctx context.Context, settingID string, values map[string]any) (*api.Envelope, error) {
	q := queryWith("settingId", settingID)
	return s.api.PatchJSON(ctx, "/admin/setting/update", q, values)
}

// ToggleSwitch flips one boolean setting (maintenance mode, payment gateway
// flags) by key.
func (s *SettingService) ToggleSwitch(ctx context.Context, settingID, key string) (*api.Envelope, error) {
	q := queryWith("settingId", settingID)
	q.Set("type", key)
	return s.api.PatchJSON(ctx, "/admin/setting/handleSwitch", q, nil)
}
