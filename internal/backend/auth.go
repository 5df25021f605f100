package backend

import (
	"context"
	"encoding/json"

	"github.com/codestorhub-123/TrendyCart-Admin-sub001/internal/api"
)

type AuthService struct {
	api *api.Client
}

func NewAuthService(c *api.Client) *AuthService {
	return &AuthService{api: c}
}

type LoginResult struct {
	Token string          `json:"token"`
	Admin json.RawMessage `json:"admin"`
}

// Login exchanges credentials for a bearer token and the admin profile blob.
// A business rejection comes back in the envelope; ok=false with Message set.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, *api.Envelope, error) {
	env, err := s.api.PostJSON(ctx, "/admin/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, nil, err
	}
	if !env.Success {
		return LoginResult{}, env, nil
	}

	var res LoginResult
	if derr := env.DecodeData(&res); derr != nil || res.Token == "" {
		return LoginResult{}, api.Failure("login response carries no token"), nil
	}
	return res, env, nil
}
