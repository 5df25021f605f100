package middleware

import "testing"

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/en/admin/dashboard", "en"},
		{"/tr/login", "tr"},
		{"/admin/dashboard", "en"},
		{"/", "en"},
		{"", "en"},
		{"/xyz/admin", "en"},
		{"/de", "de"},
	}
	for _, tt := range tests {
		if got := DetectLocale(tt.path); got != tt.want {
			t.Errorf("DetectLocale(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoginRoute(t *testing.T) {
	if got := LoginRoute("tr"); got != "/tr/login" {
		t.Errorf("LoginRoute = %q", got)
	}
}
