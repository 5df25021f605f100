package nav

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Items) == 0 {
		t.Fatal("embedded menu is empty")
	}

	var sawDashboard bool
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, it := range items {
			if it.Route == "/admin/dashboard" {
				sawDashboard = true
			}
			walk(it.Children)
		}
	}
	walk(m.Items)
	if !sawDashboard {
		t.Error("embedded menu carries no /admin/dashboard entry")
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	yaml := `menu:
  - title: Home
    route: /admin/dashboard
  - title: Catalog
    children:
      - title: Products
        route: /admin/products
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Items) != 2 || m.Items[1].Children[0].Title != "Products" {
		t.Errorf("menu = %+v", m)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("menu: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); err == nil {
		t.Error("Load succeeded on an empty menu")
	}
}

func TestLocalizedPrefixesRoutes(t *testing.T) {
	m := Menu{Items: []Item{
		{Title: "Home", Route: "/admin/dashboard"},
		{Title: "Catalog", Children: []Item{
			{Title: "Products", Route: "/admin/products"},
		}},
	}}

	loc := m.Localized("tr")
	if loc.Items[0].Route != "/tr/admin/dashboard" {
		t.Errorf("route = %q", loc.Items[0].Route)
	}
	if loc.Items[1].Route != "" {
		t.Errorf("group route = %q, want empty untouched", loc.Items[1].Route)
	}
	if loc.Items[1].Children[0].Route != "/tr/admin/products" {
		t.Errorf("child route = %q", loc.Items[1].Children[0].Route)
	}

	// the original is untouched
	if strings.HasPrefix(m.Items[0].Route, "/tr") {
		t.Error("Localized mutated the source menu")
	}
}
