// Package nav loads the sidebar menu tree. The tree is declarative YAML so
// rearranging the console needs no recompile; an embedded copy serves as the
// default when no override file is configured.
package nav

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var embeddedMenu []byte

type Item struct {
	Title    string `yaml:"title" json:"title"`
	Icon     string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Route    string `yaml:"route,omitempty" json:"route,omitempty"`
	Children []Item `yaml:"children,omitempty" json:"children,omitempty"`
}

type Menu struct {
	Items []Item `yaml:"menu" json:"menu"`
}

// Load parses the menu from file when a path is given, else the embedded
// default.
func Load(path string) (Menu, error) {
	raw := embeddedMenu
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Menu{}, fmt.Errorf("nav: read %s: %w", path, err)
		}
		raw = b
	}

	var m Menu
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Menu{}, fmt.Errorf("nav: parse menu: %w", err)
	}
	if len(m.Items) == 0 {
		return Menu{}, fmt.Errorf("nav: menu is empty")
	}
	return m, nil
}

// Localized returns a copy with every route prefixed by the locale segment.
func (m Menu) Localized(locale string) Menu {
	return Menu{Items: localizeItems(m.Items, "/"+locale)}
}

func localizeItems(items []Item, prefix string) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it
		if it.Route != "" {
			out[i].Route = prefix + it.Route
		}
		if len(it.Children) > 0 {
			out[i].Children = localizeItems(it.Children, prefix)
		}
	}
	return out
}
