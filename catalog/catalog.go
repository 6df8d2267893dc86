// Package catalog serves the restaurant's static reference data: opening
// hours, menu categories and menu items. The data ships with the binary and is
// never mutated at runtime.
package catalog

import (
	_ "embed"
	"fmt"

	"bistro-api/models"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

type fixture struct {
	Restaurant models.RestaurantInfo `yaml:"restaurant"`
	Categories []models.Category     `yaml:"categories"`
	Items      []models.MenuItem     `yaml:"items"`
}

type Catalog struct {
	restaurant models.RestaurantInfo
	categories []models.Category
	items      []models.MenuItem
	index      map[string]int
}

// Filter narrows Items. Zero values match everything.
type Filter struct {
	Category       string
	VegetarianOnly bool
	GlutenFreeOnly bool
	SpicyOnly      bool
}

// Load parses the embedded menu.
func Load() (*Catalog, error) {
	return Parse(defaultMenu)
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	categories := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		categories[c.ID] = true
	}

	c := &Catalog{
		restaurant: f.Restaurant,
		categories: f.Categories,
		items:      f.Items,
		index:      make(map[string]int, len(f.Items)),
	}
	for i, item := range f.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %d: missing id", i)
		}
		if _, dup := c.index[item.ID]; dup {
			return nil, fmt.Errorf("catalog item %q: duplicate id", item.ID)
		}
		if !item.Price.IsPositive() {
			return nil, fmt.Errorf("catalog item %q: price must be positive", item.ID)
		}
		if len(categories) > 0 && !categories[item.Category] {
			return nil, fmt.Errorf("catalog item %q: unknown category %q", item.ID, item.Category)
		}
		c.index[item.ID] = i
	}
	return c, nil
}

func (c *Catalog) Restaurant() models.RestaurantInfo { return c.restaurant }

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Item looks up a menu item by id.
func (c *Catalog) Item(id string) (models.MenuItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.MenuItem{}, false
	}
	return c.items[i], true
}

// Items returns the menu in catalog order.
func (c *Catalog) Items(f Filter) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(c.items))
	for _, item := range c.items {
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if f.VegetarianOnly && !item.IsVegetarian {
			continue
		}
		if f.GlutenFreeOnly && !item.IsGlutenFree {
			continue
		}
		if f.SpicyOnly && !item.IsSpicy {
			continue
		}
		out = append(out, item)
	}
	return out
}
