package models

// MenuItem represents a dish or drink offered on the menu
type MenuItem struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Price       int    `json:"price" yaml:"price"`
	IsVeg       bool   `json:"isVeg" yaml:"veg"`
}

// MenuCategory groups menu items under a navigation heading.
// Item order is display order.
type MenuCategory struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Items []MenuItem `json:"items" yaml:"items"`
}

// Len returns the number of items in the category
func (c MenuCategory) Len() int {
	return len(c.Items)
}

// Catalog is the full menu of the restaurant.
// It is loaded once and never mutated afterwards.
type Catalog struct {
	Name       string         `json:"name" yaml:"name"`
	Tagline    string         `json:"tagline" yaml:"tagline"`
	Footer     string         `json:"footer,omitempty" yaml:"footer"`
	Categories []MenuCategory `json:"categories" yaml:"categories"`
}

// Category returns the category with the given id
func (c *Catalog) Category(id string) (MenuCategory, bool) {
	for _, category := range c.Categories {
		if category.ID == id {
			return category, true
		}
	}
	return MenuCategory{}, false
}

// Item returns the item with the given id from any category
func (c *Catalog) Item(id string) (MenuItem, bool) {
	for _, category := range c.Categories {
		for _, item := range category.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// CategoryIDs returns category ids in display order
func (c *Catalog) CategoryIDs() []string {
	ids := make([]string, len(c.Categories))
	for i, category := range c.Categories {
		ids[i] = category.ID
	}
	return ids
}

// ItemCount returns the total number of items across all categories
func (c *Catalog) ItemCount() int {
	total := 0
	for _, category := range c.Categories {
		total += category.Len()
	}
	return total
}
