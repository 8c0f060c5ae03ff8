package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Saffron Kitchen", c.Name)
	assert.Equal(t, "Authentic Flavors, Timeless Traditions", c.Tagline)
	assert.Equal(t, []string{"starters", "main-course", "beverages", "desserts"}, c.CategoryIDs())
	assert.Equal(t, 24, c.ItemCount())

	item, ok := c.Item("m1")
	require.True(t, ok)
	assert.Equal(t, "Butter Chicken", item.Name)
	assert.Equal(t, 380, item.Price)
	assert.False(t, item.IsVeg)

	lime, ok := c.Item("b4")
	require.True(t, ok)
	assert.Equal(t, "Zesty lime with soda, salt or sweet", lime.Description)
}

func TestDefault_LoadedOnce(t *testing.T) {
	first, err := Default()
	require.NoError(t, err)
	second, err := Default()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "no categories",
			doc:  "name: Empty\ncategories: []\n",
		},
		{
			name: "duplicate category",
			doc: `categories:
  - {id: a, name: A}
  - {id: a, name: B}
`,
		},
		{
			name: "duplicate item across categories",
			doc: `categories:
  - id: a
    name: A
    items: [{id: x, name: X, price: 1}]
  - id: b
    name: B
    items: [{id: x, name: Y, price: 2}]
`,
		},
		{
			name: "negative price",
			doc: `categories:
  - id: a
    name: A
    items: [{id: x, name: X, price: -5}]
`,
		},
		{
			name: "missing item id",
			doc: `categories:
  - id: a
    name: A
    items: [{name: X, price: 5}]
`,
		},
		{
			name: "unknown field",
			doc:  "categories:\n  - {id: a, name: A, colour: red}\n",
		},
		{
			name: "malformed yaml",
			doc:  "categories: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	doc := `name: Test Diner
categories:
  - id: snacks
    name: Snacks
    items:
      - {id: c1, name: Chips, description: Salted, price: 50, veg: true}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Diner", c.Name)
	assert.Equal(t, 1, c.ItemCount())

	def, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Saffron Kitchen", def.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
