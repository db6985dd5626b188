package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/rowmap"
	"github.com/syssam/rowmap/resource"
)

func TestParse(t *testing.T) {
	r, err := resource.Parse([]byte(`
name: books
fields:
  - column: Name
  - column: CategoryID
  - column: Pages
    attribute: pages
    readonly: true
  - column: Publisher
    attribute: publisher
    default: unknown
  - column: Note
    attribute: note
    no_default: true
`))
	require.NoError(t, err)
	assert.Equal(t, "books", r.Name())
	assert.Equal(t, []string{"Name", "CategoryID", "Pages", "Publisher", "Note"}, r.Headers())

	fields := r.Fields()
	require.Len(t, fields, 5)

	// Omitted attributes are derived by underscore inflection.
	assert.Equal(t, "name", fields[0].AttributePath())
	assert.Equal(t, "category_id", fields[1].AttributePath())
	assert.Equal(t, "pages", fields[2].AttributePath())
	assert.True(t, fields[2].IsReadOnly())
	assert.False(t, fields[0].IsReadOnly())

	// Declared default applies to empty cells.
	v, err := fields[3].Clean(rowmap.Row{"Publisher": ""})
	require.NoError(t, err)
	assert.Equal(t, "unknown", v)

	// no_default keeps empty cells as-is.
	v, err = fields[4].Clean(rowmap.Row{"Note": ""})
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestParseErrors(t *testing.T) {
	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := resource.Parse([]byte("fields: ["))
		assert.ErrorContains(t, err, "parse mapping")
	})

	t.Run("MissingColumn", func(t *testing.T) {
		_, err := resource.Parse([]byte(`
name: books
fields:
  - attribute: name
`))
		assert.ErrorContains(t, err, "missing column")
		assert.ErrorContains(t, err, "field 0")
	})
}

func TestConfigBuild(t *testing.T) {
	cfg := resource.Config{
		Name: "users",
		Fields: []resource.FieldConfig{
			{Column: "Email", Attribute: "email"},
			{Column: "Group", Attribute: "group__name", ReadOnly: true},
		},
	}
	r, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"Email", "Group"}, r.Headers())
	assert.Equal(t, "group__name", r.Fields()[1].AttributePath())
}
