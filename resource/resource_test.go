package resource_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/rowmap"
	"github.com/syssam/rowmap/field"
	"github.com/syssam/rowmap/object"
	"github.com/syssam/rowmap/resource"
)

type Book struct {
	Name       string
	Pages      int
	CategoryID int64
}

var bookKinds = map[string]object.Kind{
	"category": object.KindRelation,
}

func bookResource() *resource.Resource {
	return resource.New("books",
		field.New("Name").Attribute("name"),
		field.New("Pages").Attribute("pages"),
		field.New("cat").Attribute("category"),
	)
}

func TestHeaders(t *testing.T) {
	r := bookResource()
	assert.Equal(t, "books", r.Name())
	assert.Equal(t, []string{"Name", "Pages", "cat"}, r.Headers())
	assert.Len(t, r.Fields(), 3)
}

func TestExportRow(t *testing.T) {
	r := bookResource()
	book := object.NewStruct(&Book{Name: "Dune", Pages: 412, CategoryID: 5}, bookKinds)

	cells, err := r.ExportRow(book)
	require.NoError(t, err)
	// The relational column carries the raw identifier.
	assert.Equal(t, []any{"Dune", "412", int64(5)}, cells)
}

func TestImportRow(t *testing.T) {
	r := resource.New("books",
		field.New("Name").Attribute("name"),
		field.New("Pages").Attribute("pages").ReadOnly(),
	)
	book := &Book{Pages: 100}
	require.NoError(t, r.ImportRow(book, rowmap.Row{"Name": "Dune", "Pages": 999}))
	assert.Equal(t, "Dune", book.Name)
	assert.Equal(t, 100, book.Pages)
}

func TestImportRowError(t *testing.T) {
	r := resource.New("books", field.New("Name").Attribute("name"))
	err := r.ImportRow(&Book{}, rowmap.Row{"Other": "x"})
	require.Error(t, err)
	assert.True(t, rowmap.IsMissingColumn(err))
	assert.ErrorContains(t, err, "books")
}

// Exporting a record scanned out of a database is the common shape of
// an export pass; the resource never touches the database itself.
func TestExportScannedRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, pages, category_id FROM books").
		WillReturnRows(sqlmock.NewRows([]string{"name", "pages", "category_id"}).
			AddRow("Dune", 412, 5))

	var book Book
	row := db.QueryRow("SELECT name, pages, category_id FROM books WHERE id = 1")
	require.NoError(t, row.Scan(&book.Name, &book.Pages, &book.CategoryID))

	cells, err := bookResource().ExportRow(object.NewStruct(&book, bookKinds))
	require.NoError(t, err)
	assert.Equal(t, []any{"Dune", "412", int64(5)}, cells)
	require.NoError(t, mock.ExpectationsWereMet())
}
