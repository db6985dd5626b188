package rowmap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/rowmap"
)

func TestMissingColumnError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := rowmap.NewMissingColumnError("email", []string{"id", "name"})
		assert.Equal(t, `rowmap: column "email" not found in dataset. Available columns are: [id, name]`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := rowmap.NewMissingColumnError("email", nil)
		assert.True(t, errors.Is(err, rowmap.ErrMissingColumn))
	})

	t.Run("IsMissingColumn", func(t *testing.T) {
		err := rowmap.NewMissingColumnError("email", nil)
		assert.True(t, rowmap.IsMissingColumn(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, rowmap.IsMissingColumn(wrapped))

		// Sentinel error
		assert.True(t, rowmap.IsMissingColumn(rowmap.ErrMissingColumn))

		// Non-matching error
		assert.False(t, rowmap.IsMissingColumn(errors.New("other error")))
		assert.False(t, rowmap.IsMissingColumn(nil))
	})
}

func TestConversionError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := rowmap.NewConversionError("age", errors.New("invalid integer"))
		assert.Equal(t, `rowmap: column "age": invalid integer`, err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := errors.New("invalid integer")
		err := rowmap.NewConversionError("age", cause)
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("Is", func(t *testing.T) {
		err := rowmap.NewConversionError("age", errors.New("boom"))
		assert.True(t, errors.Is(err, rowmap.ErrConversion))
	})

	t.Run("IsConversion", func(t *testing.T) {
		err := rowmap.NewConversionError("age", errors.New("boom"))
		assert.True(t, rowmap.IsConversion(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, rowmap.IsConversion(wrapped))

		// Non-matching error
		assert.False(t, rowmap.IsConversion(errors.New("other error")))
		assert.False(t, rowmap.IsConversion(nil))
	})
}

func TestRowColumns(t *testing.T) {
	row := rowmap.Row{"b": 1, "a": 2, "c": nil}
	assert.Equal(t, []string{"a", "b", "c"}, row.Columns())
	assert.True(t, row.Has("c"))
	assert.False(t, row.Has("d"))
	assert.Empty(t, rowmap.Row{}.Columns())
}
