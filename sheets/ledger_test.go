package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeColumn struct {
	rows [][]interface{}
	err  error
}

func (f fakeColumn) ReadColumn(ctx context.Context, readRange string) ([][]interface{}, error) {
	return f.rows, f.err
}

func TestHasSubmitted(t *testing.T) {
	ledger := func(names ...string) Ledger {
		rows := make([][]interface{}, 0, len(names))
		for _, n := range names {
			rows = append(rows, []interface{}{n})
		}
		return Ledger{Reader: fakeColumn{rows: rows}, NameRange: "Sheet1!B:B"}
	}

	t.Run("name present", func(t *testing.T) {
		got, err := ledger("Name", "Alice", "Bob").HasSubmitted(context.Background(), "Alice")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("name absent", func(t *testing.T) {
		got, err := ledger("Name", "Alice").HasSubmitted(context.Background(), "Bob")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("matching is exact, no case folding", func(t *testing.T) {
		got, err := ledger("alice").HasSubmitted(context.Background(), "Alice")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("empty sheet", func(t *testing.T) {
		got, err := ledger().HasSubmitted(context.Background(), "Alice")
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("blank rows are skipped", func(t *testing.T) {
		l := Ledger{
			Reader:    fakeColumn{rows: [][]interface{}{{}, {"Alice"}}},
			NameRange: "Sheet1!B:B",
		}
		got, err := l.HasSubmitted(context.Background(), "Alice")
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		l := Ledger{
			Reader:    fakeColumn{err: errors.New("quota exceeded")},
			NameRange: "Sheet1!B:B",
		}
		_, err := l.HasSubmitted(context.Background(), "Alice")
		assert.Error(t, err)
	})
}
