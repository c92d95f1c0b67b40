package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// row builds a summary-range row: driver type at E, choice at M, follow-up at N.
func row(driverType, choice, followUp string) []interface{} {
	r := []interface{}{driverType, "<1m", "42", "2020-01-01", "", "Roles", "Not boosting", "2020-01-01", choice}
	if followUp != "" {
		r = append(r, followUp)
	}
	return r
}

func TestCompute(t *testing.T) {
	t.Run("tallies by driver type and choice", func(t *testing.T) {
		rows := [][]interface{}{
			row("FT", "Stay FT", ""),
			row("FT", "Stay FT", ""),
			row("FT", "Move to Reserve", ""),
			row("FT", "Leaving TTRL", ""),
			row("Reserve", "Wants FT seat", "Stay Reserve if no seat"),
			row("Reserve", "Wants FT seat", "Leave if no seat"),
			row("Reserve", "Stay Reserve", ""),
			row("Reserve", "Leaving TTRL", ""),
		}

		c := Compute(rows)
		assert.Equal(t, 8, c.Total)
		assert.Equal(t, 2, c.FTStay)
		assert.Equal(t, 1, c.FTReserve)
		assert.Equal(t, 1, c.FTLeave)
		assert.Equal(t, 2, c.ResWantsFT)
		assert.Equal(t, 1, c.WantsFTFallbackStay)
		assert.Equal(t, 1, c.WantsFTFallbackLeave)
		assert.Equal(t, 1, c.ResStay)
		assert.Equal(t, 1, c.ResLeave)
	})

	t.Run("skips the header row", func(t *testing.T) {
		rows := [][]interface{}{
			{"Driver Type"},
			row("FT", "Stay FT", ""),
		}
		c := Compute(rows)
		assert.Equal(t, 1, c.Total)
		assert.Equal(t, 1, c.FTStay)
	})

	t.Run("skips incomplete rows", func(t *testing.T) {
		rows := [][]interface{}{
			{"FT"},
			{"", "<1m"},
			row("FT", "Stay FT", ""),
		}
		c := Compute(rows)
		assert.Equal(t, 1, c.Total)
	})

	t.Run("empty sheet", func(t *testing.T) {
		assert.Equal(t, Counts{}, Compute(nil))
	})
}

func TestRender(t *testing.T) {
	text := Render(Counts{Total: 3, FTStay: 1, ResWantsFT: 2, WantsFTFallbackStay: 1, WantsFTFallbackLeave: 1})

	assert.True(t, strings.HasPrefix(text, Marker))
	assert.Contains(t, text, "Total responses: 3")
	assert.Contains(t, text, "Stay FT: 1")
	assert.Contains(t, text, "Wants FT seat: 2")
	assert.Contains(t, text, "would stay Reserve: 1")
	assert.Contains(t, text, "would leave: 1")
}

func TestRenderOmitsFollowUpBreakdownWhenAbsent(t *testing.T) {
	text := Render(Counts{Total: 1, ResWantsFT: 1})
	assert.NotContains(t, text, "would stay Reserve")
}

func TestRenderIdempotent(t *testing.T) {
	rows := [][]interface{}{
		row("FT", "Stay FT", ""),
		row("Reserve", "Leaving TTRL", ""),
	}
	first := Render(Compute(rows))
	second := Render(Compute(rows))
	assert.Equal(t, first, second)
}
