package table

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/regatta/internal/models"
)

func TestNormalizeColumns_ClearsInvalidAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cols := []models.Column{
		{Key: "club", Label: "Club", Sticky: "top", Responsive: "xxl", Width: "wide"},
		{Key: "fee", Label: "Fee", Sticky: models.StickyRight, Responsive: models.ResponsiveMedium, Width: "8"},
	}
	got := NormalizeColumns(cols, logger)

	assert.Equal(t, models.StickyNone, got[0].Sticky)
	assert.Equal(t, models.Responsive(""), got[0].Responsive)
	assert.Equal(t, "", got[0].Width)
	assert.Equal(t, cols[1], got[1])

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "invalid sticky value")

	// the input is left untouched
	assert.Equal(t, models.Sticky("top"), cols[0].Sticky)
}

func TestNormalizeColumns_MissingKeyIsKeptAndLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	got := NormalizeColumns([]models.Column{{Label: "Orphan"}}, logger)

	assert.Len(t, got, 1)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestVisibleColumns(t *testing.T) {
	cols := []models.Column{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "B", Responsive: models.ResponsiveMedium},
		{Key: "c", Label: "C", Responsive: models.ResponsiveLarge},
	}

	keys := func(cs []models.Column) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.Key)
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, keys(VisibleColumns(cols, 0)))
	assert.Equal(t, []string{"a"}, keys(VisibleColumns(cols, 80)))
	assert.Equal(t, []string{"a", "b"}, keys(VisibleColumns(cols, 100)))
	assert.Equal(t, []string{"a", "b", "c"}, keys(VisibleColumns(cols, 120)))
}

func TestSplitSticky(t *testing.T) {
	cols := []models.Column{
		{Key: "fee", Sticky: models.StickyRight},
		{Key: "boat", Sticky: models.StickyLeft},
		{Key: "club"},
		{Key: "crew"},
	}
	left, middle, right := SplitSticky(cols)

	assert.Equal(t, "boat", left[0].Key)
	assert.Len(t, middle, 2)
	assert.Equal(t, "club", middle[0].Key)
	assert.Equal(t, "fee", right[0].Key)
}
