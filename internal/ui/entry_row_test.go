package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/eggplanters/app-store/internal/model"
)

func TestEntryRow_Labels(t *testing.T) {
	test.NewApp()

	row := NewEntryRow(4, model.AppEntry{Title: "Pocket\nLedger", Genre: "Finance", Publisher: "Brightline Labs"})

	assert.Equal(t, 4, row.Index())
	assert.Equal(t, "Pocket Ledger", row.titleLabel.Text)
	assert.Equal(t, "Finance · Brightline Labs", row.subtitleLabel.Text)
	assert.False(t, row.Selected())
}

func TestEntryRow_TapRaisesSelection(t *testing.T) {
	test.NewApp()

	row := NewEntryRow(2, model.AppEntry{Title: "Trailhead"})
	var got []int
	row.SetOnSelected(func(index int) {
		got = append(got, index)
	})

	test.Tap(row)
	test.Tap(row)
	assert.Equal(t, []int{2, 2}, got)

	// Tapping does not select by itself; the owner decides
	assert.False(t, row.Selected())
}

func TestEntryRow_TapWithoutCallback(t *testing.T) {
	test.NewApp()

	row := NewEntryRow(0, model.AppEntry{Title: "Beat Loop"})
	assert.NotPanics(t, func() {
		test.Tap(row)
	})
}

func TestEntryRow_SetSelected(t *testing.T) {
	test.NewApp()

	row := NewEntryRow(0, model.AppEntry{Title: "Focus Garden"})
	assert.Equal(t, theme.Color(theme.ColorNameButton), row.background.FillColor)

	row.SetSelected(true)
	assert.True(t, row.Selected())
	assert.Equal(t, widget.HighImportance, row.titleLabel.Importance)
	assert.Equal(t, theme.Color(theme.ColorNameSelection), row.background.FillColor)
	assert.Equal(t, theme.Color(theme.ColorNamePrimary), row.background.StrokeColor)

	row.SetSelected(false)
	assert.False(t, row.Selected())
	assert.Equal(t, widget.MediumImportance, row.titleLabel.Importance)
	assert.Equal(t, theme.Color(theme.ColorNameButton), row.background.FillColor)
}

func TestEntryRow_MinHeight(t *testing.T) {
	test.NewApp()

	row := NewEntryRow(0, model.AppEntry{Title: "Pixel Chef"})
	assert.GreaterOrEqual(t, row.MinSize().Height, RowMinHeight)
}

func TestEntryRow_Hover(t *testing.T) {
	test.NewApp()

	row := NewEntryRow(0, model.AppEntry{Title: "Night Owl Reader"})
	row.MouseIn(nil)
	assert.Equal(t, theme.Color(theme.ColorNameHover), row.background.FillColor)

	// Selection wins over hover
	row.SetSelected(true)
	assert.Equal(t, theme.Color(theme.ColorNameSelection), row.background.FillColor)

	row.SetSelected(false)
	row.MouseOut()
	assert.Equal(t, theme.Color(theme.ColorNameButton), row.background.FillColor)
}
