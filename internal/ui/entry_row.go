package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/eggplanters/app-store/internal/model"
)

// EntryRow is a tappable list item for one catalog entry
type EntryRow struct {
	widget.BaseWidget

	entry    model.AppEntry
	index    int
	selected bool
	hovered  bool

	// UI components
	background    *canvas.Rectangle
	titleLabel    *widget.Label
	subtitleLabel *widget.Label

	onSelected func(index int)
}

var (
	_ fyne.Tappable      = (*EntryRow)(nil)
	_ desktop.Hoverable  = (*EntryRow)(nil)
	_ desktop.Cursorable = (*EntryRow)(nil)
)

// NewEntryRow creates a row for the entry at index in the catalog
func NewEntryRow(index int, entry model.AppEntry) *EntryRow {
	r := &EntryRow{
		entry: entry,
		index: index,
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	return r
}

// SetOnSelected sets the callback raised when the row is tapped
func (r *EntryRow) SetOnSelected(onSelected func(index int)) {
	r.onSelected = onSelected
}

// Entry returns the entry shown by the row
func (r *EntryRow) Entry() model.AppEntry {
	return r.entry
}

// Index returns the row's position in the catalog
func (r *EntryRow) Index() int {
	return r.index
}

// Selected reports whether the row is marked selected
func (r *EntryRow) Selected() bool {
	return r.selected
}

// SetSelected marks or unmarks the row
func (r *EntryRow) SetSelected(selected bool) {
	if r.selected == selected {
		return
	}
	r.selected = selected
	r.titleLabel.Importance = widget.MediumImportance
	if selected {
		r.titleLabel.Importance = widget.HighImportance
	}
	r.Refresh()
}

// Tapped raises the selection notification
func (r *EntryRow) Tapped(*fyne.PointEvent) {
	if r.onSelected != nil {
		r.onSelected(r.index)
	}
}

// MouseIn highlights the row under the pointer
func (r *EntryRow) MouseIn(*desktop.MouseEvent) {
	r.hovered = true
	r.Refresh()
}

// MouseMoved is required by desktop.Hoverable
func (r *EntryRow) MouseMoved(*desktop.MouseEvent) {}

// MouseOut clears the hover highlight
func (r *EntryRow) MouseOut() {
	r.hovered = false
	r.Refresh()
}

// Cursor shows a pointer over the row
func (r *EntryRow) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// Refresh updates the background before redrawing
func (r *EntryRow) Refresh() {
	r.background.FillColor = r.backgroundColor()
	r.background.StrokeColor = r.strokeColor()
	r.BaseWidget.Refresh()
}

// CreateRenderer lays out background, title and caption
func (r *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(r.titleLabel, r.subtitleLabel)
	return widget.NewSimpleRenderer(container.NewStack(r.background, container.NewPadded(text)))
}

// MinSize keeps rows a consistent height
func (r *EntryRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// createUI creates the UI components
func (r *EntryRow) createUI() {
	r.titleLabel = widget.NewLabel(r.entry.GetDisplayTitle())
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.subtitleLabel = widget.NewLabel(r.entry.GetSubtitle())
	r.subtitleLabel.SizeName = theme.SizeNameCaptionText
	r.subtitleLabel.Importance = widget.LowImportance
	r.subtitleLabel.Truncation = fyne.TextTruncateEllipsis

	r.background = canvas.NewRectangle(r.backgroundColor())
	r.background.CornerRadius = RowCornerRadius
	r.background.StrokeWidth = 1
	r.background.StrokeColor = r.strokeColor()
}

func (r *EntryRow) backgroundColor() color.Color {
	switch {
	case r.selected:
		return theme.Color(theme.ColorNameSelection)
	case r.hovered:
		return theme.Color(theme.ColorNameHover)
	default:
		return theme.Color(theme.ColorNameButton)
	}
}

func (r *EntryRow) strokeColor() color.Color {
	if r.selected {
		return theme.Color(theme.ColorNamePrimary)
	}
	return color.Transparent
}
