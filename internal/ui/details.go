package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/eggplanters/app-store/internal/format"
	"github.com/eggplanters/app-store/internal/model"
)

// detailsView is the widget tree rendered for the selected entry
type detailsView struct {
	content *fyne.Container

	image          *canvas.Image
	titleLabel     *widget.Label
	publisherLabel *widget.Label
	genreLabel     *widget.Label
	starText       *canvas.Text
	metricsLabel   *widget.Label
	description    *widget.Label
}

// newDetailsView maps one entry to its header and description
func newDetailsView(entry model.AppEntry, localization *Localization, formatter *format.Formatter) *detailsView {
	d := &detailsView{}

	d.image = canvas.NewImageFromResource(AppPlaceholderResource())
	d.image.FillMode = canvas.ImageFillContain
	d.image.SetMinSize(fyne.NewSize(AppImageSize, AppImageSize))

	d.titleLabel = widget.NewLabel(entry.GetDisplayTitle())
	d.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	d.titleLabel.SizeName = theme.SizeNameHeadingText
	d.titleLabel.Wrapping = fyne.TextWrapWord

	d.publisherLabel = widget.NewLabel(localization.GetTextf(KeyPublishedBy, strings.TrimSpace(entry.Publisher)))
	d.publisherLabel.SizeName = theme.SizeNameSubHeadingText

	d.genreLabel = widget.NewLabel(strings.TrimSpace(entry.Genre))
	d.genreLabel.SizeName = theme.SizeNameSubHeadingText
	d.genreLabel.Importance = widget.LowImportance

	d.starText = canvas.NewText(IconStar, theme.Color(theme.ColorNameWarning))
	d.starText.TextSize = StarIconSize

	d.metricsLabel = widget.NewLabel(metricsText(entry, localization, formatter))
	d.metricsLabel.SizeName = theme.SizeNameSubHeadingText

	metrics := container.NewHBox(d.starText, d.metricsLabel)
	headerText := container.NewVBox(d.titleLabel, d.publisherLabel, d.genreLabel, metrics)
	header := container.NewBorder(nil, nil, container.NewCenter(d.image), nil, headerText)

	d.description = widget.NewLabel(DescriptionIndent + strings.TrimSpace(entry.Description))
	d.description.Wrapping = fyne.TextWrapWord
	description := container.New(
		layout.NewCustomPaddedLayout(DescriptionPadding, DescriptionPadding, DescriptionPadding, DescriptionPadding),
		d.description,
	)

	d.content = container.NewVBox(header, description)
	return d
}

// metricsText renders "<rating> - <downloads>+ downloads"
func metricsText(entry model.AppEntry, localization *Localization, formatter *format.Formatter) string {
	rating := localization.GetText(KeyNoRating)
	if entry.HasRating() {
		rating = formatter.Rating(entry.StarRating)
	}
	downloads := localization.GetTextf(KeyDownloadsFormat, formatter.Compact(entry.Downloads))
	return rating + MetricsSeparator + downloads
}

// newDetailsPlaceholder is shown while nothing is selected
func newDetailsPlaceholder(localization *Localization) fyne.CanvasObject {
	hint := widget.NewLabel(localization.GetText(KeySelectAppHint))
	hint.Importance = widget.LowImportance
	hint.Alignment = fyne.TextAlignCenter
	return container.NewCenter(hint)
}
