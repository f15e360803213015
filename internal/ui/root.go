package ui

import (
	"errors"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/eggplanters/app-store/internal/catalog"
	"github.com/eggplanters/app-store/internal/config"
	"github.com/eggplanters/app-store/internal/format"
	"github.com/eggplanters/app-store/internal/logger"
	"github.com/eggplanters/app-store/internal/model"
	"github.com/eggplanters/app-store/internal/platform"
)

const rootComponent = "RootUI"

// NoSelection is the selected index while no row is selected
const NoSelection = -1

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	formatter    *format.Formatter
	logger       logger.Logger

	// Catalog state
	catalogPath   string
	entries       []model.AppEntry
	loadErr       error
	selectedIndex int

	// UI components
	rows        []*EntryRow
	appList     *fyne.Container
	appDetails  *fyne.Container
	details     *detailsView
	listScroll  *container.Scroll
	statusLabel *widget.Label
	showCatalog *fyne.MenuItem
}

// NewRootUI creates and initializes the main UI. The catalog is empty until
// LoadCatalog is called.
func NewRootUI(window fyne.Window, settings *config.Settings, log logger.Logger) *RootUI {
	if log == nil {
		log = logger.NewNop()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		settings:      settings,
		localization:  localization,
		formatter:     format.NewFormatterForCode(localization.GetCurrentLanguage()),
		logger:        log,
		selectedIndex: NoSelection,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Left pane: catalog list
	ui.appList = container.New(layout.NewCustomPaddedVBoxLayout(PaneSpacing))
	ui.listScroll = container.NewVScroll(container.New(
		layout.NewCustomPaddedLayout(PanePadding, PanePadding, PanePadding, PanePadding),
		ui.appList,
	))
	// Transparent spacer keeps the list pane from collapsing
	listMin := canvas.NewRectangle(color.Transparent)
	listMin.SetMinSize(fyne.NewSize(ListMinWidth, 0))
	leftPane := container.NewStack(listMin, ui.listScroll)

	// Right pane: details of the selected entry
	ui.appDetails = container.New(layout.NewCustomPaddedVBoxLayout(PaneSpacing), newDetailsPlaceholder(ui.localization))
	detailsScroll := container.NewVScroll(container.New(
		layout.NewCustomPaddedLayout(PanePadding, PanePadding, PanePadding, PanePadding),
		ui.appDetails,
	))

	var split *container.Split
	if fyne.CurrentDevice().IsMobile() {
		split = container.NewVSplit(leftPane, detailsScroll)
	} else {
		split = container.NewHSplit(leftPane, detailsScroll)
	}
	split.Offset = ListSplitOffset

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Importance = widget.LowImportance
	statusBar := container.NewVBox(widget.NewSeparator(), ui.statusLabel)

	content := container.NewBorder(
		nil,       // top
		statusBar, // bottom
		nil,       // left
		nil,       // right
		split,     // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.logger.Debug(rootComponent, "UI setup completed", nil)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	ui.showCatalog = fyne.NewMenuItem(ui.localization.GetText(KeyShowCatalog), ui.onShowCatalogFile)
	ui.showCatalog.Disabled = ui.catalogPath == "" || !ui.catalogExists()

	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range languageOrder {
		name, ok := ui.localization.GetAvailableLanguages()[code]
		if !ok {
			continue
		}
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), ui.showCatalog, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// languageOrder fixes the menu order of languages
var languageOrder = []string{"en", "ru", "pt"}

// LoadCatalog reads the catalog at path ("" for the built-in one) and fills
// the list. On failure it logs, shows a notice and leaves the list empty.
func (ui *RootUI) LoadCatalog(path string) error {
	ui.catalogPath = path
	ui.clearCatalog()

	source := catalog.SourceName(path)
	entries, err := catalog.Load(path)
	if err != nil {
		ui.loadErr = err
		fields := map[string]interface{}{"source": source}
		if errors.Is(err, catalog.ErrNotJSON) {
			fields["reason"] = "not_json"
		}
		ui.logger.Error(rootComponent, err, fields)
		ui.refreshStatus()
		ui.createMenu()
		return err
	}

	for i, entry := range entries {
		ui.addEntry(i, entry)
	}
	ui.appList.Refresh()

	ui.logger.Info(rootComponent, "catalog loaded", map[string]interface{}{
		"source":  source,
		"entries": len(entries),
	})

	ui.refreshStatus()
	ui.createMenu()
	return nil
}

// clearCatalog empties the list and resets the details pane
func (ui *RootUI) clearCatalog() {
	ui.entries = nil
	ui.rows = nil
	ui.loadErr = nil
	ui.selectedIndex = NoSelection
	ui.details = nil
	ui.appList.RemoveAll()
	ui.showDetailsPlaceholder()
}

// addEntry appends one row wired to the selection handler
func (ui *RootUI) addEntry(index int, entry model.AppEntry) {
	row := NewEntryRow(index, entry)
	row.SetOnSelected(ui.Select)

	ui.entries = append(ui.entries, entry)
	ui.rows = append(ui.rows, row)
	ui.appList.Add(row)
}

// Select shows the entry at index and marks its row as the only selected
// one. Out-of-range indexes are ignored.
func (ui *RootUI) Select(index int) {
	if index < 0 || index >= len(ui.entries) {
		return
	}

	ui.setDetails(ui.entries[index])
	for i, row := range ui.rows {
		row.SetSelected(i == index)
	}
	ui.selectedIndex = index

	ui.logger.Debug(rootComponent, "entry selected", map[string]interface{}{
		"index": index,
		"title": ui.entries[index].Title,
	})
}

// SelectedIndex returns the selected row, or NoSelection
func (ui *RootUI) SelectedIndex() int {
	return ui.selectedIndex
}

// EntryCount returns the number of rows in the list
func (ui *RootUI) EntryCount() int {
	return len(ui.rows)
}

// LoadError returns the error of the last LoadCatalog, if any
func (ui *RootUI) LoadError() error {
	return ui.loadErr
}

// setDetails replaces the details pane contents with entry
func (ui *RootUI) setDetails(entry model.AppEntry) {
	ui.details = newDetailsView(entry, ui.localization, ui.formatter)
	ui.appDetails.Objects = []fyne.CanvasObject{ui.details.content}
	ui.appDetails.Refresh()
}

// showDetailsPlaceholder shows the selection hint in the details pane
func (ui *RootUI) showDetailsPlaceholder() {
	ui.appDetails.Objects = []fyne.CanvasObject{newDetailsPlaceholder(ui.localization)}
	ui.appDetails.Refresh()
}

// refreshStatus updates the status bar for the current catalog state
func (ui *RootUI) refreshStatus() {
	switch {
	case ui.loadErr != nil:
		ui.statusLabel.Importance = widget.DangerImportance
		ui.statusLabel.SetText(ui.localization.GetText(KeyCatalogLoadFailed))
	case ui.catalogPath == "":
		ui.statusLabel.Importance = widget.LowImportance
		ui.statusLabel.SetText(ui.localization.GetTextf(KeyAppCount, len(ui.rows)) +
			MiddleDotSeparator + ui.localization.GetText(KeyEmbeddedCatalog))
	default:
		ui.statusLabel.Importance = widget.LowImportance
		ui.statusLabel.SetText(ui.localization.GetTextf(KeyAppCount, len(ui.rows)) +
			MiddleDotSeparator + ui.catalogPath)
	}
}

// onTypedKey moves the selection with the arrow keys
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	if len(ui.rows) == 0 {
		return
	}

	switch event.Name {
	case fyne.KeyDown:
		if ui.selectedIndex == NoSelection {
			ui.Select(0)
			return
		}
		ui.Select(min(ui.selectedIndex+1, len(ui.rows)-1))
	case fyne.KeyUp:
		if ui.selectedIndex == NoSelection {
			ui.Select(len(ui.rows) - 1)
			return
		}
		ui.Select(max(ui.selectedIndex-1, 0))
	case fyne.KeyHome:
		ui.Select(0)
	case fyne.KeyEnd:
		ui.Select(len(ui.rows) - 1)
	default:
		return
	}

	if ui.selectedIndex != NoSelection {
		ui.scrollToSelected()
	}
}

// scrollToSelected keeps the selected row visible in the list pane
func (ui *RootUI) scrollToSelected() {
	row := ui.rows[ui.selectedIndex]
	top := row.Position().Y
	bottom := top + row.Size().Height
	visible := ui.listScroll.Size().Height

	switch {
	case top < ui.listScroll.Offset.Y:
		ui.listScroll.Offset.Y = top
	case bottom > ui.listScroll.Offset.Y+visible:
		ui.listScroll.Offset.Y = bottom - visible + PanePadding
	default:
		return
	}
	ui.listScroll.Refresh()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.formatter = format.NewFormatterForCode(ui.localization.GetCurrentLanguage())

	ui.logger.Info(rootComponent, "language changed", map[string]interface{}{
		"language": ui.localization.GetCurrentLanguage(),
	})

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.refreshStatus()

	if ui.selectedIndex == NoSelection {
		ui.showDetailsPlaceholder()
		return
	}
	ui.setDetails(ui.entries[ui.selectedIndex])
}

// onShowCatalogFile reveals the catalog in the system file manager
func (ui *RootUI) onShowCatalogFile() {
	if ui.catalogPath == "" {
		return
	}

	if err := platform.OpenFileInManager(ui.catalogPath); err != nil {
		ui.logger.Error(rootComponent, err, map[string]interface{}{"path": ui.catalogPath})
		dialog.ShowError(err, ui.window)
		return
	}
	ui.logger.Debug(rootComponent, "catalog file revealed", map[string]interface{}{"path": ui.catalogPath})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(languageChanged bool) {
		if languageChanged {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
		ui.logger.Info(rootComponent, "settings saved", map[string]interface{}{
			"catalog_path": ui.settings.GetCatalogPath(),
		})
	})
}

// catalogExists reports whether the configured catalog file is present
func (ui *RootUI) catalogExists() bool {
	if ui.catalogPath == "" {
		return true
	}
	_, err := os.Stat(ui.catalogPath)
	return err == nil
}
