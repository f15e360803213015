package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggplanters/app-store/internal/catalog"
	"github.com/eggplanters/app-store/internal/config"
	"github.com/eggplanters/app-store/internal/logger"
)

const testCatalog = `[
  {"title": "Alpha", "genre": "Puzzle", "publisher": "A Inc", "description": "First app", "star_rating": 4.5, "downloads": 1200},
  {"title": "Beta", "genre": "Arcade", "publisher": "B Inc", "description": "Second app", "star_rating": 3.8, "downloads": 999},
  {"title": "Gamma", "genre": "Music", "publisher": "C Inc", "description": "Third app", "star_rating": 5, "downloads": 2500000}
]`

func newTestRoot(t *testing.T, log logger.Logger) (*RootUI, fyne.Window, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	return NewRootUI(window, settings, log), window, settings
}

func writeTestCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appStore.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func selectedRows(ui *RootUI) []int {
	var selected []int
	for i, row := range ui.rows {
		if row.Selected() {
			selected = append(selected, i)
		}
	}
	return selected
}

func TestNewRootUI_InitialState(t *testing.T) {
	ui, window, _ := newTestRoot(t, nil)

	assert.Equal(t, "Eggplanters Store", window.Title())
	assert.Equal(t, 0, ui.EntryCount())
	assert.Equal(t, NoSelection, ui.SelectedIndex())
	require.Len(t, ui.appDetails.Objects, 1)
	assert.Nil(t, ui.details)
}

func TestLoadCatalog_WellFormed(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)

	err := ui.LoadCatalog(writeTestCatalog(t, testCatalog))
	require.NoError(t, err)
	assert.NoError(t, ui.LoadError())

	require.Equal(t, 3, ui.EntryCount())
	require.Len(t, ui.appList.Objects, 3)

	expected := []string{"Alpha", "Beta", "Gamma"}
	for i, row := range ui.rows {
		assert.Equal(t, i, row.Index())
		assert.Equal(t, expected[i], row.Entry().Title)
		assert.Same(t, row, ui.appList.Objects[i])
	}

	assert.Equal(t, NoSelection, ui.SelectedIndex())
	assert.Empty(t, selectedRows(ui))
	assert.True(t, strings.HasPrefix(ui.statusLabel.Text, "3 apps"))
}

func TestLoadCatalog_Embedded(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)

	require.NoError(t, ui.LoadCatalog(""))

	defaults, err := catalog.Default()
	require.NoError(t, err)
	assert.Equal(t, len(defaults), ui.EntryCount())
	assert.Contains(t, ui.statusLabel.Text, "built-in catalog")
	assert.True(t, ui.showCatalog.Disabled)
}

func TestLoadCatalog_Malformed(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.DebugLevel)
	ui, _, _ := newTestRoot(t, log)

	var err error
	assert.NotPanics(t, func() {
		err = ui.LoadCatalog(writeTestCatalog(t, "File is not JSON"))
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotJSON)
	assert.ErrorIs(t, ui.LoadError(), catalog.ErrNotJSON)

	assert.Equal(t, 0, ui.EntryCount())
	assert.Empty(t, ui.appList.Objects)
	assert.Equal(t, "The catalog could not be loaded", ui.statusLabel.Text)

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"reason":"not_json"`)

	// Nothing to select
	ui.Select(0)
	assert.Equal(t, NoSelection, ui.SelectedIndex())
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)

	err := ui.LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, 0, ui.EntryCount())
	assert.True(t, ui.showCatalog.Disabled)
}

func TestLoadCatalog_ReplacesPreviousRows(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)
	require.NoError(t, ui.LoadCatalog(writeTestCatalog(t, testCatalog)))
	ui.Select(1)

	require.Error(t, ui.LoadCatalog(writeTestCatalog(t, "{")))
	assert.Equal(t, 0, ui.EntryCount())
	assert.Equal(t, NoSelection, ui.SelectedIndex())
	assert.Nil(t, ui.details)
}

func TestSelect_ByTap(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)
	require.NoError(t, ui.LoadCatalog(writeTestCatalog(t, testCatalog)))

	test.Tap(ui.rows[1])
	assert.Equal(t, 1, ui.SelectedIndex())
	assert.Equal(t, []int{1}, selectedRows(ui))
	require.NotNil(t, ui.details)
	assert.Equal(t, "Beta", ui.details.titleLabel.Text)
	require.Len(t, ui.appDetails.Objects, 1)
	assert.Same(t, ui.details.content, ui.appDetails.Objects[0])

	test.Tap(ui.rows[2])
	assert.Equal(t, 2, ui.SelectedIndex())
	assert.Equal(t, []int{2}, selectedRows(ui))
	assert.Equal(t, "Gamma", ui.details.titleLabel.Text)
	require.Len(t, ui.appDetails.Objects, 1)
	assert.Same(t, ui.details.content, ui.appDetails.Objects[0])

	// Tapping the selected row again keeps a single selection
	test.Tap(ui.rows[2])
	assert.Equal(t, []int{2}, selectedRows(ui))
}

func TestSelect_DetailsFields(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)
	require.NoError(t, ui.LoadCatalog(writeTestCatalog(t, testCatalog)))

	ui.Select(0)
	require.NotNil(t, ui.details)
	assert.Equal(t, "Alpha", ui.details.titleLabel.Text)
	assert.Equal(t, "Published by A Inc", ui.details.publisherLabel.Text)
	assert.Equal(t, "Puzzle", ui.details.genreLabel.Text)
	assert.Equal(t, "4.5 - 1.2K+ downloads", ui.details.metricsLabel.Text)
	assert.Equal(t, "\tFirst app", ui.details.description.Text)
	assert.Equal(t, IconStar, ui.details.starText.Text)

	ui.Select(1)
	assert.Equal(t, "3.8 - 999+ downloads", ui.details.metricsLabel.Text)

	ui.Select(2)
	assert.Equal(t, "5.0 - 2.5M+ downloads", ui.details.metricsLabel.Text)
}

func TestSelect_OutOfRange(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)
	require.NoError(t, ui.LoadCatalog(writeTestCatalog(t, testCatalog)))
	ui.Select(0)

	ui.Select(-1)
	ui.Select(3)
	assert.Equal(t, 0, ui.SelectedIndex())
	assert.Equal(t, []int{0}, selectedRows(ui))
	assert.Equal(t, "Alpha", ui.details.titleLabel.Text)
}

func TestTypedKeyNavigation(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)
	require.NoError(t, ui.LoadCatalog(writeTestCatalog(t, testCatalog)))

	press := func(name fyne.KeyName) {
		ui.onTypedKey(&fyne.KeyEvent{Name: name})
	}

	press(fyne.KeyDown)
	assert.Equal(t, 0, ui.SelectedIndex())
	press(fyne.KeyDown)
	assert.Equal(t, 1, ui.SelectedIndex())
	press(fyne.KeyUp)
	assert.Equal(t, 0, ui.SelectedIndex())
	press(fyne.KeyUp)
	assert.Equal(t, 0, ui.SelectedIndex())
	press(fyne.KeyEnd)
	assert.Equal(t, 2, ui.SelectedIndex())
	press(fyne.KeyDown)
	assert.Equal(t, 2, ui.SelectedIndex())
	press(fyne.KeyHome)
	assert.Equal(t, 0, ui.SelectedIndex())
	press(fyne.KeyA)
	assert.Equal(t, 0, ui.SelectedIndex())

	assert.Equal(t, []int{0}, selectedRows(ui))
}

func TestTypedKeyNavigation_EmptyCatalog(t *testing.T) {
	ui, _, _ := newTestRoot(t, nil)
	require.Error(t, ui.LoadCatalog(writeTestCatalog(t, "[")))

	assert.NotPanics(t, func() {
		ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	})
	assert.Equal(t, NoSelection, ui.SelectedIndex())
}

func TestLanguageChange(t *testing.T) {
	ui, _, settings := newTestRoot(t, nil)
	require.NoError(t, ui.LoadCatalog(writeTestCatalog(t, testCatalog)))
	ui.Select(0)

	ui.onLanguageChange("pt")

	assert.Equal(t, "pt", settings.GetLanguage())
	assert.Equal(t, "Publicado por A Inc", ui.details.publisherLabel.Text)
	assert.Equal(t, "4,5 - 1,2 mil+ downloads", ui.details.metricsLabel.Text)
	assert.True(t, strings.HasPrefix(ui.statusLabel.Text, "3 apps"))
	assert.Equal(t, 0, ui.SelectedIndex())
	assert.Equal(t, []int{0}, selectedRows(ui))
}

func TestLanguageFromSettings(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	settings.SetLanguage("ru")

	ui := NewRootUI(window, settings, nil)
	require.Error(t, ui.LoadCatalog(writeTestCatalog(t, "oops")))
	assert.Equal(t, "Не удалось загрузить каталог", ui.statusLabel.Text)
}
