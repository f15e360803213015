package main

import (
	"flag"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/eggplanters/app-store/internal/config"
	"github.com/eggplanters/app-store/internal/logger"
	"github.com/eggplanters/app-store/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.eggplanters.app-store"
	AppName = "Eggplanters Store"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath(), "path to config.toml")
	catalogPath := flag.String("catalog", "", "catalog JSON file (overrides settings and config)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg, cfgErr := config.LoadFile(*configPath)
	level := cfg.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}

	log := logger.NewConsoleLogger(logger.ParseLevel(level))
	if cfgErr != nil {
		log.Error("Main", cfgErr, map[string]interface{}{"config": *configPath})
	}
	log.Info("Main", "starting", map[string]interface{}{"version": version})

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDraculaTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	if icon, err := ui.LoadAppIcon(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		log.Debug("Main", "app icon not found", map[string]interface{}{"path": ui.AppIcon})
	}

	settings := config.NewSettings(myApp)
	root := ui.NewRootUI(myWindow, settings, log)

	// A failed load is logged by the UI and leaves the list empty
	_ = root.LoadCatalog(config.ResolveCatalogPath(*catalogPath, settings, cfg))

	myWindow.ShowAndRun()
}
