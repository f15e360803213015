package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "app_icon.png"
)

// LoadAppIcon loads the window icon from the working directory
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// AppPlaceholderResource is shown in place of an app's artwork
func AppPlaceholderResource() fyne.Resource {
	return theme.FileApplicationIcon()
}
