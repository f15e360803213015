package ui

// Package ui contains the Fyne-based desktop user interface: the catalog
// list on the left, the details pane on the right, the menu and the
// settings dialog. All UI strings are localized via Localization.
