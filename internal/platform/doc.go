package platform

// Package platform contains OS integration glue: revealing the catalog file
// in the system file manager.
