package model

// Package model defines the catalog entry shared by the reader, the list
// rows and the details pane. Entries are plain values and are never
// mutated after decoding.
