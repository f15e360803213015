package catalog

// Package catalog reads the static app catalog: a JSON array of entry
// objects. Loading is all-or-nothing; any malformed input yields no entries
// and an error wrapping ErrNotJSON. A default catalog is embedded in the
// binary and used when no file is configured.
