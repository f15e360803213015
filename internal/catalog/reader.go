package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/eggplanters/app-store/internal/model"
)

// ErrNotJSON is returned when the catalog input is not a JSON array of entries
var ErrNotJSON = errors.New("catalog is not JSON")

// DefaultSourceName identifies the embedded catalog in logs and the UI
const DefaultSourceName = "embedded:appstore.json"

//go:embed appstore.json
var defaultCatalog []byte

// Reader loads catalog entries from a file on disk
type Reader struct {
	path string
}

// NewReader creates a reader for the catalog file at path
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the file the reader parses
func (r *Reader) Path() string {
	return r.path
}

// Parse reads and decodes the whole file
func (r *Reader) Parse() ([]model.AppEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return entries, nil
}

// Decode reads a JSON array of entries from r, preserving array order
func Decode(r io.Reader) ([]model.AppEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return decodeBytes(data)
}

// Default decodes the catalog embedded in the binary
func Default() ([]model.AppEntry, error) {
	return decodeBytes(defaultCatalog)
}

// Load returns the embedded catalog when path is empty, the file otherwise
func Load(path string) ([]model.AppEntry, error) {
	if path == "" {
		return Default()
	}
	return NewReader(path).Parse()
}

// SourceName describes where Load reads from
func SourceName(path string) string {
	if path == "" {
		return DefaultSourceName
	}
	return path
}

func decodeBytes(data []byte) ([]model.AppEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrNotJSON)
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrNotJSON)
	}

	var entries []model.AppEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	if entries == nil {
		entries = []model.AppEntry{}
	}
	return entries, nil
}
