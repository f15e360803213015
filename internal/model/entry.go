package model

import (
	"strings"
)

// AppEntry represents a single listed app in the catalog
type AppEntry struct {
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Publisher   string  `json:"publisher"`
	Description string  `json:"description"`
	StarRating  float64 `json:"star_rating"`
	Downloads   int64   `json:"downloads"`
}

// controlReplacer flattens characters that break single-line labels
var controlReplacer = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

// GetDisplayTitle returns the title on a single line, or "—" if empty
func (e AppEntry) GetDisplayTitle() string {
	title := strings.TrimSpace(controlReplacer.Replace(e.Title))
	if title == "" {
		return "—"
	}
	return title
}

// GetSubtitle returns "genre · publisher", omitting empty parts
func (e AppEntry) GetSubtitle() string {
	parts := make([]string, 0, 2)
	if genre := strings.TrimSpace(controlReplacer.Replace(e.Genre)); genre != "" {
		parts = append(parts, genre)
	}
	if publisher := strings.TrimSpace(controlReplacer.Replace(e.Publisher)); publisher != "" {
		parts = append(parts, publisher)
	}
	return strings.Join(parts, " · ")
}

// HasRating reports whether the entry carries a usable star rating
func (e AppEntry) HasRating() bool {
	return e.StarRating > 0 && e.StarRating <= MaxStarRating
}

// MaxStarRating is the upper bound of the rating scale
const MaxStarRating = 5.0
