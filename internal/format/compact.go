// Package format renders catalog numbers for display: abbreviated download
// counts and star ratings, following the number conventions of a language.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Compact formatting constants
const (
	CompactStep      = 1000
	CompactFraction  = 1
	RatingFraction   = 1
	fractionRounding = 10 // 10^CompactFraction
)

// compactSuffixes lists unit suffixes for thousand, million, billion, trillion
var compactSuffixes = map[language.Base][]string{
	mustBase("en"): {"K", "M", "B", "T"},
	mustBase("pt"): {" mil", " mi", " bi", " tri"},
	mustBase("ru"): {" тыс.", " млн", " млрд", " трлн"},
}

var fallbackSuffixes = compactSuffixes[mustBase("en")]

func mustBase(s string) language.Base {
	return language.MustParseBase(s)
}

// Formatter formats numbers for one language
type Formatter struct {
	tag      language.Tag
	printer  *message.Printer
	suffixes []string
}

// NewFormatter creates a formatter for the given language tag
func NewFormatter(tag language.Tag) *Formatter {
	base, _ := tag.Base()
	suffixes, ok := compactSuffixes[base]
	if !ok {
		suffixes = fallbackSuffixes
	}
	return &Formatter{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		suffixes: suffixes,
	}
}

// NewFormatterForCode creates a formatter from a language code such as "en"
// or "pt-BR". Unparseable codes fall back to English.
func NewFormatterForCode(code string) *Formatter {
	tag, err := language.Parse(code)
	if err != nil {
		tag = language.English
	}
	return NewFormatter(tag)
}

// Tag returns the formatter's language
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Compact abbreviates a count: 999 stays "999", 1200 becomes "1.2K",
// 999999 becomes "1M".
func (f *Formatter) Compact(n int64) string {
	sign := ""
	magnitude := uint64(n)
	if n < 0 {
		sign = "-"
		magnitude = uint64(-(n + 1)) + 1
	}

	if magnitude < CompactStep {
		return sign + f.printer.Sprintf("%v", number.Decimal(magnitude))
	}

	value := float64(magnitude)
	unit := -1
	for unit+1 < len(f.suffixes) && value >= CompactStep {
		value /= CompactStep
		unit++
	}

	value = math.Round(value*fractionRounding) / fractionRounding
	if value >= CompactStep && unit+1 < len(f.suffixes) {
		value = math.Round(value/CompactStep*fractionRounding) / fractionRounding
		unit++
	}

	digits := f.printer.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(CompactFraction)))
	return sign + digits + f.suffixes[unit]
}

// Rating formats a star rating with a single fractional digit
func (f *Formatter) Rating(rating float64) string {
	return f.printer.Sprintf("%v", number.Decimal(rating, number.Scale(RatingFraction)))
}
