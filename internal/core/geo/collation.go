package geo

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation orders district names for display using locale-aware comparison.
// The zero value uses the CLDR root collation.
type Collation struct {
	tag language.Tag
}

// NewCollation parses a BCP 47 locale such as "zh-Hant-TW" or "und".
// An empty locale selects the root collation.
func NewCollation(locale string) (Collation, error) {
	if locale == "" {
		return Collation{tag: language.Und}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Collation{}, fmt.Errorf("invalid collation locale %q: %w", locale, err)
	}
	return Collation{tag: tag}, nil
}

// Locale returns the BCP 47 form of the collation locale.
func (c Collation) Locale() string {
	return c.tag.String()
}

// Compare returns -1, 0 or 1 comparing a and b under the collation.
func (c Collation) Compare(a, b string) int {
	return collate.New(c.tag).CompareString(a, b)
}

// Sort orders values in place.
// collate.Collator is not safe for concurrent use, so one is built per call.
func (c Collation) Sort(values []string) {
	collate.New(c.tag).SortStrings(values)
}
