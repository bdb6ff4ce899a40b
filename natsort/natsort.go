// Package natsort orders interface names the way a network engineer
// reads port numbers: numeric segments compare as integers, so
// "Ethernet1/2" sorts before "Ethernet1/10".
package natsort

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter compares strings in natural port order.
//
// A Sorter owns its collator and must not be shared between
// goroutines; construct one per use. Construction is cheap.
type Sorter struct {
	c *collate.Collator
}

// New returns a fresh Sorter.
func New() *Sorter {
	return &Sorter{c: collate.New(language.Und, collate.Numeric)}
}

// Compare returns -1, 0 or 1 comparing a and b in natural order.
// Distinct strings that collate equally (e.g. "1" vs "01") fall back
// to byte order so the result is a total order.
func (s *Sorter) Compare(a, b string) int {
	if r := s.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Strings sorts names in place, ascending.
func (s *Sorter) Strings(names []string) {
	slices.SortStableFunc(names, s.Compare)
}
