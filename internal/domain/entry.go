package domain

import (
	"slices"
	"strings"
)

// Separator is the path separator used in relative entry paths, both for
// display and for addressing the password store. It is always "/", regardless
// of platform; the store adapter translates to filesystem paths.
const Separator = "/"

// Entry identifies one password in the store by its relative path, split into
// the three columns the table displays.
type Entry struct {
	Profile  string // first path segment, empty for top-level entries
	Category string // segments between profile and name, joined with "/"
	Name     string // final path segment, always present
}

// ParseEntry converts a relative store path into an Entry. The final segment
// is always the name, the first segment (if any) the profile, and anything in
// between the category. This asymmetric rule determines sort and display
// order and must match what the store adapter produces.
func ParseEntry(path string) Entry {
	segments := strings.Split(path, Separator)
	switch len(segments) {
	case 1:
		return Entry{Name: segments[0]}
	case 2:
		return Entry{Profile: segments[0], Name: segments[1]}
	default:
		return Entry{
			Profile:  segments[0],
			Category: strings.Join(segments[1:len(segments)-1], Separator),
			Name:     segments[len(segments)-1],
		}
	}
}

// String returns the relative store path for the entry. Empty segments are
// dropped so the result never contains doubled separators.
func (e Entry) String() string {
	segments := make([]string, 0, 3)
	for _, s := range []string{e.Profile, e.Category, e.Name} {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, Separator)
}

// Compare orders entries lexicographically by profile, then category, then
// name. This is the canonical display order and the order ListEntries must
// return.
func Compare(a, b Entry) int {
	if c := strings.Compare(a.Profile, b.Profile); c != 0 {
		return c
	}
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// SortEntries sorts entries in canonical order.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, Compare)
}
