// Package passtable keeps an ordered, selectable in-memory view of the
// password store and reconciles it against the store's current contents. It
// owns the row list, the cursor and the selection flags as plain state; the
// TUI renders projections of it and never mutates it directly.
package passtable

import "passview/internal/domain"

// Row is one displayed entry. Ordinal is the 1-based display position,
// recomputed from list order after every mutating operation; it is never an
// independent source of truth.
type Row struct {
	Entry    domain.Entry
	Selected bool
	Ordinal  int
}

// String returns the entry's path form.
func (r Row) String() string {
	return r.Entry.String()
}
