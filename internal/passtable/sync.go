package passtable

import "passview/internal/domain"

// SyncRows merges the freshly listed store contents into the existing row
// list. Both inputs must be in canonical entry order. Rows whose entry
// persists keep their selection flag; entries new to the store become fresh
// unselected rows; rows whose entry disappeared are dropped. The returned
// cursor tracks the same relative position: insertions and removals at or
// before the old cursor shift it so it keeps denoting the same entry where
// possible.
//
// Ordinals are assigned 1-based from the merged order.
func SyncRows(old []Row, fresh []domain.Entry, cursor int) ([]Row, int) {
	merged := make([]Row, 0, len(fresh))
	delta := 0

	i, j := 0, 0
	for i < len(fresh) && j < len(old) {
		switch cmp := domain.Compare(fresh[i], old[j].Entry); {
		case cmp < 0:
			// Newly appeared entry.
			merged = append(merged, Row{Entry: fresh[i]})
			i++
			if j <= cursor {
				delta++
			}
		case cmp > 0:
			// Entry no longer in the store.
			if j <= cursor {
				delta--
			}
			j++
		default:
			merged = append(merged, Row{Entry: fresh[i], Selected: old[j].Selected})
			i++
			j++
		}
	}
	for ; i < len(fresh); i++ {
		merged = append(merged, Row{Entry: fresh[i]})
	}

	for i := range merged {
		merged[i].Ordinal = i + 1
	}

	return merged, clamp(cursor+delta, len(merged))
}

// clamp bounds a cursor to [0, n-1], returning 0 for an empty list.
func clamp(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
