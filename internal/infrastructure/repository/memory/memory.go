// Package memory provides map-backed repositories with the same contracts
// as the postgres implementations, including duplicate-key signalling.
// Used by tests and local development without a database.
package memory

import "sort"

// clampPage normalizes offset/limit the way the SQL repositories do.
func clampPage(total, offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	if limit <= 0 {
		limit = total - offset
	}
	if offset+limit > total {
		limit = total - offset
	}
	return offset, limit
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
