package state

import "sort"

// SortByKey orders records ascending by canonical identifier.
func SortByKey[R Keyed](records []R) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Key() < records[j].Key()
	})
}

// Truncate keeps the first limit records. A zero or negative limit
// keeps nothing; limits beyond the slice keep everything.
func Truncate[R any](records []R, limit int) []R {
	if limit <= 0 {
		return records[:0]
	}
	if limit < len(records) {
		return records[:limit]
	}
	return records
}

// KeyMap indexes records by canonical identifier.
func KeyMap[R Keyed](records []R) map[string]R {
	out := make(map[string]R, len(records))
	for _, r := range records {
		out[r.Key()] = r
	}
	return out
}

// Paginate runs the shared tail of every keyed list query: filter,
// sort ascending by identifier, truncate to the limit, and index the
// survivors by identifier. The limit is applied strictly after
// filtering and sorting, so a truncated page is always the smallest
// identifiers of the full filtered set.
func Paginate[R Keyed](records []R, opts ListOptions) map[string]R {
	kept := ApplyFilter(records, opts.Filter)
	SortByKey(kept)
	return KeyMap(Truncate(kept, opts.Limit))
}

// PaginateByRefCount runs the list tail for runtime environment
// records, which have no identifier: filter, stable sort ascending by
// reference count, truncate. Records with equal reference counts keep
// their arrival order.
func PaginateByRefCount(records []RuntimeEnv, opts ListOptions) []RuntimeEnv {
	kept := ApplyFilter(records, opts.Filter)
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].RefCount < kept[j].RefCount
	})
	return Truncate(kept, opts.Limit)
}
