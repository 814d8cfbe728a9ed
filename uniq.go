package catalog

// DuplicateISBNs returns every ISBN that appears more than once in records,
// in the order each duplicate is first seen. Consecutive duplicates are
// filtered on an ISBN ordered copy, so records itself is not reordered.
func DuplicateISBNs(records []Book) []string {
	sorted := cloneBooks(records)
	// string keys never fail to compare
	_ = Sort(sorted, ISBN, Ascending)

	dups := make(map[string]bool)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ISBN == sorted[i-1].ISBN {
			dups[sorted[i].ISBN] = true
		}
	}

	out := make([]string, 0, len(dups))
	for _, b := range records {
		if dups[b.ISBN] {
			out = append(out, b.ISBN)
			delete(dups, b.ISBN)
		}
	}
	return out
}
