package catalog

import "fmt"

// Search bisects an ascending snapshot for the record whose attr field equals term.
// With duplicate values the record returned is whichever the bisection lands on first.
func Search(term string, attr Attribute, snapshot []Book) (Book, error) {
	if !attr.Valid() {
		return Book{}, fmt.Errorf("%w: %d", ErrUnknownAttribute, attr)
	}
	if attr.Numeric() {
		// fail on a malformed term even when the snapshot is empty
		if _, err := attr.parseInt(term); err != nil {
			return Book{}, err
		}
	}

	low, high := 0, len(snapshot)-1
	for low <= high {
		middle := low + (high-low)/2
		c, err := attr.Compare(attr.Field(snapshot[middle]), term)
		if err != nil {
			return Book{}, err
		}
		switch {
		case c < 0:
			low = middle + 1
		case c > 0:
			high = middle - 1
		default:
			if b, ok := exactMatch(term, attr, snapshot, middle); ok {
				return b, nil
			}
			return Book{}, NewNotFoundError(attr, term)
		}
	}
	return Book{}, NewNotFoundError(attr, term)
}

// exactMatch looks for a field equal to term as a string within the run of
// records around middle that compare equal to it. Numeric fields such as
// "0100" and "100" compare equal without being the same value.
func exactMatch(term string, attr Attribute, snapshot []Book, middle int) (Book, bool) {
	if attr.Field(snapshot[middle]) == term {
		return snapshot[middle], true
	}
	for _, step := range []int{-1, 1} {
		for i := middle + step; i >= 0 && i < len(snapshot); i += step {
			field := attr.Field(snapshot[i])
			if c, err := attr.Compare(field, term); err != nil || c != 0 {
				break
			}
			if field == term {
				return snapshot[i], true
			}
		}
	}
	return Book{}, false
}
