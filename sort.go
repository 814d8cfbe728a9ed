// Package catalog sorts, searches and edits a small book catalog kept in a
// headerless CSV file, persisting every sort result as a snapshot CSV.
// Sort is NOT a stable sort.
package catalog

import (
	"fmt"
)

// span is an inclusive range of indexes waiting to be partitioned
type span struct {
	low, high int
}

// keyedBooks pairs the records with pre-parsed numeric keys so that a
// malformed length is reported before any record moves
type keyedBooks struct {
	records []Book
	attr    Attribute
	nums    []int
}

func newKeyedBooks(records []Book, attr Attribute) (*keyedBooks, error) {
	k := &keyedBooks{records: records, attr: attr}
	if !attr.Numeric() {
		return k, nil
	}
	k.nums = make([]int, len(records))
	for i, b := range records {
		n, err := attr.parseInt(attr.Field(b))
		if err != nil {
			return nil, err
		}
		k.nums[i] = n
	}
	return k, nil
}

func (k *keyedBooks) compare(i, j int) int {
	if k.nums != nil {
		return compareInt(k.nums[i], k.nums[j])
	}
	x, y := k.attr.Field(k.records[i]), k.attr.Field(k.records[j])
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (k *keyedBooks) swap(i, j int) {
	k.records[i], k.records[j] = k.records[j], k.records[i]
	if k.nums != nil {
		k.nums[i], k.nums[j] = k.nums[j], k.nums[i]
	}
}

// partition moves every record that belongs before the pivot (the last record
// of the span) to the front and returns the pivot's final index
func (k *keyedBooks) partition(s span, o Order) int {
	i := s.low - 1
	for j := s.low; j < s.high; j++ {
		c := k.compare(j, s.high)
		if (o == Ascending && c <= 0) || (o == Descending && c >= 0) {
			i++
			k.swap(i, j)
		}
	}
	k.swap(i+1, s.high)
	return i + 1
}

// Sort orders records in place by attr in order o using an iterative quicksort.
// For numeric attributes every value is parsed first; on a ParseError records is unchanged.
func Sort(records []Book, attr Attribute, o Order) error {
	if !attr.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAttribute, attr)
	}
	if !o.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, o)
	}
	if len(records) <= 1 {
		return nil
	}
	k, err := newKeyedBooks(records, attr)
	if err != nil {
		return err
	}

	stack := []span{{0, len(records) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.low >= s.high {
			continue
		}
		p := k.partition(s, o)
		stack = append(stack, span{s.low, p - 1}, span{p + 1, s.high})
	}
	return nil
}

// IsSorted reports whether records are already ordered by attr in order o
func IsSorted(records []Book, attr Attribute, o Order) (bool, error) {
	for i := 1; i < len(records); i++ {
		c, err := attr.Compare(attr.Field(records[i-1]), attr.Field(records[i]))
		if err != nil {
			return false, err
		}
		if (o == Ascending && c > 0) || (o == Descending && c < 0) {
			return false, nil
		}
	}
	return true, nil
}
