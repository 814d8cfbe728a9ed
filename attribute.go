package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute identifies one of the five positional fields of a Book
type Attribute int

const (
	ISBN Attribute = iota
	Title
	Author
	Length
	DateOfPublication
)

var attributeNames = [...]string{
	ISBN:              "isbn",
	Title:             "title",
	Author:            "author",
	Length:            "length",
	DateOfPublication: "date_of_publication",
}

// Attributes returns every attribute in record order
func Attributes() []Attribute {
	return []Attribute{ISBN, Title, Author, Length, DateOfPublication}
}

// ParseAttribute maps a name such as "title" back to its Attribute
func ParseAttribute(name string) (Attribute, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// Valid reports whether a is one of the five known attributes
func (a Attribute) Valid() bool {
	return a >= ISBN && a <= DateOfPublication
}

// String returns the attribute name used in snapshot filenames, or "" if a is not valid
func (a Attribute) String() string {
	if !a.Valid() {
		return ""
	}
	return attributeNames[a]
}

// Index returns the position of the attribute inside a CSV record, or -1 if a is not valid
func (a Attribute) Index() int {
	if !a.Valid() {
		return -1
	}
	return int(a)
}

// Numeric reports whether the attribute compares as an integer rather than as a string
func (a Attribute) Numeric() bool {
	return a == Length
}

// Field returns the raw value of the attribute in b
func (a Attribute) Field(b Book) string {
	switch a {
	case ISBN:
		return b.ISBN
	case Title:
		return b.Title
	case Author:
		return b.Author
	case Length:
		return b.Length
	case DateOfPublication:
		return b.DateOfPublication
	}
	return ""
}

// Compare orders two raw field values the way the attribute sorts them.
// Numeric attributes return a ParseError if either value is not an integer.
func (a Attribute) Compare(x, y string) (int, error) {
	if !a.Numeric() {
		return strings.Compare(x, y), nil
	}
	xi, err := a.parseInt(x)
	if err != nil {
		return 0, err
	}
	yi, err := a.parseInt(y)
	if err != nil {
		return 0, err
	}
	return compareInt(xi, yi), nil
}

// Check reports whether v can be compared under the attribute, so a bad
// value is caught before it reaches the catalog
func (a Attribute) Check(v string) error {
	if !a.Numeric() {
		return nil
	}
	_, err := a.parseInt(v)
	return err
}

func (a Attribute) parseInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, NewParseError(a, v, err)
	}
	return n, nil
}

func compareInt(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Order is the direction of a sort
type Order int

const (
	Ascending Order = iota
	Descending
)

// Orders returns both orders, ascending first
func Orders() []Order {
	return []Order{Ascending, Descending}
}

// ParseOrder accepts "asc" or "desc"
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return ""
}

// Valid reports whether o is Ascending or Descending
func (o Order) Valid() bool {
	return o == Ascending || o == Descending
}

// SnapshotName returns the filename of the snapshot sorted by attr in order o
func SnapshotName(attr Attribute, o Order) string {
	return fmt.Sprintf("sorted_by_%s_%s_data.csv", attr, o)
}
