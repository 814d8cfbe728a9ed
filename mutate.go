package catalog

// Add returns a new slice holding records followed by b.
// No uniqueness check is made here, see Session.Add.
func Add(records []Book, b Book) []Book {
	out := make([]Book, len(records), len(records)+1)
	copy(out, records)
	return append(out, b)
}

// Delete removes the first record whose ISBN equals isbn by shifting every
// later record left one place. If no record matches, records is returned
// unchanged along with a NotFoundError.
func Delete(isbn string, records []Book) ([]Book, error) {
	index := indexOfISBN(records, isbn)
	if index < 0 {
		return records, NewNotFoundError(ISBN, isbn)
	}
	for j := index; j < len(records)-1; j++ {
		records[j] = records[j+1]
	}
	records[len(records)-1] = Book{}
	return records[:len(records)-1], nil
}

// indexOfISBN returns the position of the first record with isbn, or -1
func indexOfISBN(records []Book, isbn string) int {
	for i := range records {
		if records[i].ISBN == isbn {
			return i
		}
	}
	return -1
}
