package catalog

import "fmt"

// numFields is the arity of every catalog row
const numFields = 5

// Book is one catalog entry. Every field is kept exactly as it appears in the CSV,
// including Length which is only interpreted as a number when sorting or searching.
type Book struct {
	ISBN              string
	Title             string
	Author            string
	Length            string
	DateOfPublication string
}

// BookFromRecord builds a Book from a positional CSV record
func BookFromRecord(record []string) (Book, error) {
	if len(record) != numFields {
		return Book{}, fmt.Errorf("record has %d fields, want %d", len(record), numFields)
	}
	return Book{
		ISBN:              record[ISBN.Index()],
		Title:             record[Title.Index()],
		Author:            record[Author.Index()],
		Length:            record[Length.Index()],
		DateOfPublication: record[DateOfPublication.Index()],
	}, nil
}

// Record returns the positional CSV form of b
func (b Book) Record() []string {
	record := make([]string, numFields)
	for _, a := range Attributes() {
		record[a.Index()] = a.Field(b)
	}
	return record
}

func cloneBooks(books []Book) []Book {
	return append([]Book(nil), books...)
}
