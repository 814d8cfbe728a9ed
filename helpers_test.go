package catalog

import (
	"fmt"
	"math/rand"
)

// scenarioBooks is the two book catalog used throughout the package tests
func scenarioBooks() []Book {
	return []Book{
		{ISBN: "111", Title: "B", Author: "A2", Length: "100", DateOfPublication: "2020-01-01"},
		{ISBN: "222", Title: "A", Author: "A1", Length: "50", DateOfPublication: "2019-01-01"},
	}
}

// makeTestBooks returns n books with shuffled, partly repeated field values
func makeTestBooks(n int, seed int64) []Book {
	r := rand.New(rand.NewSource(seed))
	books := make([]Book, n)
	for i := range books {
		books[i] = Book{
			ISBN:              fmt.Sprintf("978%010d", r.Intn(1e9)),
			Title:             fmt.Sprintf("Title %d", r.Intn(n/2+1)),
			Author:            fmt.Sprintf("Author %c", 'A'+r.Intn(26)),
			Length:            fmt.Sprintf("%d", r.Intn(1200)),
			DateOfPublication: fmt.Sprintf("%04d-%02d-%02d", 1900+r.Intn(125), 1+r.Intn(12), 1+r.Intn(28)),
		}
	}
	return books
}

func isbns(books []Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ISBN
	}
	return out
}
