package catalog_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	catalog "github.com/lanrat/csvcatalog"
)

func ExampleSort() {
	books := []catalog.Book{
		{ISBN: "111", Title: "B", Author: "A2", Length: "100", DateOfPublication: "2020-01-01"},
		{ISBN: "222", Title: "A", Author: "A1", Length: "50", DateOfPublication: "2019-01-01"},
	}
	if err := catalog.Sort(books, catalog.Title, catalog.Ascending); err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range books {
		fmt.Println(b.ISBN, b.Title)
	}
	// Output:
	// 222 A
	// 111 B
}

func ExampleSession() {
	dir, err := os.MkdirTemp("", "catalog-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	config := &catalog.Config{
		CatalogFile: filepath.Join(dir, "library_data.csv"),
		SnapshotDir: filepath.Join(dir, "data"),
	}
	books := []catalog.Book{
		{ISBN: "111", Title: "B", Author: "A2", Length: "100", DateOfPublication: "2020-01-01"},
		{ISBN: "222", Title: "A", Author: "A1", Length: "50", DateOfPublication: "2019-01-01"},
	}
	if err := catalog.WriteCSV(config.CatalogFile, books); err != nil {
		fmt.Println(err)
		return
	}

	session, err := catalog.Open(config)
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := context.Background()
	if err := session.SortAll(ctx); err != nil {
		fmt.Println(err)
		return
	}
	book, err := session.Search(catalog.ISBN, "222")
	fmt.Println(book.Title, err)

	if err := session.Delete(ctx, "222"); err != nil {
		fmt.Println(err)
		return
	}
	_, err = session.Search(catalog.ISBN, "222")
	fmt.Println(err)
	// Output:
	// A <nil>
	// book with ISBN 222 is not present
}
