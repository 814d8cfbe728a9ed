package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/lanrat/csvcatalog/snapfile"
)

// DecodeBooks reads headerless five field CSV rows from r
func DecodeBooks(r io.Reader) ([]Book, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = numFields
	books := make([]Book, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		book, err := BookFromRecord(record)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// EncodeBooks writes books to w as headerless CSV rows
func EncodeBooks(w io.Writer, books []Book) error {
	writer := csv.NewWriter(w)
	for _, b := range books {
		if err := writer.Write(b.Record()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV loads every book stored in the CSV file at path
func ReadCSV(path string) ([]Book, error) {
	return readCSV(path, DefaultConfig().FileBufferSize)
}

// WriteCSV replaces the file at path with books. The file is written to a
// temporary sibling first so a failed write never leaves a truncated catalog.
func WriteCSV(path string, books []Book) error {
	return writeCSV(path, books, DefaultConfig().FileBufferSize)
}

func readCSV(path string, bufferSize int) ([]Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDiskError(err, "open", path)
	}
	defer f.Close()

	books, err := DecodeBooks(bufio.NewReaderSize(f, bufferSize))
	if err != nil {
		return nil, NewDiskError(err, "read", path)
	}
	return books, nil
}

func writeCSV(path string, books []Book, bufferSize int) error {
	w, err := snapfile.Create(path, bufferSize)
	if err != nil {
		return NewDiskError(err, "create", path)
	}
	if err := EncodeBooks(w, books); err != nil {
		_ = w.Close()
		return NewDiskError(err, "write", path)
	}
	if err := w.Commit(); err != nil {
		return NewDiskError(err, "commit", path)
	}
	return nil
}
