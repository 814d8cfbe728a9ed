package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortScenario(t *testing.T) {
	books := scenarioBooks()
	require.NoError(t, Sort(books, Title, Ascending))
	assert.Equal(t, []string{"222", "111"}, isbns(books))

	books = scenarioBooks()
	require.NoError(t, Sort(books, Length, Descending))
	assert.Equal(t, []string{"111", "222"}, isbns(books))
	assert.Equal(t, "100", books[0].Length)
	assert.Equal(t, "50", books[1].Length)
}

func TestSortNumericLength(t *testing.T) {
	books := []Book{
		{ISBN: "a", Length: "100"},
		{ISBN: "b", Length: "9"},
		{ISBN: "c", Length: "25"},
	}
	require.NoError(t, Sort(books, Length, Ascending))
	assert.Equal(t, []string{"b", "c", "a"}, isbns(books))

	require.NoError(t, Sort(books, ISBN, Descending))
	assert.Equal(t, []string{"c", "b", "a"}, isbns(books))
}

func TestSortMonotonic(t *testing.T) {
	for _, size := range []int{0, 1, 2, 3, 17, 500} {
		for _, a := range Attributes() {
			for _, o := range Orders() {
				t.Run(fmt.Sprintf("%d/%s/%s", size, a, o), func(t *testing.T) {
					books := makeTestBooks(size, int64(size))
					require.NoError(t, Sort(books, a, o))
					assert.Len(t, books, size)

					sorted, err := IsSorted(books, a, o)
					require.NoError(t, err)
					assert.True(t, sorted)
				})
			}
		}
	}
}

func TestSortKeepsRecords(t *testing.T) {
	books := makeTestBooks(200, 7)
	want := Digest(books)
	require.NoError(t, Sort(books, Author, Descending))
	assert.Equal(t, want, Digest(books))
}

func TestSortIdempotent(t *testing.T) {
	books := makeTestBooks(300, 3)
	require.NoError(t, Sort(books, Title, Ascending))
	once := cloneBooks(books)

	require.NoError(t, Sort(books, Title, Ascending))
	assert.Equal(t, once, books)

	require.NoError(t, Sort(books, Length, Descending))
	once = cloneBooks(books)
	require.NoError(t, Sort(books, Length, Descending))
	assert.Equal(t, once, books)
}

func TestSortParseErrorLeavesRecords(t *testing.T) {
	books := []Book{
		{ISBN: "1", Length: "30"},
		{ISBN: "2", Length: "10"},
		{ISBN: "3", Length: "many"},
	}
	before := cloneBooks(books)

	err := Sort(books, Length, Ascending)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "many", perr.Value)
	assert.Equal(t, before, books)

	// a bad length only matters when sorting by length
	require.NoError(t, Sort(books, ISBN, Descending))
	assert.Equal(t, []string{"3", "2", "1"}, isbns(books))
}

func TestSortInvalidArguments(t *testing.T) {
	books := scenarioBooks()
	assert.ErrorIs(t, Sort(books, Attribute(9), Ascending), ErrUnknownAttribute)
	assert.ErrorIs(t, Sort(books, Title, Order(3)), ErrUnknownOrder)
	assert.Equal(t, scenarioBooks(), books)
}

func TestSortAllEqual(t *testing.T) {
	books := make([]Book, 50)
	for i := range books {
		books[i] = Book{ISBN: fmt.Sprint(i), Author: "same", Length: "1"}
	}
	require.NoError(t, Sort(books, Author, Ascending))
	require.NoError(t, Sort(books, Length, Descending))
	assert.Len(t, books, 50)
}

func TestIsSorted(t *testing.T) {
	books := scenarioBooks()
	sorted, err := IsSorted(books, Title, Ascending)
	require.NoError(t, err)
	assert.False(t, sorted)

	sorted, err = IsSorted(books, Title, Descending)
	require.NoError(t, err)
	assert.True(t, sorted)

	_, err = IsSorted([]Book{{Length: "x"}, {Length: "1"}}, Length, Ascending)
	assert.Error(t, err)
}
