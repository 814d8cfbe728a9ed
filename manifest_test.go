package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	books := scenarioBooks()
	reversed := []Book{books[1], books[0]}
	assert.Equal(t, Digest(books), Digest(reversed))
	assert.Len(t, Digest(books), 16)

	edited := scenarioBooks()
	edited[0].Title = "C"
	assert.NotEqual(t, Digest(books), Digest(edited))

	assert.NotEqual(t, Digest(books), Digest(Add(books, books[0])))

	// field boundaries are part of the digest
	a := []Book{{ISBN: "1", Title: "23"}}
	b := []Book{{ISBN: "12", Title: "3"}}
	assert.NotEqual(t, Digest(a), Digest(b))
}

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "manifest.yaml")

	m, err := loadManifest(path)
	require.NoError(t, err)
	assert.Empty(t, m.Snapshots)

	written := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.Snapshots[SnapshotName(ISBN, Ascending)] = SnapshotEntry{
		Attribute: "isbn", Order: "asc", Records: 2, Digest: "00000000000000ff", WrittenAt: written,
	}
	require.NoError(t, m.save(path, 0))

	loaded, err := loadManifest(path)
	require.NoError(t, err)
	e, ok := loaded.fresh(SnapshotName(ISBN, Ascending), "00000000000000ff")
	require.True(t, ok)
	assert.Equal(t, 2, e.Records)
	assert.True(t, written.Equal(e.WrittenAt))

	_, ok = loaded.fresh(SnapshotName(ISBN, Ascending), "0000000000000000")
	assert.False(t, ok)
	_, ok = loaded.fresh(SnapshotName(ISBN, Descending), "00000000000000ff")
	assert.False(t, ok)

	loaded.invalidate()
	assert.Empty(t, loaded.Snapshots)
}

func TestManifestCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapshots: [unclosed"), 0o644))

	_, err := loadManifest(path)
	var derr *DiskError
	assert.ErrorAs(t, err, &derr)
}
