package catalog

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"sigs.k8s.io/yaml"

	"github.com/lanrat/csvcatalog/snapfile"
)

// SnapshotEntry describes one snapshot file and the catalog state it was sorted from
type SnapshotEntry struct {
	Attribute string    `json:"attribute"`
	Order     string    `json:"order"`
	Records   int       `json:"records"`
	Digest    string    `json:"digest"`
	WrittenAt time.Time `json:"writtenAt"`
}

// Manifest maps snapshot filenames to the entry they were written with
type Manifest struct {
	Snapshots map[string]SnapshotEntry `json:"snapshots"`
}

func newManifest() *Manifest {
	return &Manifest{Snapshots: make(map[string]SnapshotEntry)}
}

// loadManifest reads the manifest at path. A missing manifest is an empty one.
func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return newManifest(), nil
	}
	if err != nil {
		return nil, NewDiskError(err, "read manifest", path)
	}
	m := newManifest()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, NewDiskError(err, "decode manifest", path)
	}
	if m.Snapshots == nil {
		m.Snapshots = make(map[string]SnapshotEntry)
	}
	return m, nil
}

func (m *Manifest) save(path string, bufferSize int) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return NewDiskError(err, "encode manifest", path)
	}
	w, err := snapfile.Create(path, bufferSize)
	if err != nil {
		return NewDiskError(err, "create", path)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return NewDiskError(err, "write", path)
	}
	if err := w.Commit(); err != nil {
		return NewDiskError(err, "commit", path)
	}
	return nil
}

// fresh reports whether the snapshot called name was written from a store with digest
func (m *Manifest) fresh(name, digest string) (SnapshotEntry, bool) {
	e, ok := m.Snapshots[name]
	return e, ok && e.Digest == digest
}

func (m *Manifest) invalidate() {
	m.Snapshots = make(map[string]SnapshotEntry)
}

// Digest fingerprints the multiset of records: the same books in any order
// give the same digest, any added, removed or edited book changes it.
func Digest(records []Book) string {
	var sum uint64
	d := xxhash.New()
	for _, b := range records {
		d.Reset()
		for _, f := range b.Record() {
			var n [binary.MaxVarintLen64]byte
			_, _ = d.Write(n[:binary.PutUvarint(n[:], uint64(len(f)))])
			_, _ = d.WriteString(f)
		}
		sum += d.Sum64()
	}
	return fmt.Sprintf("%016x", sum)
}
