package catalog

import (
	"context"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/lanrat/csvcatalog/snapfile"
)

// Session owns the in-memory catalog and the snapshots written from it.
// A snapshot may only be read while the catalog still holds exactly the
// records it was sorted from; any mutation invalidates every snapshot until
// the catalog is sorted again. A Session is not safe for concurrent use.
type Session struct {
	config   Config
	records  []Book
	digest   string
	manifest *Manifest
}

// Open loads the catalog file and snapshot manifest named by config.
// config can be nil to use the defaults, or only set the non-default values desired.
func Open(config *Config) (*Session, error) {
	c := mergeConfig(config)
	if err := c.validate(); err != nil {
		return nil, err
	}
	records, err := readCSV(c.CatalogFile, c.FileBufferSize)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("loaded %d books from %s", len(records), c.CatalogFile)
	return newSession(records, c)
}

// New starts a Session over records instead of reading the catalog file.
// Snapshots and the manifest are still read from and written to config.SnapshotDir.
func New(records []Book, config *Config) (*Session, error) {
	c := mergeConfig(config)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return newSession(cloneBooks(records), c)
}

func newSession(records []Book, c *Config) (*Session, error) {
	for _, isbn := range DuplicateISBNs(records) {
		klog.Warningf("ISBN %s appears more than once in the catalog, search and delete will only see one", isbn)
	}
	manifest, err := loadManifest(filepath.Join(c.SnapshotDir, c.ManifestName))
	if err != nil {
		return nil, err
	}
	return &Session{
		config:   *c,
		records:  records,
		digest:   Digest(records),
		manifest: manifest,
	}, nil
}

// Config returns the merged configuration the session runs with
func (s *Session) Config() Config {
	return s.config
}

// Records returns a copy of the catalog in its current order
func (s *Session) Records() []Book {
	return cloneBooks(s.records)
}

// Len returns the number of books in the catalog
func (s *Session) Len() int {
	return len(s.records)
}

// Digest returns the fingerprint of the current catalog
func (s *Session) Digest() string {
	return s.digest
}

// SnapshotPath returns where the snapshot for attr and o is written
func (s *Session) SnapshotPath(attr Attribute, o Order) string {
	return filepath.Join(s.config.SnapshotDir, SnapshotName(attr, o))
}

func (s *Session) manifestPath() string {
	return filepath.Join(s.config.SnapshotDir, s.config.ManifestName)
}

// Sorted reports whether at least one snapshot is fresh for the current catalog
func (s *Session) Sorted() bool {
	for name := range s.manifest.Snapshots {
		if _, ok := s.manifest.fresh(name, s.digest); ok && snapfile.Exists(filepath.Join(s.config.SnapshotDir, name)) {
			return true
		}
	}
	return false
}

// writeSnapshot writes records, already ordered by attr and o, to their snapshot file
func (s *Session) writeSnapshot(records []Book, attr Attribute, o Order) (SnapshotEntry, error) {
	path := s.SnapshotPath(attr, o)
	if err := writeCSV(path, records, s.config.FileBufferSize); err != nil {
		return SnapshotEntry{}, err
	}
	klog.V(2).Infof("new sorted data is available at %s", path)
	return SnapshotEntry{
		Attribute: attr.String(),
		Order:     o.String(),
		Records:   len(records),
		Digest:    s.digest,
		WrittenAt: time.Now().UTC(),
	}, nil
}

// Sort orders the catalog in place by attr in order o and writes its snapshot
func (s *Session) Sort(ctx context.Context, attr Attribute, o Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	klog.V(2).Infof("sorting %d books by %s in %s order", len(s.records), attr, o)
	sorted := cloneBooks(s.records)
	if err := Sort(sorted, attr, o); err != nil {
		return err
	}
	entry, err := s.writeSnapshot(sorted, attr, o)
	if err != nil {
		return err
	}
	s.records = sorted
	s.manifest.Snapshots[SnapshotName(attr, o)] = entry
	return s.manifest.save(s.manifestPath(), s.config.FileBufferSize)
}

// SortAll writes all ten snapshots, one per attribute and order.
// Each snapshot is sorted from its own copy of the catalog, so the session's
// order is unchanged. Up to NumSortWorkers snapshots are produced at once and
// the first failure cancels the rest.
func (s *Session) SortAll(ctx context.Context) error {
	type job struct {
		attr  Attribute
		order Order
	}
	jobs := make([]job, 0, len(Attributes())*len(Orders()))
	for _, a := range Attributes() {
		for _, o := range Orders() {
			jobs = append(jobs, job{a, o})
		}
	}
	entries := make([]SnapshotEntry, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.NumSortWorkers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			klog.V(2).Infof("sorting %d books by %s in %s order", len(s.records), j.attr, j.order)
			records := cloneBooks(s.records)
			if err := Sort(records, j.attr, j.order); err != nil {
				return err
			}
			entry, err := s.writeSnapshot(records, j.attr, j.order)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, j := range jobs {
		s.manifest.Snapshots[SnapshotName(j.attr, j.order)] = entries[i]
	}
	klog.V(1).Infof("wrote %d snapshots of %d books to %s", len(jobs), len(s.records), s.config.SnapshotDir)
	return s.manifest.save(s.manifestPath(), s.config.FileBufferSize)
}

// freshSnapshot returns the path of the snapshot for attr and o, or a
// PreconditionError if it was never written or the catalog changed since
func (s *Session) freshSnapshot(attr Attribute, o Order) (string, error) {
	if !attr.Valid() {
		return "", NewPreconditionError("no sorted snapshot for attribute %d", attr)
	}
	name := SnapshotName(attr, o)
	path := filepath.Join(s.config.SnapshotDir, name)
	e, ok := s.manifest.fresh(name, s.digest)
	if !ok {
		if _, known := s.manifest.Snapshots[name]; known {
			klog.Warningf("snapshot %s is stale, the catalog changed since it was written", path)
		}
		return "", NewPreconditionError("no sorted snapshot available for %s %s, run sort first", attr, o)
	}
	if !snapfile.Exists(path) {
		return "", NewPreconditionError("snapshot %s is missing, run sort first", path)
	}
	klog.V(3).Infof("using snapshot %s written %s", path, e.WrittenAt)
	return path, nil
}

// Snapshot loads the snapshot for attr and o, failing closed if it is not fresh
func (s *Session) Snapshot(attr Attribute, o Order) ([]Book, error) {
	path, err := s.freshSnapshot(attr, o)
	if err != nil {
		return nil, err
	}
	return readCSV(path, s.config.FileBufferSize)
}

// Search looks term up in the ascending snapshot for attr. The ascending
// snapshot is always used, whatever order the catalog was last shown in.
func (s *Session) Search(attr Attribute, term string) (Book, error) {
	snapshot, err := s.Snapshot(attr, Ascending)
	if err != nil {
		return Book{}, err
	}
	return Search(term, attr, snapshot)
}

// invalidate forgets every snapshot, on disk first so a failure leaves the catalog untouched
func (s *Session) invalidate() error {
	if len(s.manifest.Snapshots) == 0 {
		return nil
	}
	prev := s.manifest.Snapshots
	s.manifest.invalidate()
	if err := s.manifest.save(s.manifestPath(), s.config.FileBufferSize); err != nil {
		s.manifest.Snapshots = prev
		return err
	}
	return nil
}

// Add appends b to the catalog and invalidates every snapshot.
// It does not sort; call SortAll before searching again.
// A book whose ISBN is already present is rejected with a DuplicateError.
func (s *Session) Add(b Book) error {
	if indexOfISBN(s.records, b.ISBN) >= 0 {
		return &DuplicateError{ISBN: b.ISBN}
	}
	if err := s.invalidate(); err != nil {
		return err
	}
	s.records = Add(s.records, b)
	s.digest = Digest(s.records)
	klog.V(2).Infof("added book with ISBN %s", b.ISBN)
	return nil
}

// Delete removes the book with isbn and rewrites all ten snapshots
func (s *Session) Delete(ctx context.Context, isbn string) error {
	index := indexOfISBN(s.records, isbn)
	if index < 0 {
		return NewNotFoundError(ISBN, isbn)
	}
	if err := s.invalidate(); err != nil {
		return err
	}
	records, err := Delete(isbn, s.records)
	if err != nil {
		return err
	}
	s.records = records
	s.digest = Digest(s.records)
	klog.V(2).Infof("deleted the book with ISBN %s at index %d", isbn, index)
	return s.SortAll(ctx)
}

// Save writes the catalog back to the catalog file
func (s *Session) Save() error {
	if err := writeCSV(s.config.CatalogFile, s.records, s.config.FileBufferSize); err != nil {
		return err
	}
	klog.V(2).Infof("saved %d books to %s", len(s.records), s.config.CatalogFile)
	return nil
}
