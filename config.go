package catalog

import (
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Config holds configuration settings for a catalog Session
type Config struct {
	CatalogFile    string `json:"catalogFile,omitempty"`    // headerless CSV holding the catalog
	SnapshotDir    string `json:"snapshotDir,omitempty"`    // directory sorted snapshots are written to
	ManifestName   string `json:"manifestName,omitempty"`   // filename of the snapshot manifest inside SnapshotDir
	NumSortWorkers int    `json:"numSortWorkers,omitempty"` // maximum number of snapshots sorted and written at once by SortAll
	FileBufferSize int    `json:"fileBufferSize,omitempty"` // file IO buffer size for each file
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		CatalogFile:    "library_data.csv",
		SnapshotDir:    "data",
		ManifestName:   "manifest.yaml",
		NumSortWorkers: 4,
		FileBufferSize: 1 << 16, // 64k
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file are left
// empty and filled with defaults when the Session is opened.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDiskError(err, "read config", path)
	}
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, &ConfigError{Field: "file", Value: path, Reason: err.Error()}
	}
	return &c, nil
}

// mergeConfig returns a copy of c with any values not set replaced by the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	m := *c
	if m.CatalogFile == "" {
		m.CatalogFile = d.CatalogFile
	}
	if m.SnapshotDir == "" {
		m.SnapshotDir = d.SnapshotDir
	}
	if m.ManifestName == "" {
		m.ManifestName = d.ManifestName
	}
	if m.NumSortWorkers < 1 {
		m.NumSortWorkers = d.NumSortWorkers
	}
	if m.FileBufferSize <= 0 {
		m.FileBufferSize = d.FileBufferSize
	}
	return &m
}

// validate checks the values mergeConfig cannot repair
func (c *Config) validate() error {
	if c.ManifestName != filepath.Base(c.ManifestName) {
		return &ConfigError{Field: "ManifestName", Value: c.ManifestName, Reason: "must be a bare filename"}
	}
	if filepath.Ext(c.ManifestName) == ".csv" {
		return &ConfigError{Field: "ManifestName", Value: c.ManifestName, Reason: "must not use the snapshot extension"}
	}
	return nil
}
