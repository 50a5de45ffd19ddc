// Package cas implements the content addressed report cache.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using a file-per-fingerprint strategy.
type Store struct {
	dir string
}

// NewStore creates a new ReportStore backed by the directory at the given path.
// The directory is created lazily on the first Put.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get retrieves the report cached under fingerprint.
func (s *Store) Get(fingerprint string) (*domain.Report, error) {
	filename := s.getFilename(fingerprint)
	//nolint:gosec // Path is constructed from the cache directory and a sanitized fingerprint
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	return &report, nil
}

// Put stores the report under its fingerprint.
// The file is written next to its destination and renamed into place.
func (s *Store) Put(report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, ".report-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.dir)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp.Name())
	}

	filename := s.getFilename(report.Fingerprint)
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Clean removes the cache directory and everything in it.
func (s *Store) Clean() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clean report cache"), "path", s.dir)
	}
	return nil
}

func (s *Store) getFilename(fingerprint string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, fingerprint)
	return filepath.Join(s.dir, name+".json")
}
