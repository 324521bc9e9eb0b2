package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vango-dev/vrec/internal/errors"
)

const fileExt = ".json"

// DiskStore stores snapshots as JSON files in a directory.
type DiskStore struct {
	dir string
}

var _ Store = (*DiskStore)(nil)

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New(errors.CodeSnapshotWrite).WithSubject("%s", dir).Wrap(err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the store directory.
func (s *DiskStore) Dir() string { return s.dir }

func (s *DiskStore) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Put implements Store.
func (s *DiskStore) Put(ctx context.Context, snap *Snapshot) error {
	data, err := encode(snap)
	if err != nil {
		return err
	}

	// Write then rename so readers never see a partial file.
	tmp, err := os.CreateTemp(s.dir, ".put-*")
	if err != nil {
		return errors.New(errors.CodeSnapshotWrite).WithSubject("%s", snap.Name).Wrap(err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.New(errors.CodeSnapshotWrite).WithSubject("%s", snap.Name).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.New(errors.CodeSnapshotWrite).WithSubject("%s", snap.Name).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), s.path(snap.Name)); err != nil {
		return errors.New(errors.CodeSnapshotWrite).WithSubject("%s", snap.Name).Wrap(err)
	}
	return nil
}

// Get implements Store.
func (s *DiskStore) Get(ctx context.Context, name string) (*Snapshot, error) {
	if !ValidName(name) {
		return nil, invalidName(name)
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(name)
		}
		return nil, errors.New(errors.CodeSnapshotRead).WithSubject("%s", name).Wrap(err)
	}
	return decode(name, data)
}

// List implements Store.
func (s *DiskStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.New(errors.CodeSnapshotRead).WithSubject("%s", s.dir).Wrap(err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), fileExt)
		if !ok || !ValidName(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete implements Store.
func (s *DiskStore) Delete(ctx context.Context, name string) error {
	if !ValidName(name) {
		return invalidName(name)
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return errors.New(errors.CodeSnapshotWrite).WithSubject("%s", name).Wrap(err)
	}
	return nil
}
