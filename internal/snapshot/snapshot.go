package snapshot

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/surface"
)

// Store is the interface for snapshot storage backends.
type Store interface {
	// Put stores snap under snap.Name, replacing any previous snapshot.
	Put(ctx context.Context, snap *Snapshot) error

	// Get loads the snapshot stored under name.
	Get(ctx context.Context, name string) (*Snapshot, error)

	// List returns the stored snapshot names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Delete removes a snapshot. Deleting a missing snapshot is not an
	// error.
	Delete(ctx context.Context, name string) error
}

// Snapshot is a rendered surface at one point in time.
type Snapshot struct {
	Name    string        `json:"name"`
	Created time.Time     `json:"created"`
	HTML    string        `json:"html"`
	Tree    *surface.Tree `json:"tree"`
	Journal []string      `json:"journal,omitempty"`
}

// New captures the children of container.
func New(name string, container *surface.MemNode) *Snapshot {
	return &Snapshot{
		Name:    name,
		Created: time.Now().UTC(),
		HTML:    surface.InnerHTML(container),
		Tree:    surface.Snapshot(container),
	}
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// ValidName reports whether name can be used as a snapshot name. Names
// map directly to file names and object keys.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

func encode(snap *Snapshot) ([]byte, error) {
	if snap == nil || !ValidName(snap.Name) {
		name := ""
		if snap != nil {
			name = snap.Name
		}
		return nil, errors.New(errors.CodeSnapshotWrite).
			WithSubject("invalid name %q", name)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, errors.New(errors.CodeSnapshotWrite).WithSubject("%s", snap.Name).Wrap(err)
	}
	return append(data, '\n'), nil
}

func decode(name string, data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.New(errors.CodeSnapshotRead).WithSubject("%s", name).Wrap(err)
	}
	return &snap, nil
}

func notFound(name string) error {
	return errors.New(errors.CodeSnapshotNotFound).WithSubject("%s", name)
}

func invalidName(name string) error {
	return errors.New(errors.CodeSnapshotRead).WithSubject("invalid name %q", name)
}
