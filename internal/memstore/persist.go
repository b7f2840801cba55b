package memstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huemot/atlas/pkg/types"
)

// SnapshotFile is the name of the durable snapshot inside the data dir.
const SnapshotFile = "snapshot.json"

// Persister reads and writes the durable snapshot. Load is called once at
// store construction; Save after every mutation. Save failures never roll
// back the in-memory mutation.
type Persister interface {
	// Load returns the stored snapshot, with ok=false when none exists.
	Load() (snap types.Snapshot, ok bool, err error)

	// Save writes the full snapshot, replacing any previous one.
	Save(snap types.Snapshot) error
}

// FilePersister stores the snapshot as one JSON file. Two processes using
// the same file overwrite each other wholesale on their next mutation;
// last writer wins at snapshot granularity.
type FilePersister struct {
	path string
}

// NewFilePersister returns a persister writing to dataDir/snapshot.json.
func NewFilePersister(dataDir string) *FilePersister {
	return &FilePersister{path: filepath.Join(dataDir, SnapshotFile)}
}

// Load reads and parses the snapshot file. A missing file is not an
// error: it reports ok=false so the store falls back to seed data.
func (p *FilePersister) Load() (types.Snapshot, bool, error) {
	var snap types.Snapshot
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return snap, false, nil
		}
		return snap, false, fmt.Errorf("reading %s: %w", p.path, err)
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, false, fmt.Errorf("parsing %s: %w", p.path, err)
	}
	return snap, true, nil
}

// Save writes the snapshot atomically using the temp-file, fsync, rename
// pattern so a crash mid-write never leaves a truncated snapshot.
func (p *FilePersister) Save(snap types.Snapshot) error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, p.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Discard is a Persister that stores nothing. Used for ephemeral stores
// and tests that do not care about durability.
type Discard struct{}

func (Discard) Load() (types.Snapshot, bool, error) { return types.Snapshot{}, false, nil }
func (Discard) Save(types.Snapshot) error           { return nil }
