package store

import (
	"bytes"
	"sort"

	"github.com/EvoNetworkLtd/evochain-core/common"
)

// MemDB is an in-memory Database. It backs tests and tooling; a real host
// plugs in its own durable store.
type MemDB struct {
	data map[string][]byte
}

func NewMemDB() *MemDB {
	return &MemDB{data: make(map[string][]byte)}
}

func (db *MemDB) Fork() Fork {
	return &MemFork{db: db, writes: make(map[string][]byte)}
}

func (db *MemDB) Close() error { return nil }

// Len returns the number of committed entries.
func (db *MemDB) Len() int { return len(db.data) }

// Dump returns a copy of the committed key space. Test helper.
func (db *MemDB) Dump() map[string][]byte {
	out := make(map[string][]byte, len(db.data))
	for k, v := range db.data {
		out[k] = common.CopyBytes(v)
	}
	return out
}

// MemFork overlays uncommitted writes on a MemDB.
type MemFork struct {
	db     *MemDB
	writes map[string][]byte
}

func (f *MemFork) Get(key []byte) ([]byte, error) {
	if v, ok := f.writes[string(key)]; ok {
		return common.CopyBytes(v), nil
	}
	if v, ok := f.db.data[string(key)]; ok {
		return common.CopyBytes(v), nil
	}
	return nil, ErrNotExist
}

func (f *MemFork) Put(key, value []byte) error {
	f.writes[string(key)] = common.CopyBytes(value)
	return nil
}

func (f *MemFork) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	keys := make([]string, 0, len(f.db.data)+len(f.writes))
	seen := make(map[string]struct{})
	for k := range f.writes {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
			seen[k] = struct{}{}
		}
	}
	for k := range f.db.data {
		if _, ok := seen[k]; ok {
			continue
		}
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, ok := f.writes[k]
		if !ok {
			v = f.db.data[k]
		}
		if !fn([]byte(k), common.CopyBytes(v)) {
			break
		}
	}
	return nil
}

// Commit merges the fork's writes into the parent database. Called by the
// host, never by the ledger core.
func (f *MemFork) Commit() error {
	for k, v := range f.writes {
		f.db.data[k] = v
	}
	f.writes = make(map[string][]byte)
	return nil
}
