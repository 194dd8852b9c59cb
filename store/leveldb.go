package store

import (
	"bytes"
	"sort"

	"github.com/EvoNetworkLtd/evochain-core/common"
	"github.com/EvoNetworkLtd/evochain-core/common/log"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LDBDatabase is a LevelDB backed Database.
type LDBDatabase struct {
	db *leveldb.DB
}

// NewLDBDatabase opens (or creates) a LevelDB store at the given path.
func NewLDBDatabase(path string) (*LDBDatabase, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		log.Errorf("open leveldb at %s fail: %v", path, err)
		return nil, err
	}
	return &LDBDatabase{db: db}, nil
}

func (db *LDBDatabase) Fork() Fork {
	return &LDBFork{db: db.db, writes: make(map[string][]byte)}
}

func (db *LDBDatabase) Close() error {
	return db.db.Close()
}

// LDBFork overlays uncommitted writes on a LevelDB database. Commit flushes
// them in a single batch.
type LDBFork struct {
	db     *leveldb.DB
	writes map[string][]byte
}

func (f *LDBFork) Get(key []byte) ([]byte, error) {
	if v, ok := f.writes[string(key)]; ok {
		return common.CopyBytes(v), nil
	}
	v, err := f.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (f *LDBFork) Put(key, value []byte) error {
	f.writes[string(key)] = common.CopyBytes(value)
	return nil
}

func (f *LDBFork) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	staged := make([]string, 0, len(f.writes))
	for k := range f.writes {
		if bytes.HasPrefix([]byte(k), prefix) {
			staged = append(staged, k)
		}
	}
	sort.Strings(staged)

	it := f.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	// merge the staged keys with the database iterator; staged values shadow
	// committed ones
	next := it.Next()
	for _, sk := range staged {
		for next && bytes.Compare(it.Key(), []byte(sk)) < 0 {
			if !fn(common.CopyBytes(it.Key()), common.CopyBytes(it.Value())) {
				return it.Error()
			}
			next = it.Next()
		}
		if next && bytes.Equal(it.Key(), []byte(sk)) {
			next = it.Next()
		}
		if !fn([]byte(sk), common.CopyBytes(f.writes[sk])) {
			return it.Error()
		}
	}
	for next {
		if !fn(common.CopyBytes(it.Key()), common.CopyBytes(it.Value())) {
			break
		}
		next = it.Next()
	}
	return it.Error()
}

// Commit writes the fork's changes to LevelDB atomically.
func (f *LDBFork) Commit() error {
	batch := new(leveldb.Batch)
	for k, v := range f.writes {
		batch.Put([]byte(k), v)
	}
	if err := f.db.Write(batch, nil); err != nil {
		log.Errorf("commit fork fail: %v", err)
		return err
	}
	f.writes = make(map[string][]byte)
	return nil
}
