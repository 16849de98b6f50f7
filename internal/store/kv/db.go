// Package kv is the embedded Pebble backend. It keeps every record under a
// typed key prefix and counts with a merge operator, so increments are
// applied by the storage engine rather than by read-modify-write.
package kv

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/pebble"
	"github.com/matheus3301/dmsync/internal/store"
)

const lockStripes = 64

// DB is a store.Backend on top of a Pebble directory. Pebble holds an
// exclusive lock on the directory, so one process owns the data and the
// in-process stripe locks are enough to serialize conflicting writes.
type DB struct {
	pdb   *pebble.DB
	clock store.Clock
	seq   atomic.Int64
	locks [lockStripes]sync.Mutex
}

var _ store.Backend = (*DB)(nil)

// Open opens (or creates) the Pebble store in dir.
func Open(dir string, clock store.Clock) (*DB, error) {
	if clock == nil {
		clock = store.SystemClock{}
	}
	pdb, err := pebble.Open(dir, &pebble.Options{Merger: counterMerger})
	if err != nil {
		return nil, fmt.Errorf("open pebble: %w", err)
	}
	db := &DB{pdb: pdb, clock: clock}
	maxSeq, err := db.scanMaxSeq()
	if err != nil {
		_ = pdb.Close()
		return nil, fmt.Errorf("scan sequence: %w", err)
	}
	db.seq.Store(maxSeq)
	return db, nil
}

// Close flushes and closes the store.
func (db *DB) Close() error {
	return db.pdb.Close()
}

// lock returns the stripe guarding name.
func (db *DB) lock(name string) *sync.Mutex {
	return &db.locks[xxhash.Sum64String(name)%lockStripes]
}

func (db *DB) scanMaxSeq() (int64, error) {
	iter, err := db.pdb.NewIter(prefixOptions([]byte(prefixMessage)))
	if err != nil {
		return 0, err
	}
	defer func() { _ = iter.Close() }()

	var maxSeq int64
	for iter.First(); iter.Valid(); iter.Next() {
		k := iter.Key()
		if len(k) < 8 {
			continue
		}
		if seq := int64(binary.BigEndian.Uint64(k[len(k)-8:])); seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, iter.Error()
}

// Key layout. Caller-supplied ids are hex encoded so they can never
// collide with the separators.
//
//	m/<conv>/<timestamp><seq>  message JSON, iterated in display order
//	i/<message id>             message key
//	u/<owner>/<conv>           unread counter
//	p/<user>                   presence flag
//	r/<namespace>              revision counter
const (
	prefixMessage  = "m/"
	prefixIndex    = "i/"
	prefixUnread   = "u/"
	prefixPresence = "p/"
	prefixRev      = "r/"
)

func conversationPrefix(conversationKey string) []byte {
	return []byte(prefixMessage + hex.EncodeToString([]byte(conversationKey)) + "/")
}

func messageKey(conversationKey string, timestamp, seq int64) []byte {
	k := conversationPrefix(conversationKey)
	k = binary.BigEndian.AppendUint64(k, uint64(timestamp))
	return binary.BigEndian.AppendUint64(k, uint64(seq))
}

func indexKey(messageID string) []byte {
	return []byte(prefixIndex + messageID)
}

func unreadPrefix(ownerID string) []byte {
	return []byte(prefixUnread + hex.EncodeToString([]byte(ownerID)) + "/")
}

func unreadKey(conversationKey, ownerID string) []byte {
	return append(unreadPrefix(ownerID), hex.EncodeToString([]byte(conversationKey))...)
}

func presenceKey(userID string) []byte {
	return []byte(prefixPresence + hex.EncodeToString([]byte(userID)))
}

func revKey(namespace string) []byte {
	return []byte(prefixRev + namespace)
}

// prefixOptions bounds an iterator to keys starting with prefix.
func prefixOptions(prefix []byte) *pebble.IterOptions {
	upper := bytes.Clone(prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		upper[i]++
		if upper[i] != 0 {
			return &pebble.IterOptions{LowerBound: prefix, UpperBound: upper[:i+1]}
		}
	}
	return &pebble.IterOptions{LowerBound: prefix}
}

// reader is the read surface shared by *pebble.DB and *pebble.Snapshot.
type reader interface {
	Get(key []byte) ([]byte, io.Closer, error)
	NewIter(o *pebble.IterOptions) (*pebble.Iterator, error)
}

// getValue copies the value at key. found is false when the key is absent.
func getValue(r reader, key []byte) (val []byte, found bool, err error) {
	v, closer, err := r.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	val = bytes.Clone(v)
	_ = closer.Close()
	return val, true, nil
}

func readCounter(r reader, key []byte) (int64, error) {
	v, found, err := getValue(r, key)
	if err != nil || !found {
		return 0, err
	}
	return decodeCounter(v)
}
