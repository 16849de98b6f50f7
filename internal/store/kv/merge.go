package kv

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cockroachdb/pebble"
)

// counterMerger sums 8-byte big-endian deltas. A Set on a counter key
// replaces the base, so reset is a plain Set of zero.
var counterMerger = &pebble.Merger{
	Name: "dmsync.counter.v1",
	Merge: func(key, value []byte) (pebble.ValueMerger, error) {
		n, err := decodeCounter(value)
		if err != nil {
			return nil, err
		}
		return &counterMerge{sum: n}, nil
	},
}

type counterMerge struct {
	sum int64
}

func (c *counterMerge) MergeNewer(value []byte) error {
	n, err := decodeCounter(value)
	if err != nil {
		return err
	}
	c.sum += n
	return nil
}

func (c *counterMerge) MergeOlder(value []byte) error {
	return c.MergeNewer(value)
}

func (c *counterMerge) Finish(includesBase bool) ([]byte, io.Closer, error) {
	return encodeCounter(c.sum), nil, nil
}

func encodeCounter(n int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(n))
}

func decodeCounter(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("counter value has %d bytes, want 8", len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

var one = encodeCounter(1)
