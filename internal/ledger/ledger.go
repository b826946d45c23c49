// Package ledger maps clue text to the suspect it implicates using a
// fixed-bucket hash table with chaining. The bucket count is chosen once per
// session; there is no resizing and no per-entry deletion.
package ledger

import "errors"

var ErrBadBucketCount = errors.New("ledger: bucket count must be positive")

type entry struct {
	key   string
	value string
	next  *entry
}

// Ledger is a chained hash table from clue text to suspect name.
type Ledger struct {
	buckets []*entry
	size    int
}

// New allocates an empty ledger with the given number of buckets.
func New(bucketCount int) (*Ledger, error) {
	if bucketCount < 1 {
		return nil, ErrBadBucketCount
	}
	return &Ledger{buckets: make([]*entry, bucketCount)}, nil
}

// hashKey is the 33-multiplier accumulator seeded with 5381, folding each
// byte in after ASCII-lowercasing it, so bucketing is case-insensitive.
func hashKey(key string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		h = h*33 + uint32(c)
	}
	return h
}

func (l *Ledger) bucketFor(key string) int {
	return int(hashKey(key) % uint32(len(l.buckets)))
}

// Insert records key→value by prepending to the bucket chain. Existing
// entries under the same key are not checked: the newer binding shadows the
// older on lookup, and the older stays in the chain until Teardown. That
// keep-newest policy is deliberate, so a clue may be re-attributed without
// losing history.
func (l *Ledger) Insert(key, value string) {
	b := l.bucketFor(key)
	l.buckets[b] = &entry{key: key, value: value, next: l.buckets[b]}
	l.size++
}

// Lookup walks the bucket chain and returns the value of the first entry
// whose key exactly equals the query. Colliding entries with different keys
// share a chain but are never confused, because equality is checked on the
// full key, not the hash. A miss is an absence, not an error.
func (l *Ledger) Lookup(key string) (string, bool) {
	for e := l.buckets[l.bucketFor(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Len reports the number of entries held, shadowed ones included.
func (l *Ledger) Len() int {
	return l.size
}

// Teardown releases every chain entry across every bucket.
func (l *Ledger) Teardown() {
	for i, e := range l.buckets {
		for e != nil {
			next := e.next
			e.next = nil
			e = next
			l.size--
		}
		l.buckets[i] = nil
	}
}
