package aport

// match classifies how a remaining key fragment relates to a node's prefix.
type match uint8

const (
	matchNone       match = iota // prefix and key diverge before either ends
	matchPrefixFull              // prefix fully consumed, key has a tail
	matchPartial                 // key consumed (or diverged) inside the prefix
	matchExact                   // prefix and key consumed together
)

// node is a point of disambiguation. With the keys "hello" and "helium" in
// the tree, one node stores the shared segment "hel" and links to children
// under the bytes 'l' and 'i'.
type node[V any] struct {
	prefix   string
	value    *V // nil when no key terminates here
	children childSet[V]
}

// comparePrefix classifies key against prefix under byte-wise radix matching
// and reports how many leading bytes they share.
func comparePrefix(prefix, key string) (match, int) {
	limit := min(len(prefix), len(key))

	n := 0
	for n < limit && prefix[n] == key[n] {
		n++
	}

	switch {
	case n == len(prefix) && n == len(key):
		return matchExact, n
	case n == len(prefix):
		return matchPrefixFull, n
	case n == 0:
		return matchNone, 0
	default:
		return matchPartial, n
	}
}

// comparePrefixLen is the optimistic discipline: only lengths are compared,
// no byte of the prefix is ever read. The bytes a radix comparison would have
// verified are trusted to match.
func comparePrefixLen(prefix, key string) (match, int) {
	switch {
	case len(prefix) < len(key):
		return matchPrefixFull, len(prefix)
	case len(prefix) == len(key):
		return matchExact, len(prefix)
	default:
		return matchNone, 0
	}
}
