package aport

import (
	"github.com/hideo55/go-popcount"
)

// childSet maps the first byte of each child's prefix to that child: a
// 256-bit occupancy bitmap plus a dense node slice kept in byte order,
// indexed by rank. Keys are unique by construction, and iteration over
// nodes is automatically byte-ordered.
type childSet[V any] struct {
	bitmap [4]uint64
	nodes  []*node[V]
}

func (cs *childSet[V]) has(b byte) bool {
	return cs.bitmap[b>>6]&(uint64(1)<<(b&0x3F)) != 0
}

// rank counts the occupied slots below b.
func (cs *childSet[V]) rank(b byte) int {
	ofs := b >> 6
	cnt := popcount.Count(cs.bitmap[ofs] & (uint64(1)<<(b&0x3F) - 1))
	for i := byte(0); i < ofs; i++ {
		cnt += popcount.Count(cs.bitmap[i])
	}
	return int(cnt)
}

func (cs *childSet[V]) get(b byte) (*node[V], bool) {
	if !cs.has(b) {
		return nil, false
	}
	return cs.nodes[cs.rank(b)], true
}

// put stores n under b, replacing any previous child there.
func (cs *childSet[V]) put(b byte, n *node[V]) {
	idx := cs.rank(b)
	if cs.has(b) {
		cs.nodes[idx] = n
		return
	}
	cs.bitmap[b>>6] |= uint64(1) << (b & 0x3F)
	cs.nodes = append(cs.nodes, nil)
	copy(cs.nodes[idx+1:], cs.nodes[idx:])
	cs.nodes[idx] = n
}

func (cs *childSet[V]) delete(b byte) {
	if !cs.has(b) {
		return
	}
	idx := cs.rank(b)
	copy(cs.nodes[idx:], cs.nodes[idx+1:])
	cs.nodes[len(cs.nodes)-1] = nil
	cs.nodes = cs.nodes[:len(cs.nodes)-1]
	cs.bitmap[b>>6] &^= uint64(1) << (b & 0x3F)
}

func (cs *childSet[V]) len() int {
	return len(cs.nodes)
}

// only returns the single child, or nil unless exactly one is present.
func (cs *childSet[V]) only() *node[V] {
	if len(cs.nodes) != 1 {
		return nil
	}
	return cs.nodes[0]
}
