// Package keyed provides a string-keyed store with a live-key list that can be
// walked while entries are being removed.
package keyed

import "iter"

// node is an entry in the live-key list. An unlinked node keeps its next
// pointer so a walk that is parked on it can still move forward.
type node[V any] struct {
	key        string
	value      V
	prev, next *node[V]
	removed    bool
}

// Store maps position keys to values. The zero value is not usable; call New.
type Store[V any] struct {
	nodes map[string]*node[V]
	head  *node[V] // most recently inserted
}

func New[V any]() *Store[V] {
	return &Store[V]{nodes: make(map[string]*node[V])}
}

// Put inserts v under key, replacing any existing value. A replaced key keeps
// its place in the live-key list.
func (s *Store[V]) Put(key string, v V) {
	if n, ok := s.nodes[key]; ok {
		n.value = v
		return
	}
	n := &node[V]{key: key, value: v, next: s.head}
	if s.head != nil {
		s.head.prev = n
	}
	s.head = n
	s.nodes[key] = n
}

func (s *Store[V]) Get(key string) (V, bool) {
	n, ok := s.nodes[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (s *Store[V]) Has(key string) bool {
	_, ok := s.nodes[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (s *Store[V]) Delete(key string) bool {
	n, ok := s.nodes[key]
	if !ok {
		return false
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.removed = true
	delete(s.nodes, key)
	return true
}

func (s *Store[V]) Len() int {
	return len(s.nodes)
}

// Reset drops every entry. A walk in progress ends at its next step.
func (s *Store[V]) Reset() {
	for n := s.head; n != nil; n = n.next {
		n.removed = true
	}
	// cut the chain so parked walks see nil instead of old entries
	for n := s.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	clear(s.nodes)
	s.head = nil
}

// Keys yields the live keys, most recently inserted first, each at most once.
// Deleting the key being visited is safe. Deleting a key not yet visited drops
// it from the rest of the walk; keys put during the walk are not visited.
func (s *Store[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := s.head; n != nil; n = skipRemoved(n.next) {
			if !yield(n.key) {
				return
			}
		}
	}
}

// All yields live key/value pairs with the same guarantees as Keys.
func (s *Store[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for n := s.head; n != nil; n = skipRemoved(n.next) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

func skipRemoved[V any](n *node[V]) *node[V] {
	for n != nil && n.removed {
		n = n.next
	}
	return n
}
