package entity

import "hypersnake/game/types"

// ring is a growable double-ended queue of points. Index 0 is the front.
type ring struct {
	buf   []types.Point
	start int
	n     int
}

func newRing(capacity int) ring {
	if capacity < 8 {
		capacity = 8
	}
	return ring{buf: make([]types.Point, capacity)}
}

func (r *ring) len() int { return r.n }

func (r *ring) at(i int) types.Point {
	return r.buf[(r.start+i)%len(r.buf)]
}

func (r *ring) front() types.Point { return r.at(0) }
func (r *ring) back() types.Point  { return r.at(r.n - 1) }

func (r *ring) pushBack(p types.Point) {
	r.reserve()
	r.buf[(r.start+r.n)%len(r.buf)] = p
	r.n++
}

func (r *ring) pushFront(p types.Point) {
	r.reserve()
	r.start = (r.start - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.start] = p
	r.n++
}

func (r *ring) popFront() types.Point {
	p := r.buf[r.start]
	r.start = (r.start + 1) % len(r.buf)
	r.n--
	return p
}

func (r *ring) reserve() {
	if r.n < len(r.buf) {
		return
	}
	grown := make([]types.Point, len(r.buf)*2)
	for i := 0; i < r.n; i++ {
		grown[i] = r.at(i)
	}
	r.buf = grown
	r.start = 0
}
