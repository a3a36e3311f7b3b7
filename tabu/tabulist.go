// Package tabu - the fixed-capacity short-term memory.
//
// The tabu list is a ring of exactly 2×tenure slots. Every iteration feeds
// it two entries in a fixed order: the outgoing side first, then the
// incoming side; a side that did not move contributes a placeholder. Each
// push overwrites the oldest slot, so an element stays tabu for precisely
// tenure iterations regardless of which move kinds happen around it.
//
// Slots are tagged variants (element | placeholder), not magic indices:
// a placeholder can never collide with a real element.
//
// Design:
//   - Preallocated ring, O(1) push, zero allocations after construction.
//   - Membership is a linear scan over 2×tenure slots; tenures are small
//     relative to instance sizes, so a set mirror would not pay for itself.
package tabu

// tabuSlot is one ring cell: an element index when occupied, a placeholder
// otherwise.
type tabuSlot struct {
	elem     int
	occupied bool
}

// tabuList is the engine's short-term memory. Zero value is unusable; build
// via newTabuList.
type tabuList struct {
	slots []tabuSlot
	head  int // next write position == oldest slot
}

// newTabuList returns a ring of 2×tenure placeholder slots.
// Contract: tenure > 0 (validated upstream).
//
// Complexity: O(tenure).
func newTabuList(tenure int) *tabuList {
	return &tabuList{slots: make([]tabuSlot, 2*tenure)}
}

// pushElem records element e as tabu, evicting the oldest slot.
//
// Complexity: O(1).
func (t *tabuList) pushElem(e int) {
	t.slots[t.head] = tabuSlot{elem: e, occupied: true}
	t.head = (t.head + 1) % len(t.slots)
}

// pushPlaceholder advances the ring without marking anything tabu. Keeping
// the two-pushes-per-iteration cadence is what makes tenure mean iterations:
// skipping the push would freeze older entries in place.
//
// Complexity: O(1).
func (t *tabuList) pushPlaceholder() {
	t.slots[t.head] = tabuSlot{}
	t.head = (t.head + 1) % len(t.slots)
}

// contains reports whether element e is currently tabu. Placeholders never
// match.
//
// Complexity: O(tenure).
func (t *tabuList) contains(e int) bool {
	var i int
	for i = 0; i < len(t.slots); i++ {
		if t.slots[i].occupied && t.slots[i].elem == e {
			return true
		}
	}

	return false
}
