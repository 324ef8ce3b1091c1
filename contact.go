package gesture

// Contact is a snapshot of one active pointer. Delta is the displacement since
// the previous sample for the same ID and is zero for a freshly started contact.
type Contact struct {
	ID       int
	Position Vec2
	Delta    Vec2
}

// Previous returns the position of the sample before this one.
func (c Contact) Previous() Vec2 {
	return c.Position.Sub(c.Delta)
}

// contactTracker owns the ordered set of active contacts. Order is the order
// in which contacts started; updates replace entries in place.
type contactTracker struct {
	contacts []Contact
}

// index returns the position of id in the set, or -1.
func (t *contactTracker) index(id int) int {
	for i := range t.contacts {
		if t.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

// begin appends a new contact with zero delta. Duplicate ids are ignored.
// Reports whether the contact was added.
func (t *contactTracker) begin(id int, pos Vec2) bool {
	if t.index(id) >= 0 {
		return false
	}
	t.contacts = append(t.contacts, Contact{ID: id, Position: pos})
	return true
}

// update records a new position for id and derives its delta. Unknown ids
// are ignored. Reports whether the contact exists.
func (t *contactTracker) update(id int, pos Vec2) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	prev := t.contacts[i].Position
	t.contacts[i] = Contact{ID: id, Position: pos, Delta: pos.Sub(prev)}
	return true
}

// remove drops id from the set, preserving the order of the others.
// Reports whether the contact existed.
func (t *contactTracker) remove(id int) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	copy(t.contacts[i:], t.contacts[i+1:])
	t.contacts[len(t.contacts)-1] = Contact{}
	t.contacts = t.contacts[:len(t.contacts)-1]
	return true
}

// find returns the contact for id.
func (t *contactTracker) find(id int) (Contact, bool) {
	i := t.index(id)
	if i < 0 {
		return Contact{}, false
	}
	return t.contacts[i], true
}

func (t *contactTracker) len() int {
	return len(t.contacts)
}

func (t *contactTracker) at(i int) Contact {
	return t.contacts[i]
}

// snapshot returns a copy of the active contacts safe to hand to callbacks.
func (t *contactTracker) snapshot() []Contact {
	if len(t.contacts) == 0 {
		return nil
	}
	out := make([]Contact, len(t.contacts))
	copy(out, t.contacts)
	return out
}

func (t *contactTracker) clear() {
	for i := range t.contacts {
		t.contacts[i] = Contact{}
	}
	t.contacts = t.contacts[:0]
}
