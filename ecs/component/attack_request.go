package component

// AttackRequest holds at most one pending attack index. The zero value has
// nothing pending. Input or AI code calls Request; the combat system consumes
// and clears it in the same tick.
type AttackRequest struct {
	index   int
	pending bool
}

// Request marks attack i as pending, replacing any earlier request.
// Negative indexes clear the request.
func (r *AttackRequest) Request(i int) {
	if r == nil {
		return
	}
	if i < 0 {
		r.Clear()
		return
	}
	r.index = i
	r.pending = true
}

// Pending returns the requested index and whether one is set.
func (r *AttackRequest) Pending() (int, bool) {
	if r == nil || !r.pending {
		return 0, false
	}
	return r.index, true
}

// Clear drops any pending request.
func (r *AttackRequest) Clear() {
	if r == nil {
		return
	}
	r.index = 0
	r.pending = false
}

var AttackRequestComponent = NewComponent[AttackRequest]("attack_request")
