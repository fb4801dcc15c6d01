package component

// Health is the hit-point record of a player or enemy.
type Health struct {
	Points int
	Max    int
}

// NewHealth creates a Health at full points.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Points: max, Max: max}
}

// Heal restores amount points, clamped to Max. It reports the points actually
// gained.
func (h *Health) Heal(amount int) int {
	if h == nil || amount <= 0 {
		return 0
	}
	before := h.Points
	h.Points = min(h.Points+amount, h.Max)
	if h.Points < before {
		// a record already above Max is pulled back down to it
		return 0
	}
	return h.Points - before
}

// SetMax sets the maximum and clamps Points to it.
func (h *Health) SetMax(v int) {
	if h == nil {
		return
	}
	if v <= 0 {
		v = 1
	}
	h.Max = v
	if h.Points > h.Max {
		h.Points = h.Max
	}
}

var HealthComponent = NewComponent[Health]("health")
