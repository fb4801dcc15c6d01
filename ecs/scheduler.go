package ecs

// Scheduler runs its systems in insertion order once per tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once and advances the world frame counter.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
	w.frame++
}

// Bind subscribes the scheduler to EventTick on w's bus so each posted tick
// runs one full pass.
func (s *Scheduler) Bind(w *World) *Subscription {
	if s == nil || w == nil {
		return nil
	}
	return w.Events().Subscribe(EventTick, func(Event) { s.Update(w) })
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// Tick posts one EventTick on w's bus.
func Tick(w *World) {
	if w == nil {
		return
	}
	w.Events().Post(Event{Type: EventTick})
}
