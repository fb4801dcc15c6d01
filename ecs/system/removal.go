package system

import (
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"go.uber.org/zap"
)

// RemovalSystem destroys entities named by EventEntityRemoved. The bus
// queues events posted during a tick, so removals land after the pass that
// requested them.
type RemovalSystem struct {
	sub     *ecs.Subscription
	removed int
}

func NewRemovalSystem(w *ecs.World) *RemovalSystem {
	s := &RemovalSystem{}
	if w != nil {
		s.sub = w.Events().Subscribe(ecs.EventEntityRemoved, func(evt ecs.Event) {
			if ecs.DestroyEntity(w, evt.Entity) {
				s.removed++
				return
			}
			common.Logger().Debug("removal: entity already gone", zap.Stringer("entity", evt.Entity))
		})
	}
	return s
}

// Removed returns how many entities the system has destroyed.
func (s *RemovalSystem) Removed() int {
	return s.removed
}

// Close stops listening for removal events.
func (s *RemovalSystem) Close() {
	s.sub.Cancel()
}
