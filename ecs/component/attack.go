package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// AttackPattern selects how SpawnParticles lays out a volley.
type AttackPattern string

const (
	// PatternStraight fires every particle with the same velocity; origins
	// are spaced Spread pixels apart across the direction of travel.
	PatternStraight AttackPattern = "straight"
	// PatternFan rotates each particle's velocity Spread radians from its
	// neighbour, symmetric around the base direction.
	PatternFan AttackPattern = "fan"
)

// PiercingMode decides what a hit does to a piercing particle.
type PiercingMode string

const (
	// PierceOnce lets a piercing particle pass through its first target and
	// expire on the second distinct one.
	PierceOnce PiercingMode = "once"
	// PierceIgnore expires every particle on its first overlap regardless of
	// the piercing flag.
	PierceIgnore PiercingMode = "ignore"
)

const (
	DefaultParticleLife = 60
	DefaultParticleSize = 8.0
	// MaxParticles caps the particles one attack keeps in flight. Amount
	// itself is not capped; a volley larger than the free room is cut short.
	MaxParticles = 256
)

// Particle is one live projectile owned by an Attack.
type Particle struct {
	Rect     cp.BB
	Velocity cp.Vector
	// Life is the number of ticks left. A particle at or below zero is
	// dropped by the next Advance.
	Life     int
	Piercing bool
	// Hits records targets already struck so a particle resting on a
	// collider does not count the same hit every tick.
	Hits map[uint64]bool
}

// Alive reports whether the particle still takes part in collisions.
func (p *Particle) Alive() bool {
	return p != nil && p.Life > 0
}

// Expire marks the particle for removal on the next Advance.
func (p *Particle) Expire() {
	if p == nil || p.Life <= 0 {
		return
	}
	p.Life = 0
}

// Strike records an overlap with target and applies mode. It reports whether
// the overlap counted as a new hit.
func (p *Particle) Strike(target uint64, mode PiercingMode) bool {
	if !p.Alive() || p.Hits[target] {
		return false
	}
	if p.Hits == nil {
		p.Hits = make(map[uint64]bool)
	}
	p.Hits[target] = true
	if mode == PierceOnce && p.Piercing && len(p.Hits) == 1 {
		return true
	}
	p.Expire()
	return true
}

// Attack is one attack slot of an entity: its volley size, cooldown, and the
// particles it has in flight.
type Attack struct {
	Name string
	// Amount is the number of particles per volley.
	Amount int
	// Piercing only ever goes from false to true; see SetPiercing.
	Piercing       bool
	CooldownFrames int
	LifeFrames     int
	Pattern        AttackPattern
	Spread         float64
	ParticleSize   cp.Vector
	Particles      []*Particle

	cooldown int
}

// Ready reports whether the cooldown allows firing.
func (a *Attack) Ready() bool {
	return a != nil && a.cooldown <= 0
}

// Cooldown returns the ticks left before the attack can fire again.
func (a *Attack) Cooldown() int {
	if a == nil {
		return 0
	}
	return a.cooldown
}

// SetPiercing upgrades the attack so future particles pierce.
func (a *Attack) SetPiercing() {
	if a == nil {
		return
	}
	a.Piercing = true
}

// AddAmount raises the volley size by n. Negative n is ignored.
func (a *Attack) AddAmount(n int) {
	if a == nil || n <= 0 {
		return
	}
	a.Amount += n
}

// SpawnParticles fires a volley of Amount particles centered on origin with
// base velocity, then restarts the cooldown. It reports false and changes
// nothing when the cooldown is running, Amount is not positive, or
// MaxParticles are already in flight.
func (a *Attack) SpawnParticles(velocity, origin cp.Vector) bool {
	if a == nil || !a.Ready() || a.Amount <= 0 {
		return false
	}
	n := min(a.Amount, MaxParticles-len(a.Particles))
	if n <= 0 {
		return false
	}

	life := a.LifeFrames
	if life <= 0 {
		life = DefaultParticleLife
	}
	size := a.ParticleSize
	if size.X <= 0 || size.Y <= 0 {
		size = cp.Vector{X: DefaultParticleSize, Y: DefaultParticleSize}
	}

	mid := float64(n-1) / 2
	across := perpendicular(velocity)
	for i := 0; i < n; i++ {
		offset := float64(i) - mid
		vel := velocity
		center := origin
		switch a.Pattern {
		case PatternFan:
			vel = velocity.Rotate(cp.ForAngle(offset * a.Spread))
		default:
			center = origin.Add(across.Mult(offset * a.Spread))
		}
		a.Particles = append(a.Particles, &Particle{
			Rect:     RectAt(center, size),
			Velocity: vel,
			Life:     life,
			Piercing: a.Piercing,
		})
	}

	a.cooldown = a.CooldownFrames
	return true
}

// Advance runs one tick: the cooldown and every particle's life drop by one,
// particles move by their velocity, and particles at or below zero life are
// removed.
func (a *Attack) Advance() {
	if a == nil {
		return
	}
	if a.cooldown > 0 {
		a.cooldown--
	}
	if len(a.Particles) == 0 {
		return
	}

	live := a.Particles[:0]
	for _, p := range a.Particles {
		if p == nil || p.Life <= 0 {
			continue
		}
		p.Life--
		p.Rect = Translate(p.Rect, p.Velocity)
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(a.Particles); i++ {
		a.Particles[i] = nil
	}
	a.Particles = live
}

// unit vector at a right angle to v, or straight down for a zero vector
func perpendicular(v cp.Vector) cp.Vector {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return cp.Vector{X: 0, Y: 1}
	}
	return cp.Vector{X: -v.Y / l, Y: v.X / l}
}

// Attacks is the ordered attack list of an entity. Index 0 is the primary
// attack that skill upgrades modify.
type Attacks struct {
	List []*Attack
}

// At returns attack i, or nil when i is out of range.
func (a *Attacks) At(i int) *Attack {
	if a == nil || i < 0 || i >= len(a.List) {
		return nil
	}
	return a.List[i]
}

// Primary returns the first attack, or nil.
func (a *Attacks) Primary() *Attack {
	return a.At(0)
}

var AttacksComponent = NewComponent[Attacks]("attacks")
