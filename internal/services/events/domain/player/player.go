// Package player defines the player snapshot consumed by the event engine
// and the clamp-and-add semantics for applying event effects to it.
package player

// Resource identifies a snapshot field an event effect touches.
type Resource string

const (
	// ResourceCash is unbounded above and floored at zero.
	ResourceCash Resource = "cash"
	// ResourceHeat is police attention pressure, bounded to [0,100].
	ResourceHeat Resource = "heat"
	// ResourceReputation is floored at zero.
	ResourceReputation Resource = "reputation"
	// ResourceEnergy is bounded to [0,100].
	ResourceEnergy Resource = "energy"
	// ResourceHealth is bounded to [0,100].
	ResourceHealth Resource = "health"
	// ResourceXP is a cumulative total, never decremented below zero.
	ResourceXP Resource = "xp"
)

// Valid reports whether r names a known resource.
func (r Resource) Valid() bool {
	switch r {
	case ResourceCash, ResourceHeat, ResourceReputation, ResourceEnergy, ResourceHealth, ResourceXP:
		return true
	default:
		return false
	}
}

// Snapshot is the caller-owned view of a player's resources. The engine
// mutates it through Apply but does not own its lifecycle. Zero values stand
// in for missing fields, so applying effects to a partial snapshot is safe.
type Snapshot struct {
	Level      int
	Cash       int
	Heat       int
	Reputation int
	Energy     int
	Health     int
	XP         int
}

// Delta records one realized resource change for display and telemetry.
type Delta struct {
	Resource Resource
	Value    int
}

// Apply adds value to the named resource with clamp semantics and returns
// the realized delta. Unknown resources are a no-op: the applier boundary
// never fails.
func Apply(s *Snapshot, resource Resource, value int) int {
	if s == nil {
		return 0
	}
	switch resource {
	case ResourceCash:
		return addFloored(&s.Cash, value)
	case ResourceXP:
		return addFloored(&s.XP, value)
	case ResourceReputation:
		return addFloored(&s.Reputation, value)
	case ResourceHeat:
		return addClamped(&s.Heat, value)
	case ResourceHealth:
		return addClamped(&s.Health, value)
	case ResourceEnergy:
		return addClamped(&s.Energy, value)
	default:
		return 0
	}
}

// addFloored adds value and floors the result at zero.
func addFloored(field *int, value int) int {
	before := *field
	after := before + value
	if after < 0 {
		after = 0
	}
	*field = after
	return after - before
}

// addClamped adds value and clamps the result to [0,100].
func addClamped(field *int, value int) int {
	before := *field
	after := before + value
	if after < 0 {
		after = 0
	}
	if after > 100 {
		after = 100
	}
	*field = after
	return after - before
}
