// Package ledger tracks the generated life events of one player: the
// currently active instances awaiting a decision and a bounded history of
// resolved ones.
package ledger

import (
	"strconv"
	"time"

	domainerrors "github.com/hardluck-games/streetlife/internal/errors"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// Result is the terminal outcome stamped on an archived instance.
type Result string

const (
	ResultSuccess  Result = "success"
	ResultFailed   Result = "failed"
	ResultDeclined Result = "declined"
	ResultIgnored  Result = "ignored"
	ResultPaid     Result = "paid"
	ResultAvoided  Result = "avoided"
	ResultExpired  Result = "expired"
	ResultAuto     Result = "auto"
)

// maxHistory bounds the resolved-event trail per player; the oldest entries
// fall off first.
const maxHistory = 50

// Instance is one generated event. It copies everything it needs from its
// template at generation time, so later catalog edits never change an event
// already in flight.
type Instance struct {
	// ID is unique within one player's ledger.
	ID          int64
	TemplateID  string
	Title       string
	Description string
	Category    catalog.Category
	Effect      player.Resource
	// EffectValue is the rolled magnitude, fixed at generation.
	EffectValue int
	Choices     []catalog.Choice
	AutoApply   bool
	CreatedAt   time.Time
	// ExpiresAt is zero for auto-applied instances.
	ExpiresAt time.Time
	// Result and ChoiceLabel are set exactly once, when the instance is
	// archived.
	Result      Result
	ChoiceLabel string
}

// Expired reports whether the instance's deadline has been reached at now.
// The boundary is inclusive: an instance expiring exactly at now is expired.
func (i Instance) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// Ledger is one player's event state. It is a plain in-memory value; all
// mutation goes through its methods and persistence is the caller's problem.
type Ledger struct {
	PlayerID string
	Active   []Instance
	History  []Instance
	// LastGenerationAt throttles how often the generator may run for this
	// player.
	LastGenerationAt time.Time
	// NextID is the id the next generated instance will take.
	NextID int64
}

// New returns an empty ledger for the player.
func New(playerID string) *Ledger {
	return &Ledger{PlayerID: playerID, NextID: 1}
}

// NextInstanceID reserves and returns the next instance id.
func (l *Ledger) NextInstanceID() int64 {
	if l.NextID == 0 {
		l.NextID = 1
	}
	id := l.NextID
	l.NextID++
	return id
}

// Insert appends an instance to the active set.
func (l *Ledger) Insert(instance Instance) {
	l.Active = append(l.Active, instance)
}

// ArchiveDirect records an instance that never entered the active set, such
// as an auto-applied bonus.
func (l *Ledger) ArchiveDirect(instance Instance, result Result) {
	instance.Result = result
	l.appendHistory(instance)
}

// Archive atomically removes the active instance with the given id, stamps
// it with a result, and appends it to history. The instance is either active
// or archived, never both and never neither.
func (l *Ledger) Archive(id int64, result Result, choiceLabel string) (Instance, error) {
	for idx, instance := range l.Active {
		if instance.ID != id {
			continue
		}
		l.Active = append(l.Active[:idx], l.Active[idx+1:]...)
		instance.Result = result
		instance.ChoiceLabel = choiceLabel
		l.appendHistory(instance)
		return instance, nil
	}
	return Instance{}, domainerrors.Newf(domainerrors.CodeEventNotActive, map[string]string{
		"EventID": strconv.FormatInt(id, 10),
	})
}

// FindActive returns the active instance with the given id.
func (l *Ledger) FindActive(id int64) (Instance, bool) {
	for _, instance := range l.Active {
		if instance.ID == id {
			return instance, true
		}
	}
	return Instance{}, false
}

// Sweep archives every active instance whose deadline has passed, preserving
// the order of the survivors, and returns how many were expired. Sweeping an
// already-swept ledger is a no-op.
func (l *Ledger) Sweep(now time.Time) int {
	expired := 0
	remaining := l.Active[:0]
	for _, instance := range l.Active {
		if instance.Expired(now) {
			instance.Result = ResultExpired
			l.appendHistory(instance)
			expired++
			continue
		}
		remaining = append(remaining, instance)
	}
	l.Active = remaining
	return expired
}

// ListActive sweeps expired instances first, then returns a copy of the
// remaining active set, so a caller never sees a stale event as actionable
// and cannot mutate the ledger through the result.
func (l *Ledger) ListActive(now time.Time) []Instance {
	l.Sweep(now)
	return cloneInstances(l.Active)
}

// ListHistory returns a copy of the resolved instances, oldest first.
func (l *Ledger) ListHistory() []Instance {
	return cloneInstances(l.History)
}

func cloneInstances(instances []Instance) []Instance {
	if len(instances) == 0 {
		return nil
	}
	out := make([]Instance, len(instances))
	copy(out, instances)
	return out
}

func (l *Ledger) appendHistory(instance Instance) {
	l.History = append(l.History, instance)
	if len(l.History) > maxHistory {
		l.History = l.History[len(l.History)-maxHistory:]
	}
}
