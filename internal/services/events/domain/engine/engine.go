// Package engine generates and resolves life events against a player ledger.
// It is single-threaded and pure given its injected clock and RNG: every
// stochastic decision draws from the caller-supplied source, so a seeded run
// is replayable.
package engine

import (
	"time"

	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/ledger"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Rand is the injected randomness source. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NotificationBridge is told about newly generated interactive events.
// Calls are fire-and-forget; implementations swallow their own failures.
type NotificationBridge interface {
	OnEventCreated(instance ledger.Instance)
}

// NopBridge discards notifications.
type NopBridge struct{}

func (NopBridge) OnEventCreated(ledger.Instance) {}

// Config tunes generation. The zero value takes the shipped defaults.
type Config struct {
	// MaxActiveEvents caps the active set; the generator stops spawning at
	// the cap, it never evicts.
	MaxActiveEvents int
	// MinRegenInterval is the minimum gap between spawn decisions.
	MinRegenInterval time.Duration
	// SpawnProbability is the Bernoulli chance that an allowed spawn
	// attempt produces an event.
	SpawnProbability float64
}

const (
	defaultMaxActiveEvents  = 5
	defaultMinRegenInterval = 5 * time.Minute
	defaultSpawnProbability = 0.6
)

func (c Config) withDefaults() Config {
	if c.MaxActiveEvents <= 0 {
		c.MaxActiveEvents = defaultMaxActiveEvents
	}
	if c.MinRegenInterval <= 0 {
		c.MinRegenInterval = defaultMinRegenInterval
	}
	if c.SpawnProbability <= 0 {
		c.SpawnProbability = defaultSpawnProbability
	}
	return c
}

// Engine drives generation and resolution against one catalog.
type Engine struct {
	catalog *catalog.Catalog
	config  Config
	bridge  NotificationBridge
}

// New builds an engine. A nil bridge disables notifications.
func New(cat *catalog.Catalog, config Config, bridge NotificationBridge) *Engine {
	if bridge == nil {
		bridge = NopBridge{}
	}
	return &Engine{catalog: cat, config: config.withDefaults(), bridge: bridge}
}

// TickResult reports what one tick did.
type TickResult struct {
	// Expired counts instances the sweeper archived this tick.
	Expired int
	// Generated is the spawned instance, nil when the tick produced none.
	// When Generated.AutoApply is set, its effect has already been applied
	// to the snapshot and the instance sits in history, not active.
	Generated *ledger.Instance
	// AppliedDelta is the realized resource change of an auto-applied
	// instance.
	AppliedDelta int
}

// Tick sweeps expired events and then makes at most one spawn decision.
// Any decision, spawn or not, advances LastGenerationAt so a tight caller
// loop cannot re-roll the dice.
func (e *Engine) Tick(led *ledger.Ledger, snap *player.Snapshot, now time.Time, rng Rand) TickResult {
	result := TickResult{Expired: led.Sweep(now)}

	if !led.LastGenerationAt.IsZero() && now.Sub(led.LastGenerationAt) < e.config.MinRegenInterval {
		return result
	}
	if len(led.Active) >= e.config.MaxActiveEvents {
		led.LastGenerationAt = now
		return result
	}
	led.LastGenerationAt = now

	if rng.Float64() >= e.config.SpawnProbability {
		return result
	}

	category := SelectCategory(*snap, rng)
	eligible := e.catalog.EligibleTemplates(category, *snap)
	// An empty category is a defined no-op for this tick, not a retry.
	if len(eligible) == 0 {
		return result
	}
	template := eligible[rng.Intn(len(eligible))]

	value := template.MinValue
	if span := template.MaxValue - template.MinValue; span > 0 {
		value += rng.Intn(span + 1)
	}

	instance := ledger.Instance{
		ID:          led.NextInstanceID(),
		TemplateID:  template.ID,
		Title:       template.Title,
		Description: template.Description,
		Category:    template.Category,
		Effect:      template.Effect,
		EffectValue: value,
		Choices:     template.Choices,
		AutoApply:   template.AutoApply,
		CreatedAt:   now,
	}

	if template.AutoApply {
		result.AppliedDelta = player.Apply(snap, template.Effect, value)
		led.ArchiveDirect(instance, ledger.ResultAuto)
		archived := led.History[len(led.History)-1]
		result.Generated = &archived
		return result
	}

	instance.ExpiresAt = now.Add(template.Duration)
	led.Insert(instance)
	e.bridge.OnEventCreated(instance)
	result.Generated = &instance
	return result
}
