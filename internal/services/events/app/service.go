// Package app coordinates the event engine with persistence: it loads the
// player's ledger, runs one engine operation against it, and saves the
// result back, tolerating save failures.
package app

import (
	"context"
	"errors"
	"log"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hardluck-games/streetlife/internal/services/events/domain/engine"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/ledger"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
	"github.com/hardluck-games/streetlife/internal/services/events/storage"
)

const tracerName = "streetlife.events"

// Service is the application surface over the event engine.
type Service struct {
	engine *engine.Engine
	store  storage.LedgerStore
	clock  engine.Clock
	tracer trace.Tracer
	logger *log.Logger
}

// NewService wires the engine to its store. A nil clock means wall time; a
// nil logger uses the process default.
func NewService(eng *engine.Engine, store storage.LedgerStore, clock engine.Clock, logger *log.Logger) *Service {
	if clock == nil {
		clock = engine.SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		engine: eng,
		store:  store,
		clock:  clock,
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}
}

// TickOutcome reports one tick plus the snapshot after any auto-applied
// effect.
type TickOutcome struct {
	Expired   int
	Generated *ledger.Instance
	// AppliedDelta is the realized resource change of an auto-applied event.
	AppliedDelta int
	Snapshot     player.Snapshot
}

// ResolveOutcome reports one resolved choice plus the mutated snapshot.
type ResolveOutcome struct {
	Result      ledger.Result
	ChoiceLabel string
	Applied     []player.Delta
	Snapshot    player.Snapshot
}

// Tick runs one generation cycle for the player.
func (s *Service) Tick(ctx context.Context, playerID string, snap player.Snapshot, rng engine.Rand) (TickOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "events.Tick", trace.WithAttributes(
		attribute.String("player.id", playerID),
	))
	defer span.End()

	led, err := s.loadOrNew(ctx, playerID)
	if err != nil {
		return TickOutcome{}, err
	}

	result := s.engine.Tick(led, &snap, s.clock.Now(), rng)
	s.persist(ctx, led)

	span.SetAttributes(attribute.Int("events.expired", result.Expired))
	return TickOutcome{
		Expired:      result.Expired,
		Generated:    result.Generated,
		AppliedDelta: result.AppliedDelta,
		Snapshot:     snap,
	}, nil
}

// ResolveChoice resolves the player's pick on an active event.
func (s *Service) ResolveChoice(ctx context.Context, playerID string, eventID int64, choiceIndex int, snap player.Snapshot, rng engine.Rand) (ResolveOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "events.ResolveChoice", trace.WithAttributes(
		attribute.String("player.id", playerID),
		attribute.String("event.id", strconv.FormatInt(eventID, 10)),
	))
	defer span.End()

	led, err := s.loadOrNew(ctx, playerID)
	if err != nil {
		return ResolveOutcome{}, err
	}

	outcome, err := s.engine.ResolveChoice(led, &snap, eventID, choiceIndex, s.clock.Now(), rng)
	if err != nil {
		return ResolveOutcome{}, err
	}
	s.persist(ctx, led)

	return ResolveOutcome{
		Result:      outcome.Result,
		ChoiceLabel: outcome.ChoiceLabel,
		Applied:     outcome.Applied,
		Snapshot:    snap,
	}, nil
}

// ListActive returns the player's active events after sweeping expirations.
func (s *Service) ListActive(ctx context.Context, playerID string) ([]ledger.Instance, error) {
	ctx, span := s.tracer.Start(ctx, "events.ListActive", trace.WithAttributes(
		attribute.String("player.id", playerID),
	))
	defer span.End()

	led, err := s.loadOrNew(ctx, playerID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if expired := led.Sweep(now); expired > 0 {
		s.persist(ctx, led)
	}
	return led.ListActive(now), nil
}

// ListHistory returns the player's resolved events, oldest first.
func (s *Service) ListHistory(ctx context.Context, playerID string) ([]ledger.Instance, error) {
	ctx, span := s.tracer.Start(ctx, "events.ListHistory", trace.WithAttributes(
		attribute.String("player.id", playerID),
	))
	defer span.End()

	led, err := s.loadOrNew(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return led.ListHistory(), nil
}

func (s *Service) loadOrNew(ctx context.Context, playerID string) (*ledger.Ledger, error) {
	led, err := s.store.Load(ctx, playerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ledger.New(playerID), nil
		}
		return nil, err
	}
	return led, nil
}

// persist saves best-effort: a failed save is logged and the in-memory
// ledger stays authoritative for the rest of the request.
func (s *Service) persist(ctx context.Context, led *ledger.Ledger) {
	if err := s.store.Save(ctx, led); err != nil {
		s.logger.Printf("save ledger %s: %v", led.PlayerID, err)
	}
}
