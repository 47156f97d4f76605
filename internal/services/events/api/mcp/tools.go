// Package mcp exposes the event engine as MCP tools over a stdio or
// in-memory transport. It is a thin adapter: all game rules live in the
// domain packages.
package mcp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hardluck-games/streetlife/internal/random"
	"github.com/hardluck-games/streetlife/internal/services/events/app"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/engine"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/ledger"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// PlayerState mirrors the player snapshot on the wire. Missing fields
// default to zero.
type PlayerState struct {
	Level      int `json:"level,omitempty" jsonschema:"player level"`
	Cash       int `json:"cash,omitempty" jsonschema:"cash on hand"`
	Heat       int `json:"heat,omitempty" jsonschema:"police attention, 0-100"`
	Reputation int `json:"reputation,omitempty" jsonschema:"street reputation"`
	Energy     int `json:"energy,omitempty" jsonschema:"energy, 0-100"`
	Health     int `json:"health,omitempty" jsonschema:"health, 0-100"`
	XP         int `json:"xp,omitempty" jsonschema:"experience points"`
}

func (s PlayerState) snapshot() player.Snapshot {
	return player.Snapshot{
		Level:      s.Level,
		Cash:       s.Cash,
		Heat:       s.Heat,
		Reputation: s.Reputation,
		Energy:     s.Energy,
		Health:     s.Health,
		XP:         s.XP,
	}
}

func stateFromSnapshot(s player.Snapshot) PlayerState {
	return PlayerState{
		Level:      s.Level,
		Cash:       s.Cash,
		Heat:       s.Heat,
		Reputation: s.Reputation,
		Energy:     s.Energy,
		Health:     s.Health,
		XP:         s.XP,
	}
}

// ChoicePayload is one selectable option on an event.
type ChoicePayload struct {
	Label       string  `json:"label" jsonschema:"display label"`
	Action      string  `json:"action" jsonschema:"accept or decline"`
	SuccessRate float64 `json:"success_rate,omitempty" jsonschema:"probability an accept succeeds"`
	Effect      string  `json:"effect,omitempty" jsonschema:"outcome-shaping tag"`
}

// EventPayload is one generated event, active or archived.
type EventPayload struct {
	ID          int64           `json:"id" jsonschema:"event identifier, unique per player"`
	TemplateID  string          `json:"template_id" jsonschema:"catalog template key"`
	Title       string          `json:"title" jsonschema:"display title"`
	Description string          `json:"description,omitempty" jsonschema:"display description"`
	Category    string          `json:"category" jsonschema:"event category"`
	Effect      string          `json:"effect" jsonschema:"resource the event touches"`
	EffectValue int             `json:"effect_value" jsonschema:"rolled effect magnitude"`
	AutoApply   bool            `json:"auto_apply,omitempty" jsonschema:"true when the event resolved itself on generation"`
	Choices     []ChoicePayload `json:"choices,omitempty" jsonschema:"selectable options"`
	CreatedAt   string          `json:"created_at" jsonschema:"RFC3339 creation timestamp"`
	ExpiresAt   string          `json:"expires_at,omitempty" jsonschema:"RFC3339 expiration timestamp"`
	Result      string          `json:"result,omitempty" jsonschema:"terminal result once archived"`
	ChoiceLabel string          `json:"choice_label,omitempty" jsonschema:"label of the resolving choice"`
}

// DeltaPayload is one realized resource change.
type DeltaPayload struct {
	Resource string `json:"resource" jsonschema:"affected resource"`
	Value    int    `json:"value" jsonschema:"realized change after clamping"`
}

func eventPayload(instance ledger.Instance) EventPayload {
	out := EventPayload{
		ID:          instance.ID,
		TemplateID:  instance.TemplateID,
		Title:       instance.Title,
		Description: instance.Description,
		Category:    string(instance.Category),
		Effect:      string(instance.Effect),
		EffectValue: instance.EffectValue,
		AutoApply:   instance.AutoApply,
		CreatedAt:   instance.CreatedAt.UTC().Format(time.RFC3339),
		Result:      string(instance.Result),
		ChoiceLabel: instance.ChoiceLabel,
	}
	if !instance.ExpiresAt.IsZero() {
		out.ExpiresAt = instance.ExpiresAt.UTC().Format(time.RFC3339)
	}
	for _, choice := range instance.Choices {
		out.Choices = append(out.Choices, ChoicePayload{
			Label:       choice.Label,
			Action:      string(choice.Action),
			SuccessRate: choice.SuccessRate,
			Effect:      string(choice.Effect),
		})
	}
	return out
}

func eventPayloads(instances []ledger.Instance) []EventPayload {
	out := make([]EventPayload, 0, len(instances))
	for _, instance := range instances {
		out = append(out, eventPayload(instance))
	}
	return out
}

// rngFromSeed builds the per-call randomness source. Callers pass a seed for
// deterministic replay; otherwise a crypto-derived seed is drawn.
func rngFromSeed(seed *int64) (engine.Rand, error) {
	if seed != nil {
		return rand.New(rand.NewSource(*seed)), nil
	}
	fresh, err := random.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("derive rng seed: %w", err)
	}
	return rand.New(rand.NewSource(fresh)), nil
}

// EventTickInput requests one generation cycle.
type EventTickInput struct {
	PlayerID string      `json:"player_id" jsonschema:"player identifier"`
	State    PlayerState `json:"state" jsonschema:"current player snapshot"`
	Seed     *int64      `json:"seed,omitempty" jsonschema:"optional RNG seed for deterministic replay"`
}

// EventTickResult reports what the tick did.
type EventTickResult struct {
	Expired      int           `json:"expired" jsonschema:"events archived as expired this tick"`
	Generated    *EventPayload `json:"generated,omitempty" jsonschema:"spawned event, absent when none"`
	AppliedDelta int           `json:"applied_delta,omitempty" jsonschema:"realized change of an auto-applied event"`
	State        PlayerState   `json:"state" jsonschema:"player snapshot after any auto-applied effect"`
}

// EventTickTool defines the MCP tool schema for a generation tick.
func EventTickTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_tick",
		Description: "Runs one life-event generation cycle for a player: sweeps expired events and may spawn at most one new event.",
	}
}

// EventTickHandler executes a tick request.
func EventTickHandler(service *app.Service) mcp.ToolHandlerFor[EventTickInput, EventTickResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventTickInput) (*mcp.CallToolResult, EventTickResult, error) {
		rng, err := rngFromSeed(input.Seed)
		if err != nil {
			return nil, EventTickResult{}, err
		}

		outcome, err := service.Tick(ctx, input.PlayerID, input.State.snapshot(), rng)
		if err != nil {
			return nil, EventTickResult{}, err
		}

		result := EventTickResult{
			Expired:      outcome.Expired,
			AppliedDelta: outcome.AppliedDelta,
			State:        stateFromSnapshot(outcome.Snapshot),
		}
		if outcome.Generated != nil {
			payload := eventPayload(*outcome.Generated)
			result.Generated = &payload
		}
		return nil, result, nil
	}
}

// EventResolveChoiceInput resolves one choice on an active event.
type EventResolveChoiceInput struct {
	PlayerID    string      `json:"player_id" jsonschema:"player identifier"`
	EventID     int64       `json:"event_id" jsonschema:"active event identifier"`
	ChoiceIndex int         `json:"choice_index" jsonschema:"zero-based index into the event's choices"`
	State       PlayerState `json:"state" jsonschema:"current player snapshot"`
	Seed        *int64      `json:"seed,omitempty" jsonschema:"optional RNG seed for deterministic replay"`
}

// EventResolveChoiceResult reports the terminal outcome.
type EventResolveChoiceResult struct {
	Result      string         `json:"result" jsonschema:"terminal result tag"`
	ChoiceLabel string         `json:"choice_label" jsonschema:"label of the resolving choice"`
	Applied     []DeltaPayload `json:"applied,omitempty" jsonschema:"realized resource changes"`
	State       PlayerState    `json:"state" jsonschema:"player snapshot after resolution"`
}

// EventResolveChoiceTool defines the MCP tool schema for choice resolution.
func EventResolveChoiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_resolve_choice",
		Description: "Resolves a player's choice on an active life event into a terminal outcome and archives the event.",
	}
}

// EventResolveChoiceHandler executes a resolution request.
func EventResolveChoiceHandler(service *app.Service) mcp.ToolHandlerFor[EventResolveChoiceInput, EventResolveChoiceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventResolveChoiceInput) (*mcp.CallToolResult, EventResolveChoiceResult, error) {
		rng, err := rngFromSeed(input.Seed)
		if err != nil {
			return nil, EventResolveChoiceResult{}, err
		}

		outcome, err := service.ResolveChoice(ctx, input.PlayerID, input.EventID, input.ChoiceIndex, input.State.snapshot(), rng)
		if err != nil {
			return nil, EventResolveChoiceResult{}, err
		}

		result := EventResolveChoiceResult{
			Result:      string(outcome.Result),
			ChoiceLabel: outcome.ChoiceLabel,
			State:       stateFromSnapshot(outcome.Snapshot),
		}
		for _, delta := range outcome.Applied {
			result.Applied = append(result.Applied, DeltaPayload{
				Resource: string(delta.Resource),
				Value:    delta.Value,
			})
		}
		return nil, result, nil
	}
}

// EventListInput identifies the player whose events to list.
type EventListInput struct {
	PlayerID string `json:"player_id" jsonschema:"player identifier"`
}

// EventListResult carries a list of events.
type EventListResult struct {
	Events []EventPayload `json:"events" jsonschema:"matching events"`
}

// EventListActiveTool defines the MCP tool schema for listing active events.
func EventListActiveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_list_active",
		Description: "Lists a player's active life events, sweeping expired ones first.",
	}
}

// EventListActiveHandler executes an active-list request.
func EventListActiveHandler(service *app.Service) mcp.ToolHandlerFor[EventListInput, EventListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventListInput) (*mcp.CallToolResult, EventListResult, error) {
		active, err := service.ListActive(ctx, input.PlayerID)
		if err != nil {
			return nil, EventListResult{}, err
		}
		return nil, EventListResult{Events: eventPayloads(active)}, nil
	}
}

// EventListHistoryTool defines the MCP tool schema for listing event history.
func EventListHistoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "event_list_history",
		Description: "Lists a player's resolved life events, oldest first, capped at the retention limit.",
	}
}

// EventListHistoryHandler executes a history-list request.
func EventListHistoryHandler(service *app.Service) mcp.ToolHandlerFor[EventListInput, EventListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventListInput) (*mcp.CallToolResult, EventListResult, error) {
		history, err := service.ListHistory(ctx, input.PlayerID)
		if err != nil {
			return nil, EventListResult{}, err
		}
		return nil, EventListResult{Events: eventPayloads(history)}, nil
	}
}
