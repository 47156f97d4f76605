package mcp

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/hardluck-games/streetlife/internal/services/events/app"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/engine"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
	"github.com/hardluck-games/streetlife/internal/services/events/storage/sqlite"
)

// autoCatalog puts an auto-apply cash template in every category so any
// category draw produces a deterministic event.
func autoCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var templates []catalog.Template
	for _, category := range catalog.Categories() {
		templates = append(templates, catalog.Template{
			ID:        string(category) + ".windfall",
			Title:     "Windfall",
			Category:  category,
			Effect:    player.ResourceCash,
			MinValue:  500,
			MaxValue:  500,
			AutoApply: true,
		})
	}
	c, err := catalog.New(templates)
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}
	return c
}

func interactiveCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var templates []catalog.Template
	for _, category := range catalog.Categories() {
		templates = append(templates, catalog.Template{
			ID:       string(category) + ".offer",
			Title:    "Offer",
			Category: category,
			Effect:   player.ResourceCash,
			MinValue: 100,
			MaxValue: 100,
			Duration: 10 * time.Minute,
			Choices: []catalog.Choice{
				{Label: "Take it", Action: catalog.ActionAccept, SuccessRate: 1.0},
				{Label: "Pass", Action: catalog.ActionDecline},
			},
		})
	}
	c, err := catalog.New(templates)
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}
	return c
}

func testServiceWith(t *testing.T, c *catalog.Catalog) *app.Service {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	eng := engine.New(c, engine.Config{SpawnProbability: 1.0}, nil)
	return app.NewService(eng, store, nil, log.New(io.Discard, "", 0))
}

func seed(v int64) *int64 {
	return &v
}

func TestEventTickToolAutoApplies(t *testing.T) {
	service := testServiceWith(t, autoCatalog(t))
	handler := EventTickHandler(service)

	_, result, err := handler(context.Background(), nil, EventTickInput{
		PlayerID: "player-1",
		State:    PlayerState{Cash: 100},
		Seed:     seed(7),
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.Generated == nil || !result.Generated.AutoApply {
		t.Fatalf("generated = %+v, want an auto-applied event", result.Generated)
	}
	if result.State.Cash != 600 {
		t.Fatalf("cash = %d, want 600", result.State.Cash)
	}
	if result.Generated.Result != "auto" {
		t.Fatalf("result tag = %q, want auto", result.Generated.Result)
	}

	_, history, err := EventListHistoryHandler(service)(context.Background(), nil, EventListInput{PlayerID: "player-1"})
	if err != nil {
		t.Fatalf("history handler returned error: %v", err)
	}
	if len(history.Events) != 1 {
		t.Fatalf("history = %+v, want one entry", history.Events)
	}
}

func TestEventTickToolIsDeterministicGivenSeed(t *testing.T) {
	first := testServiceWith(t, interactiveCatalog(t))
	second := testServiceWith(t, interactiveCatalog(t))

	_, a, err := EventTickHandler(first)(context.Background(), nil, EventTickInput{
		PlayerID: "player-1", Seed: seed(99),
	})
	if err != nil {
		t.Fatalf("first tick: %v", err)
	}
	_, b, err := EventTickHandler(second)(context.Background(), nil, EventTickInput{
		PlayerID: "player-1", Seed: seed(99),
	})
	if err != nil {
		t.Fatalf("second tick: %v", err)
	}

	if (a.Generated == nil) != (b.Generated == nil) {
		t.Fatalf("spawn decisions diverged: %+v vs %+v", a.Generated, b.Generated)
	}
	if a.Generated != nil && a.Generated.TemplateID != b.Generated.TemplateID {
		t.Fatalf("template picks diverged: %q vs %q", a.Generated.TemplateID, b.Generated.TemplateID)
	}
}

func TestEventResolveChoiceTool(t *testing.T) {
	service := testServiceWith(t, interactiveCatalog(t))
	ctx := context.Background()

	_, tick, err := EventTickHandler(service)(ctx, nil, EventTickInput{
		PlayerID: "player-1", Seed: seed(5),
	})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if tick.Generated == nil {
		// Spawn probability is 1.0, so a seeded tick always generates.
		t.Fatal("expected a generated event")
	}

	_, resolved, err := EventResolveChoiceHandler(service)(ctx, nil, EventResolveChoiceInput{
		PlayerID:    "player-1",
		EventID:     tick.Generated.ID,
		ChoiceIndex: 0,
		State:       PlayerState{Cash: 50},
		Seed:        seed(5),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Result != "success" {
		t.Fatalf("result = %q, want success", resolved.Result)
	}
	if resolved.State.Cash != 150 {
		t.Fatalf("cash = %d, want 150", resolved.State.Cash)
	}

	_, active, err := EventListActiveHandler(service)(ctx, nil, EventListInput{PlayerID: "player-1"})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active.Events) != 0 {
		t.Fatalf("active = %+v, want empty", active.Events)
	}
}

func TestEventResolveChoiceToolReportsUnknownEvent(t *testing.T) {
	service := testServiceWith(t, interactiveCatalog(t))

	_, _, err := EventResolveChoiceHandler(service)(context.Background(), nil, EventResolveChoiceInput{
		PlayerID: "player-1",
		EventID:  42,
		Seed:     seed(1),
	})
	if err == nil {
		t.Fatal("expected error for unknown event id")
	}
}

func TestEventListToolsForUnknownPlayer(t *testing.T) {
	service := testServiceWith(t, interactiveCatalog(t))
	ctx := context.Background()

	_, active, err := EventListActiveHandler(service)(ctx, nil, EventListInput{PlayerID: "stranger"})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active.Events) != 0 {
		t.Fatalf("active = %+v, want empty", active.Events)
	}

	_, history, err := EventListHistoryHandler(service)(ctx, nil, EventListInput{PlayerID: "stranger"})
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history.Events) != 0 {
		t.Fatalf("history = %+v, want empty", history.Events)
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	server := NewServer(testServiceWith(t, interactiveCatalog(t)), "test")
	if server == nil || server.mcpServer == nil {
		t.Fatal("expected a configured server")
	}
}
