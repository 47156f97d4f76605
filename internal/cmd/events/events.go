// Package events parses the events service command flags and runs the
// life-event engine behind an MCP stdio server.
package events

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	platformcmd "github.com/hardluck-games/streetlife/internal/platform/cmd"
	eventsmcp "github.com/hardluck-games/streetlife/internal/services/events/api/mcp"
	"github.com/hardluck-games/streetlife/internal/services/events/app"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/engine"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/ledger"
	"github.com/hardluck-games/streetlife/internal/services/events/storage/sqlite"
)

const serverVersion = "0.1.0"

// Config holds events command configuration.
type Config struct {
	DBPath           string  `env:"STREETLIFE_EVENTS_DB_PATH"           envDefault:"events.db"`
	ContentPath      string  `env:"STREETLIFE_EVENTS_CONTENT_PATH"`
	MaxActiveEvents  int     `env:"STREETLIFE_EVENTS_MAX_ACTIVE"        envDefault:"5"`
	MinRegenMinutes  int     `env:"STREETLIFE_EVENTS_MIN_REGEN_MINUTES" envDefault:"5"`
	SpawnProbability float64 `env:"STREETLIFE_EVENTS_SPAWN_PROBABILITY" envDefault:"0.6"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite ledger database")
	fs.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "optional Lua script with extra event templates")
	fs.IntVar(&cfg.MaxActiveEvents, "max-active", cfg.MaxActiveEvents, "active event cap per player")
	fs.IntVar(&cfg.MinRegenMinutes, "min-regen-minutes", cfg.MinRegenMinutes, "minimum minutes between spawn decisions")
	fs.Float64Var(&cfg.SpawnProbability, "spawn-probability", cfg.SpawnProbability, "chance an allowed spawn attempt produces an event")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// logBridge reports new events on the process log. Notification delivery is
// fire-and-forget, so there is nothing to fail.
type logBridge struct{}

func (logBridge) OnEventCreated(instance ledger.Instance) {
	log.Printf("event created: id=%d template=%s category=%s", instance.ID, instance.TemplateID, instance.Category)
}

// Run starts the events service.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceEvents, func(ctx context.Context) error {
		cat, err := loadCatalog(cfg.ContentPath)
		if err != nil {
			return err
		}

		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open ledger store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close ledger store: %v", err)
			}
		}()

		eng := engine.New(cat, engine.Config{
			MaxActiveEvents:  cfg.MaxActiveEvents,
			MinRegenInterval: time.Duration(cfg.MinRegenMinutes) * time.Minute,
			SpawnProbability: cfg.SpawnProbability,
		}, logBridge{})

		service := app.NewService(eng, store, nil, nil)
		return eventsmcp.NewServer(service, serverVersion).Run(ctx)
	})
}

// loadCatalog returns the builtin content, merged with the designer script
// at contentPath when one is configured.
func loadCatalog(contentPath string) (*catalog.Catalog, error) {
	cat := catalog.Builtin()
	if contentPath == "" {
		return cat, nil
	}
	extra, err := catalog.LoadLua(contentPath)
	if err != nil {
		return nil, fmt.Errorf("load content script: %w", err)
	}
	merged, err := cat.Merge(extra)
	if err != nil {
		return nil, fmt.Errorf("merge content script: %w", err)
	}
	return merged, nil
}
