package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

func TestParseConfigLoadsEnvDefaults(t *testing.T) {
	type target struct {
		DBPath string `env:"STREETLIFE_ENTRYPOINT_TEST_DB" envDefault:"data/events.db"`
	}

	var cfg target
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.DBPath != "data/events.db" {
		t.Fatalf("db path = %q, want default", cfg.DBPath)
	}
}

func TestParseArgsRequiresFlagSet(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("expected error for nil flag set")
	}
}

func TestParseArgsAcceptsNilArgs(t *testing.T) {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	if err := ParseArgs(fs, nil); err != nil {
		t.Fatalf("ParseArgs returned error: %v", err)
	}
}

func TestRunWithTelemetryRequiresService(t *testing.T) {
	err := RunWithTelemetry(context.Background(), "  ", func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for blank service name")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Setenv("STREETLIFE_OTEL_ENDPOINT", "")

	wantErr := errors.New("run failed")
	err := RunWithTelemetry(context.Background(), ServiceEvents, func(context.Context) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
