package otel

import (
	"context"
	"testing"
)

func TestSetupDisabledByEmptyEndpoint(t *testing.T) {
	t.Setenv("STREETLIFE_OTEL_ENDPOINT", "")
	t.Setenv("STREETLIFE_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "events")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected a shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}

func TestSetupDisabledByFlag(t *testing.T) {
	t.Setenv("STREETLIFE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("STREETLIFE_OTEL_ENABLED", "FALSE")

	shutdown, err := Setup(context.Background(), "events")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}
