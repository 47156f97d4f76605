package catalog

import (
	"math/rand"
	"testing"
	"time"

	domainerrors "github.com/hardluck-games/streetlife/internal/errors"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

func validTemplate() Template {
	return Template{
		ID:          "test.shortcut",
		Title:       "Shortcut",
		Description: "A faster way through the docks.",
		Category:    CategoryRandom,
		Effect:      player.ResourceCash,
		MinValue:    10,
		MaxValue:    50,
		Duration:    5 * time.Minute,
		Choices: []Choice{
			{Label: "Take it", Action: ActionAccept, SuccessRate: 0.5},
			{Label: "Skip it", Action: ActionDecline},
		},
	}
}

func TestNewAcceptsValidTemplate(t *testing.T) {
	c, err := New([]Template{validTemplate()})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("catalog len = %d, want 1", c.Len())
	}
}

func TestNewRejectsInvertedValueRange(t *testing.T) {
	tmpl := validTemplate()
	tmpl.MinValue = 100
	tmpl.MaxValue = 10

	_, err := New([]Template{tmpl})
	if err == nil {
		t.Fatal("expected error for min above max")
	}
	if code := domainerrors.CodeOf(err); code != domainerrors.CodeCatalogInvalidValueRange {
		t.Fatalf("code = %q, want %q", code, domainerrors.CodeCatalogInvalidValueRange)
	}
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Category = Category("weather")

	if _, err := New([]Template{tmpl}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestNewRejectsAutoApplyWithChoices(t *testing.T) {
	tmpl := validTemplate()
	tmpl.AutoApply = true

	_, err := New([]Template{tmpl})
	if code := domainerrors.CodeOf(err); code != domainerrors.CodeCatalogAutoApplyChoices {
		t.Fatalf("code = %q, want %q", code, domainerrors.CodeCatalogAutoApplyChoices)
	}
}

func TestNewRejectsMissingDuration(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Duration = 0

	_, err := New([]Template{tmpl})
	if code := domainerrors.CodeOf(err); code != domainerrors.CodeCatalogInvalidDuration {
		t.Fatalf("code = %q, want %q", code, domainerrors.CodeCatalogInvalidDuration)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Template{validTemplate(), validTemplate()})
	if code := domainerrors.CodeOf(err); code != domainerrors.CodeCatalogDuplicateTemplate {
		t.Fatalf("code = %q, want %q", code, domainerrors.CodeCatalogDuplicateTemplate)
	}
}

func TestNewRejectsNegativeXPTemplates(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Effect = player.ResourceXP
	tmpl.MinValue = -10
	tmpl.MaxValue = 10

	if _, err := New([]Template{tmpl}); err == nil {
		t.Fatal("expected error for negative xp range")
	}
}

func TestNewKeepsZeroSuccessRate(t *testing.T) {
	tmpl := validTemplate()
	tmpl.Choices = []Choice{{Label: "Sure", Action: ActionAccept, SuccessRate: 0}}

	c, err := New([]Template{tmpl})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got := c.Templates(CategoryRandom)[0].Choices[0].SuccessRate
	if got != 0 {
		t.Fatalf("success rate = %v, want 0", got)
	}
}

func TestEligibleLevelGate(t *testing.T) {
	tmpl := validTemplate()
	tmpl.LevelRequired = 3

	if Eligible(tmpl, player.Snapshot{Level: 2}) {
		t.Fatal("level 2 should not pass a level 3 gate")
	}
	if !Eligible(tmpl, player.Snapshot{Level: 3}) {
		t.Fatal("level 3 should pass a level 3 gate")
	}
}

func TestEligibleHeatGateNeverMatchesBelowThreshold(t *testing.T) {
	tmpl := validTemplate()
	tmpl.HeatRequired = 30

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		snap := player.Snapshot{Level: rng.Intn(10), Heat: rng.Intn(30)}
		if Eligible(tmpl, snap) {
			t.Fatalf("snapshot %+v passed a heat 30 gate", snap)
		}
	}
}

func TestEligibleTemplatesFilters(t *testing.T) {
	gated := validTemplate()
	gated.ID = "test.gated"
	gated.LevelRequired = 5

	c, err := New([]Template{validTemplate(), gated})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	eligible := c.EligibleTemplates(CategoryRandom, player.Snapshot{Level: 1})
	if len(eligible) != 1 {
		t.Fatalf("eligible count = %d, want 1", len(eligible))
	}
	if eligible[0].ID != "test.shortcut" {
		t.Fatalf("eligible template = %q, want test.shortcut", eligible[0].ID)
	}
}

func TestBuiltinCatalogIsValid(t *testing.T) {
	c := Builtin()
	if c.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}
	for _, category := range Categories() {
		if len(c.Templates(category)) == 0 {
			t.Fatalf("builtin catalog has no templates for category %q", category)
		}
	}
}

func TestMergeRevalidates(t *testing.T) {
	extra := validTemplate()
	extra.ID = "test.extra"

	merged, err := Builtin().Merge([]Template{extra})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if merged.Len() != Builtin().Len()+1 {
		t.Fatalf("merged len = %d, want %d", merged.Len(), Builtin().Len()+1)
	}

	bad := validTemplate()
	bad.ID = "opportunity.quick_job" // collides with builtin content
	if _, err := Builtin().Merge([]Template{bad}); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
